package gcp

import (
	"context"
	"fmt"

	gcs "google.golang.org/api/storage/v1"

	"github.com/mmikkola/kirja/types"
)

// ListStorageBuckets enumerates Cloud Storage buckets in a project.
func (p *Provider) ListStorageBuckets(ctx context.Context, project string) ([]types.Record, error) {
	var records []types.Record
	call := p.storage.Buckets.List(project)
	err := call.Pages(ctx, func(page *gcs.Buckets) error {
		recs, err := types.ToRecords(page.Items)
		if err != nil {
			return err
		}
		records = append(records, recs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list storage buckets: %w", err)
	}
	return records, nil
}
