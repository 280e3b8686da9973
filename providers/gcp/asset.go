package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/cloudasset/v1"

	"github.com/mmikkola/kirja/types"
)

// SearchAllResources queries the Cloud Asset inventory for every resource in
// the project scope, across all kinds and locations.
func (p *Provider) SearchAllResources(ctx context.Context, project string) ([]types.Record, error) {
	scope := fmt.Sprintf("projects/%s", project)
	var records []types.Record
	call := p.asset.V1.SearchAllResources(scope)
	err := call.Pages(ctx, func(page *cloudasset.SearchAllResourcesResponse) error {
		recs, err := types.ToRecords(page.Results)
		if err != nil {
			return err
		}
		records = append(records, recs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search resources in %s: %w", scope, err)
	}
	return records, nil
}
