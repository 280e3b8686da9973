package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/compute/v1"

	"github.com/mmikkola/kirja/types"
)

// ListComputeInstances enumerates VM instances across all zones of a project.
func (p *Provider) ListComputeInstances(ctx context.Context, project string) ([]types.Record, error) {
	var records []types.Record
	call := p.compute.Instances.AggregatedList(project)
	err := call.Pages(ctx, func(page *compute.InstanceAggregatedList) error {
		for _, scoped := range page.Items {
			recs, err := types.ToRecords(scoped.Instances)
			if err != nil {
				return err
			}
			records = append(records, recs...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list compute instances: %w", err)
	}
	return records, nil
}
