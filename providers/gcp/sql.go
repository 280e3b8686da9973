package gcp

import (
	"context"
	"fmt"

	sqladmin "google.golang.org/api/sqladmin/v1"

	"github.com/mmikkola/kirja/types"
)

// ListSQLInstances enumerates Cloud SQL instances in a project.
func (p *Provider) ListSQLInstances(ctx context.Context, project string) ([]types.Record, error) {
	var records []types.Record
	call := p.sqladmin.Instances.List(project)
	err := call.Pages(ctx, func(page *sqladmin.InstancesListResponse) error {
		recs, err := types.ToRecords(page.Items)
		if err != nil {
			return err
		}
		records = append(records, recs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list SQL instances: %w", err)
	}
	return records, nil
}
