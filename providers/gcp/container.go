package gcp

import (
	"context"
	"fmt"

	"github.com/mmikkola/kirja/types"
)

// ListGKEClusters enumerates GKE clusters across all locations of a project.
func (p *Provider) ListGKEClusters(ctx context.Context, project string) ([]types.Record, error) {
	parent := fmt.Sprintf("projects/%s/locations/-", project)
	resp, err := p.container.Projects.Locations.Clusters.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list GKE clusters: %w", err)
	}
	records, err := types.ToRecords(resp.Clusters)
	if err != nil {
		return nil, err
	}
	return records, nil
}
