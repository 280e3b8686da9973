package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/cloudfunctions/v2"

	"github.com/mmikkola/kirja/types"
)

// ListCloudFunctions enumerates Cloud Functions (both generations) across
// all locations of a project.
func (p *Provider) ListCloudFunctions(ctx context.Context, project string) ([]types.Record, error) {
	parent := fmt.Sprintf("projects/%s/locations/-", project)
	var records []types.Record
	call := p.functions.Projects.Locations.Functions.List(parent)
	err := call.Pages(ctx, func(page *cloudfunctions.ListFunctionsResponse) error {
		recs, err := types.ToRecords(page.Functions)
		if err != nil {
			return err
		}
		records = append(records, recs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cloud functions: %w", err)
	}
	return records, nil
}
