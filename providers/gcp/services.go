package gcp

import (
	"context"
	"fmt"
)

// ServiceEnabled reports whether an activatable API (e.g.
// container.googleapis.com) is enabled for the project. The collector uses
// this to skip kinds whose API is off instead of collecting 403s.
func (p *Provider) ServiceEnabled(ctx context.Context, project, service string) (bool, error) {
	name := fmt.Sprintf("projects/%s/services/%s", project, service)
	svc, err := p.usage.Services.Get(name).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to check service %s: %w", service, err)
	}
	return svc.State == "ENABLED", nil
}
