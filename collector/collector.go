// Package collector gathers cloud resources for a project in one of two
// modes: per-kind listing (independent calls, failures isolated) or a single
// broad search through the asset inventory API (failure is fatal).
package collector

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mmikkola/kirja/types"
)

// AssetCategory is the ResourceSet category used in broad-search mode.
const AssetCategory = "asset_resources"

// Kind is one per-kind listing capability.
type Kind struct {
	// Label is the ResourceSet category for this kind, e.g. "compute_instances".
	Label string
	// Service names the activatable API this kind depends on, e.g.
	// "container.googleapis.com". When non-empty the collector checks that
	// the service is enabled for the project before listing, to avoid noisy
	// permission failures. Empty means the kind is always queried.
	Service string
	// List performs the listing call.
	List func(ctx context.Context, project string) ([]types.Record, error)
}

// ServiceChecker reports whether an activatable API is enabled for a project.
type ServiceChecker interface {
	ServiceEnabled(ctx context.Context, project, service string) (bool, error)
}

// AssetSearcher is the broad-search capability: one query returning metadata
// for many resource kinds without per-kind enumeration.
type AssetSearcher interface {
	SearchAllResources(ctx context.Context, project string) ([]types.Record, error)
}

// Collector runs the configured kinds against a project and aggregates the
// results into a ResourceSet. All calls are sequential and blocking.
type Collector struct {
	kinds   []Kind
	checker ServiceChecker
	assets  AssetSearcher
	logger  zerolog.Logger
}

// New creates a Collector. checker may be nil when no configured kind is
// gated by a service; assets may be nil when broad-search mode is unused.
func New(checker ServiceChecker, assets AssetSearcher, kinds []Kind, logger zerolog.Logger) *Collector {
	return &Collector{
		kinds:   kinds,
		checker: checker,
		assets:  assets,
		logger:  logger,
	}
}

// Collect runs per-kind mode. Each kind's failure is isolated: a failed or
// skipped kind contributes an empty record sequence and does not abort
// collection of the others. The returned set always has an entry for every
// configured kind.
func (c *Collector) Collect(ctx context.Context, project string) types.ResourceSet {
	set := make(types.ResourceSet, len(c.kinds))
	for _, kind := range c.kinds {
		set[Label(project, kind.Label)] = c.collectKind(ctx, project, kind)
	}
	return set
}

func (c *Collector) collectKind(ctx context.Context, project string, kind Kind) []types.Record {
	if kind.Service != "" {
		enabled, err := c.checker.ServiceEnabled(ctx, project, kind.Service)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("project", project).
				Str("kind", kind.Label).
				Str("service", kind.Service).
				Msg("service check failed, skipping kind")
			return []types.Record{}
		}
		if !enabled {
			c.logger.Info().
				Str("project", project).
				Str("kind", kind.Label).
				Str("service", kind.Service).
				Msg("service not enabled, skipping kind")
			return []types.Record{}
		}
	}

	records, err := kind.List(ctx, project)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("project", project).
			Str("kind", kind.Label).
			Msg("listing failed, recording empty result")
		return []types.Record{}
	}
	if records == nil {
		records = []types.Record{}
	}

	c.logger.Debug().
		Str("project", project).
		Str("kind", kind.Label).
		Int("records", len(records)).
		Msg("kind collected")
	return records
}

// CollectAssets runs broad-search mode: a single search across all resource
// kinds in the project. There is only one data source, so its failure is
// fatal for the run and is returned to the caller.
func (c *Collector) CollectAssets(ctx context.Context, project string) (types.ResourceSet, error) {
	records, err := c.assets.SearchAllResources(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("asset search for project %s: %w", project, err)
	}
	if records == nil {
		records = []types.Record{}
	}
	return types.ResourceSet{Label(project, AssetCategory): records}, nil
}

// Label builds the ResourceSet category for a project and kind.
func Label(project, kind string) string {
	return project + "::" + kind
}
