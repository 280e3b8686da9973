package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmikkola/kirja/types"
)

type fakeChecker struct {
	enabled map[string]bool
	err     error
	calls   []string
}

func (f *fakeChecker) ServiceEnabled(ctx context.Context, project, service string) (bool, error) {
	f.calls = append(f.calls, service)
	if f.err != nil {
		return false, f.err
	}
	return f.enabled[service], nil
}

type fakeSearcher struct {
	records []types.Record
	err     error
}

func (f *fakeSearcher) SearchAllResources(ctx context.Context, project string) ([]types.Record, error) {
	return f.records, f.err
}

func staticKind(label string, records []types.Record, err error) Kind {
	return Kind{
		Label: label,
		List: func(ctx context.Context, project string) ([]types.Record, error) {
			return records, err
		},
	}
}

func TestCollect(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates all kinds under project-prefixed labels", func(t *testing.T) {
		kinds := []Kind{
			staticKind("compute_instances", []types.Record{{"name": "vm-1"}}, nil),
			staticKind("storage_buckets", []types.Record{{"name": "b-1"}, {"name": "b-2"}}, nil),
		}
		c := New(nil, nil, kinds, zerolog.Nop())

		set := c.Collect(ctx, "proj")

		require.Len(t, set, 2)
		assert.Len(t, set["proj::compute_instances"], 1)
		assert.Len(t, set["proj::storage_buckets"], 2)
	})

	t.Run("a failing kind is isolated as an empty result", func(t *testing.T) {
		kinds := []Kind{
			staticKind("compute_instances", []types.Record{{"name": "vm-1"}}, nil),
			staticKind("sql_instances", nil, errors.New("permission denied")),
			staticKind("storage_buckets", []types.Record{{"name": "b-1"}}, nil),
		}
		c := New(nil, nil, kinds, zerolog.Nop())

		set := c.Collect(ctx, "proj")

		require.Len(t, set, 3)
		assert.Len(t, set["proj::compute_instances"], 1)
		assert.Empty(t, set["proj::sql_instances"])
		assert.NotNil(t, set["proj::sql_instances"])
		assert.Len(t, set["proj::storage_buckets"], 1)
	})

	t.Run("gated kind is skipped when its service is disabled", func(t *testing.T) {
		listed := false
		kinds := []Kind{
			{
				Label:   "gke_clusters",
				Service: "container.googleapis.com",
				List: func(ctx context.Context, project string) ([]types.Record, error) {
					listed = true
					return []types.Record{{"name": "cluster-1"}}, nil
				},
			},
		}
		checker := &fakeChecker{enabled: map[string]bool{}}
		c := New(checker, nil, kinds, zerolog.Nop())

		set := c.Collect(ctx, "proj")

		assert.False(t, listed)
		assert.Equal(t, []string{"container.googleapis.com"}, checker.calls)
		assert.Empty(t, set["proj::gke_clusters"])
		assert.NotNil(t, set["proj::gke_clusters"])
	})

	t.Run("gated kind is listed when its service is enabled", func(t *testing.T) {
		kinds := []Kind{
			{
				Label:   "gke_clusters",
				Service: "container.googleapis.com",
				List: func(ctx context.Context, project string) ([]types.Record, error) {
					return []types.Record{{"name": "cluster-1"}}, nil
				},
			},
		}
		checker := &fakeChecker{enabled: map[string]bool{"container.googleapis.com": true}}
		c := New(checker, nil, kinds, zerolog.Nop())

		set := c.Collect(ctx, "proj")

		assert.Len(t, set["proj::gke_clusters"], 1)
	})

	t.Run("checker error degrades to a skip", func(t *testing.T) {
		kinds := []Kind{
			{
				Label:   "gke_clusters",
				Service: "container.googleapis.com",
				List: func(ctx context.Context, project string) ([]types.Record, error) {
					t.Fatal("lister must not be called when the check fails")
					return nil, nil
				},
			},
		}
		checker := &fakeChecker{err: errors.New("serviceusage unreachable")}
		c := New(checker, nil, kinds, zerolog.Nop())

		set := c.Collect(ctx, "proj")

		assert.Empty(t, set["proj::gke_clusters"])
	})

	t.Run("nil lister result becomes an empty slice", func(t *testing.T) {
		kinds := []Kind{staticKind("cloud_functions", nil, nil)}
		c := New(nil, nil, kinds, zerolog.Nop())

		set := c.Collect(ctx, "proj")

		assert.NotNil(t, set["proj::cloud_functions"])
		assert.Empty(t, set["proj::cloud_functions"])
	})
}

func TestCollectAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps results under the asset category", func(t *testing.T) {
		searcher := &fakeSearcher{records: []types.Record{{"name": "vm-1"}, {"name": "b-1"}}}
		c := New(nil, searcher, nil, zerolog.Nop())

		set, err := c.CollectAssets(ctx, "proj")

		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Len(t, set["proj::asset_resources"], 2)
	})

	t.Run("search failure is fatal", func(t *testing.T) {
		searcher := &fakeSearcher{err: errors.New("asset API disabled")}
		c := New(nil, searcher, nil, zerolog.Nop())

		set, err := c.CollectAssets(ctx, "proj")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "proj")
		assert.Nil(t, set)
	})

	t.Run("empty search result is still a valid set", func(t *testing.T) {
		c := New(nil, &fakeSearcher{}, nil, zerolog.Nop())

		set, err := c.CollectAssets(ctx, "proj")

		require.NoError(t, err)
		assert.NotNil(t, set["proj::asset_resources"])
		assert.Empty(t, set["proj::asset_resources"])
	})
}
