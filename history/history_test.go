package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("append and list round-trip", func(t *testing.T) {
		store, err := Open(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		rec := RunRecord{
			Projects:    []string{"proj-a", "proj-b"},
			Mode:        "per-kind",
			Output:      "kirja-inventory-proj-a-20260825T120000Z.xlsx",
			SheetCount:  10,
			RecordCount: 137,
			Uploaded:    true,
		}
		require.NoError(t, store.Append(rec))

		runs, err := store.List(0)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.NotEmpty(t, runs[0].ID)
		assert.False(t, runs[0].StartedAt.IsZero())
		assert.Equal(t, rec.Projects, runs[0].Projects)
		assert.Equal(t, rec.Output, runs[0].Output)
		assert.Equal(t, 10, runs[0].SheetCount)
		assert.True(t, runs[0].Uploaded)
	})

	t.Run("list returns most recent first and honors limit", func(t *testing.T) {
		store, err := Open(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Append(RunRecord{
				StartedAt: base.Add(time.Duration(i) * time.Minute),
				Mode:      "asset",
				Output:    "run",
			}))
		}

		runs, err := store.List(2)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	})

	t.Run("creates the parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

		store, err := Open(path)
		require.NoError(t, err)
		require.NoError(t, store.Close())
	})

	t.Run("nil store is a no-op", func(t *testing.T) {
		var store *Store

		assert.NoError(t, store.Append(RunRecord{}))
		runs, err := store.List(10)
		assert.NoError(t, err)
		assert.Nil(t, runs)
		assert.NoError(t, store.Close())
	})
}
