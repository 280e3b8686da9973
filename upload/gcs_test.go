package upload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	t.Run("no bucket configured is a skip, not an error", func(t *testing.T) {
		u := &GCSUploader{}

		result, err := u.Upload(context.Background(), "inventory.xlsx", "", "")

		require.NoError(t, err)
		assert.True(t, result.Skipped)
	})

	t.Run("missing local file is reported to the caller", func(t *testing.T) {
		u := &GCSUploader{}

		result, err := u.Upload(context.Background(), "/nonexistent/inventory.xlsx", "some-bucket", "")

		require.Error(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, "some-bucket", result.Bucket)
		assert.Equal(t, "inventory.xlsx", result.Object)
	})
}
