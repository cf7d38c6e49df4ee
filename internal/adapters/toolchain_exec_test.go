package adapters

import (
	"bytes"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardbridge/internal/types"
)

func TestToolchainExecAdapter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test shells out to /bin/sh")
	}

	t.Run("zero exit resolves to success", func(t *testing.T) {
		var stream bytes.Buffer
		adapter := NewToolchainExecAdapter("/bin/sh", &stream)
		err := adapter.Run(t.Context(), []string{"-c", "echo building"})
		require.NoError(t, err)
		assert.Contains(t, stream.String(), "building")
	})

	t.Run("non-zero exit carries the code", func(t *testing.T) {
		adapter := NewToolchainExecAdapter("/bin/sh", nil)
		err := adapter.Run(t.Context(), []string{"-c", "exit 7"})
		require.Error(t, err)
		code, ok := types.ExitCodeOf(err)
		require.True(t, ok)
		assert.Equal(t, 7, code)
	})

	t.Run("launch failure reports code -1", func(t *testing.T) {
		adapter := NewToolchainExecAdapter(filepath.Join(t.TempDir(), "missing-binary"), nil)
		err := adapter.Run(t.Context(), nil)
		require.Error(t, err)
		code, ok := types.ExitCodeOf(err)
		require.True(t, ok)
		assert.Equal(t, -1, code)
	})

	t.Run("empty binary path rejected", func(t *testing.T) {
		adapter := NewToolchainExecAdapter("", nil)
		err := adapter.Run(t.Context(), nil)
		require.Error(t, err)
		_, ok := types.ExitCodeOf(err)
		assert.False(t, ok, "validation failure is not a process failure")
	})
}
