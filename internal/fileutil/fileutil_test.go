package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directories are fine
	require.NoError(t, EnsureDir(dir))
}

func TestEnsureDir_Empty(t *testing.T) {
	assert.NoError(t, EnsureDir(""))
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), OwnerReadWrite))
	assert.Error(t, EnsureDir(filepath.Join(file, "sub")))
}
