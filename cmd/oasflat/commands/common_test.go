package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasflat/flatten"
)

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestNewLogger(t *testing.T) {
	assert.IsType(t, flatten.NopLogger{}, NewLogger(false))
	assert.IsType(t, &flatten.SlogAdapter{}, NewLogger(true))
}

func TestLoadFlags_MaxSize(t *testing.T) {
	flags := &LoadFlags{MaxSize: "512k"}
	opts, err := flags.loaderOptions(flatten.NopLogger{})
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	flags.MaxSize = "-3"
	_, err = flags.loaderOptions(flatten.NopLogger{})
	assert.Error(t, err)
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "api.yaml")

	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.csv"), []string{input}))
	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.csv"), []string{StdinFilePath}))

	err := ValidateOutputPath(input, []string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.csv")
	require.NoError(t, os.WriteFile(target, nil, 0o600))
	link := filepath.Join(dir, "link.csv")
	require.NoError(t, os.Symlink(target, link))

	assert.NoError(t, RejectSymlinkOutput(target))
	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.csv")))

	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}
