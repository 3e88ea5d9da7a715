package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasflat/operation"
)

func TestSetupOperationsFlags(t *testing.T) {
	fs, flags := SetupOperationsFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "text", flags.Format)
		assert.False(t, flags.BodyOnly)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"--format", "json", "--body-only", "-q", "api.yaml"}))
		assert.Equal(t, "json", flags.Format)
		assert.True(t, flags.BodyOnly)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "api.yaml", fs.Arg(0))
	})
}

func TestHandleOperations(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		assert.Error(t, HandleOperations([]string{}))
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleOperations([]string{"--help"}))
	})

	t.Run("csv is not a listing format", func(t *testing.T) {
		err := HandleOperations([]string{"--format", "csv", petstore3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Valid formats: text, json, yaml")
	})

	t.Run("text", func(t *testing.T) {
		assert.NoError(t, HandleOperations([]string{"-q", petstore2}))
	})

	t.Run("yaml", func(t *testing.T) {
		assert.NoError(t, HandleOperations([]string{"--format", "yaml", "--body-only", petstore3}))
	})

	t.Run("non-existent file", func(t *testing.T) {
		assert.Error(t, HandleOperations([]string{"/nonexistent/path/to/file.yaml"}))
	})
}

func TestSelectOperations(t *testing.T) {
	ops := []operation.Operation{
		{Path: "/pets", Method: "get"},
		{Path: "/pets", Method: "post", HasBody: true},
	}

	assert.Len(t, selectOperations(ops, false), 2)
	assert.Equal(t, []operation.Operation{{Path: "/pets", Method: "post", HasBody: true}}, selectOperations(ops, true))
}

func TestOperationRows(t *testing.T) {
	rows := operationRows([]operation.Operation{
		{Path: "/pets", Method: "POST", OperationID: "createPet", HasBody: true},
	})
	assert.Equal(t, [][]string{{"POST", "/pets", "createPet", "Yes"}}, rows)
}
