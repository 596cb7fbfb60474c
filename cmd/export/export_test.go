package export_test

import (
	"testing"

	"fjacquet/charge-calc/cmd/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", export.Cmd.Use)
	assert.Contains(t, export.Cmd.Short, "Export")
	assert.Contains(t, export.Cmd.Long, "--points")
	assert.NotNil(t, export.Cmd.Run)
}

func TestExportCommand_Flags(t *testing.T) {
	formatFlag := export.Cmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Empty(t, formatFlag.DefValue)

	assert.NotNil(t, export.Cmd.Flags().Lookup("points"))
	assert.NotNil(t, export.Cmd.Flags().Lookup("merge"))
}
