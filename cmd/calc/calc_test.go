package calc_test

import (
	"testing"

	"fjacquet/charge-calc/cmd/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcCommand_Metadata(t *testing.T) {
	assert.Equal(t, "calc", calc.Cmd.Use)
	assert.Contains(t, calc.Cmd.Short, "charge")
	assert.Contains(t, calc.Cmd.Long, "Example")
	assert.NotNil(t, calc.Cmd.Run)
}

func TestCalcCommand_Flags(t *testing.T) {
	for _, name := range []string{"energy", "merge"} {
		flag := calc.Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "false", flag.DefValue)
	}
}
