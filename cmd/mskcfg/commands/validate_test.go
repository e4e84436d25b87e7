package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Flags(t *testing.T) {
	cmd := Validate()

	require.NotNil(t, cmd)
	assert.Equal(t, "validate", cmd.Use)

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "mskcfg.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	jsonFlag := cmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)
}
