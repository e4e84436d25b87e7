package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeCommand_RequiresClusterName(t *testing.T) {
	cmd := Describe()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}
