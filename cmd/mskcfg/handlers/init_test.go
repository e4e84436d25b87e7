package handlers

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhaus/mskcfg/internal/config"
)

// saveAndRestoreInitFactories saves and restores init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	origFileExists := fileExists
	origWriteConfig := writeConfig

	t.Cleanup(func() {
		fileExists = origFileExists
		writeConfig = origWriteConfig
	})
}

func TestInit_WritesStarterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mskcfg.yaml")

	var err error
	output := captureOutput(func() {
		err = Init(path, false)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Configuration saved!")
	assert.Contains(t, output, path)
	assert.Contains(t, output, "mskcfg validate")

	// The starter file loads and validates as written.
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	saveAndRestoreInitFactories(t)
	fileExists = func(string) bool { return true }

	err := Init("mskcfg.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_ForceOverwrites(t *testing.T) {
	saveAndRestoreInitFactories(t)
	fileExists = func(string) bool { return true }

	written := false
	writeConfig = func(_ *config.ClusterConfig, _ string) error {
		written = true
		return nil
	}

	var err error
	captureOutput(func() {
		err = Init("mskcfg.yaml", true)
	})
	require.NoError(t, err)
	assert.True(t, written)
}

func TestInit_WriteError(t *testing.T) {
	saveAndRestoreInitFactories(t)
	fileExists = func(string) bool { return false }
	writeConfig = func(_ *config.ClusterConfig, _ string) error {
		return errors.New("disk full")
	}

	err := Init("mskcfg.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
