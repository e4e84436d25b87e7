package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhaus/mskcfg/internal/config"
)

// fakeLister is a canned-response versionLister.
type fakeLister struct {
	versions []string
	err      error
}

func (f *fakeLister) SupportedVersions(_ context.Context) ([]string, error) {
	return f.versions, f.err
}

func stubVersionLister(t *testing.T, lister versionLister, err error) {
	orig := newVersionLister
	t.Cleanup(func() { newVersionLister = orig })
	newVersionLister = func(_ context.Context, _ string) (versionLister, error) {
		return lister, err
	}
}

func TestVersions_Local(t *testing.T) {
	var err error
	output := captureOutput(func() {
		err = Versions(context.Background(), "", false)
	})
	require.NoError(t, err)

	for _, v := range config.KafkaVersions() {
		assert.Contains(t, output, v)
	}
}

func TestVersions_RemoteAllOffered(t *testing.T) {
	stubVersionLister(t, &fakeLister{versions: config.KafkaVersions()}, nil)

	var err error
	output := captureOutput(func() {
		err = Versions(context.Background(), "", true)
	})
	require.NoError(t, err)
	assert.NotContains(t, output, "no longer reported")
}

func TestVersions_RemoteStaleEntry(t *testing.T) {
	// The service reports everything except 2.2.1.
	var offered []string
	for _, v := range config.KafkaVersions() {
		if v != "2.2.1" {
			offered = append(offered, v)
		}
	}
	stubVersionLister(t, &fakeLister{versions: offered}, nil)

	var err error
	output := captureOutput(func() {
		err = Versions(context.Background(), "", true)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 allow-list version(s)")
	assert.Contains(t, output, "no longer reported by the service")
}

func TestVersions_RemoteAPIError(t *testing.T) {
	stubVersionLister(t, &fakeLister{err: errors.New("throttled")}, nil)

	err := Versions(context.Background(), "", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
