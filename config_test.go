package jsonable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundable/jsonable"
)

func TestDefaultConfig_ValidationEnabled(t *testing.T) {
	assert.True(t, jsonable.DefaultConfig().Validate)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boundary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validate: false\n"), 0o644))

	cfg, err := jsonable.LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Validate)
}

func TestLoadConfig_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := jsonable.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, cfg.Validate)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validate: [\n"), 0o644))
	_, err := jsonable.LoadConfig(path)
	require.Error(t, err)
}
