package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputName(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "202608311405processed.tsv", defaultOutputName("", now))
	assert.Equal(t,
		filepath.Join("out", "202608311405processed.tsv"),
		defaultOutputName("out", now))
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".tsvnorm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: results\nverbose: true\n"), 0o644))
	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "results", c.OutputDir)
	assert.True(t, c.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	c, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config{}, c)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".tsvnorm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [\n"), 0o644))
	_, err := loadConfig(path)
	require.Error(t, err)
}
