package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "title: Weekend Reader\nmin_similarity: 45\nenable_clustering: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Weekend Reader", cfg.Title)
	assert.Equal(t, 45.0, cfg.MinSimilarity)
	assert.Equal(t, Default().ListenAddr, cfg.ListenAddr, "unset fields keep defaults")
	assert.Equal(t, Default().StorePath, cfg.StorePath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestClusterOptions(t *testing.T) {
	cfg := Default()
	cfg.MinSimilarity = 55
	cfg.EnableClustering = false

	opts := cfg.ClusterOptions()

	assert.Equal(t, 55.0, opts.MinSimilarity)
	assert.False(t, opts.EnableClustering)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.StorePath = filepath.Join(dir, "data", "articles.json")
	cfg.OutputPath = filepath.Join(dir, "out", "magazine.html")

	require.NoError(t, cfg.EnsureDirs())

	assert.DirExists(t, filepath.Join(dir, "data"))
	assert.DirExists(t, filepath.Join(dir, "out"))
}
