// Package config manages YAML-based configuration for gazette.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thebtf/gazette/pkg/cluster"
)

// Config is the top-level YAML structure.
type Config struct {
	// Title is the magazine title rendered at the top of the assembled
	// document.
	Title string `yaml:"title"`

	// StorePath is the JSON file holding content records.
	StorePath string `yaml:"store_path"`

	// OutputPath is where the assembled magazine document is written.
	OutputPath string `yaml:"output_path"`

	// ListenAddr is the HTTP listen address for the upload server.
	ListenAddr string `yaml:"listen_addr"`

	// MinSimilarity is the clustering admission threshold (0-100).
	MinSimilarity float64 `yaml:"min_similarity"`

	// EnableClustering toggles topical grouping; when false the magazine
	// is a single flat section in insertion order.
	EnableClustering bool `yaml:"enable_clustering"`
}

// Default returns the standard configuration rooted at ~/.gazette.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".gazette")
	return &Config{
		Title:            "My Magazine",
		StorePath:        filepath.Join(dataDir, "articles.json"),
		OutputPath:       filepath.Join(dataDir, "magazine.html"),
		ListenAddr:       "127.0.0.1:8787",
		MinSimilarity:    cluster.DefaultMinSimilarity,
		EnableClustering: true,
	}
}

// Load reads the YAML file at path. A missing file is not an error: Load
// returns Default() so a fresh install works without any setup. Fields
// left empty in the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ClusterOptions translates the configuration into engine options.
func (c *Config) ClusterOptions() *cluster.Options {
	return &cluster.Options{
		MinSimilarity:    c.MinSimilarity,
		EnableClustering: c.EnableClustering,
	}
}

// EnsureDirs creates the directories for the store and output paths.
func (c *Config) EnsureDirs() error {
	for _, p := range []string{c.StorePath, c.OutputPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	return nil
}
