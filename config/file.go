package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the root structure of the optional YAML configuration file.
// It holds the server's default chunking configuration; per-request
// configurations supplied over the API override it.
type FileConfig struct {
	Chunking ChunkingConfig `yaml:"chunking"`
}

// LoadFile reads a chunking configuration from a YAML file. A missing file is
// not an error: defaults are returned so the server can start unconfigured.
func LoadFile(path string) (ChunkingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultChunkingConfig(), nil
		}
		return ChunkingConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg FileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return ChunkingConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := fileCfg.Chunking
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return ChunkingConfig{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
