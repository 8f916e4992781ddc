package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type RiskConfig struct {
	MinCoBids      int `toml:"min_co_bids"`
	MinClusterSize int `toml:"min_cluster_size"`
	Workers        int `toml:"workers"`
}

type MemgraphConfig struct {
	Enabled  bool   `toml:"enabled"`
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Risk     RiskConfig     `toml:"risk"`
	Memgraph MemgraphConfig `toml:"memgraph"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Risk: RiskConfig{
			MinCoBids:      3,
			MinClusterSize: 3,
			Workers:        8,
		},
		Memgraph: MemgraphConfig{URI: "bolt://localhost:7687"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}
