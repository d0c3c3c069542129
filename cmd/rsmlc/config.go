package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk project config (rsmlc.config.yaml). It lets a
// project register extra named colors layered on top of the bundled
// CSS/Tailwind tables, the same unmarshal-then-walk approach
// formatter.Format uses for docker-compose trees: decode with yaml.v3,
// then apply the decoded tree directly rather than hand-rolling a parser.
type Config struct {
	Colors map[string]string `yaml:"colors"`
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
