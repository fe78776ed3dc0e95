package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hetvrp/internal/fleet"
)

// LoadFleet reads a fleet file. An empty path yields the placeholder fleet.
// Keys missing from the file keep their placeholder values.
func LoadFleet(path string) (*fleet.Fleet, error) {
	cfg := fleet.DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load fleet: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("load fleet %s: %w", path, err)
		}
	}
	return fleet.New(cfg)
}
