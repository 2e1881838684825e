package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// localConfigFile is picked up from the working directory when no explicit
// path is given.
const localConfigFile = "starfall.yaml"

// Load resolves the game configuration.
// Search order: customPath -> ./starfall.yaml -> built-in defaults.
// An explicit path that cannot be read or parsed is an error; the fallback
// search is best-effort. The YAML file only needs to name the fields it
// overrides — unset fields keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if data, err := os.ReadFile(localConfigFile); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", localConfigFile, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", localConfigFile, err)
		}
		return cfg, nil
	}

	return cfg, nil
}
