package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BRAINHACK_OUTPUT_DIR -> output_dir).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("BRAINHACK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BRAINHACK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Site.Title == "" {
		return fmt.Errorf("site.title is required")
	}
	if c.Data.Path == "" {
		return fmt.Errorf("data.path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be between 1 and 65535")
	}
	if c.GitHub.Repo != "" && !strings.Contains(c.GitHub.Repo, "/") {
		return fmt.Errorf("github.repo must be owner/name, got %q", c.GitHub.Repo)
	}
	return nil
}

// TokenFromEnv returns the GitHub token for the intake pipeline, if set.
// Unauthenticated fetches work but hit much lower rate limits.
func TokenFromEnv() string {
	return os.Getenv("GITHUB_TOKEN")
}
