package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the export run configuration. Every field can also be set
// from the command line; flags override file values.
type Config struct {
	Projects    []string `yaml:"projects,omitempty"`
	Bucket      string   `yaml:"bucket,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	UseAsset    bool     `yaml:"use_asset,omitempty"`
	History     string   `yaml:"history,omitempty"`
	Credentials string   `yaml:"credentials,omitempty"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate ensures the config can drive a run. A missing project is the one
// fatal configuration error.
func (c *Config) Validate() error {
	if len(c.Projects) == 0 {
		return fmt.Errorf("no project specified")
	}
	for _, p := range c.Projects {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("empty project ID in project list")
		}
	}
	return nil
}

// SplitProjects parses a comma-separated project list, dropping blanks.
func SplitProjects(s string) []string {
	var projects []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			projects = append(projects, p)
		}
	}
	return projects
}

// DefaultOutput returns the default workbook filename for a project.
func DefaultOutput(project string, now time.Time) string {
	ts := now.UTC().Format("20060102T150405Z")
	return fmt.Sprintf("kirja-inventory-%s-%s.xlsx", project, ts)
}
