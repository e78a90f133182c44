// Package config loads the named data-source registry that maps safe
// identifiers (as supplied by the report-building workflow) to database
// connection URLs.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes environment overrides, e.g.
// SCHEMAMATCH_SOURCES_WAREHOUSE=postgres://... defines source "warehouse".
const envPrefix = "SCHEMAMATCH_"

// Config holds the named data sources.
type Config struct {
	// Sources maps a data-source identifier to its connection URL.
	Sources map[string]string
}

// findConfigFile finds the config file to use.
// Priority: explicit path > schemamatch.yaml > schemamatch.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("schemamatch.yaml"); err == nil {
		return "schemamatch.yaml"
	}
	if _, err := os.Stat("schemamatch.yml"); err == nil {
		return "schemamatch.yml"
	}
	return ""
}

// Load reads the config file (if any) and applies environment overrides.
// A missing file is not an error: env-only and empty configs are valid.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if configFile := findConfigFile(path); configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// SCHEMAMATCH_SOURCES_WAREHOUSE -> sources.warehouse
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{Sources: map[string]string{}}
	for name, url := range k.StringMap("sources") {
		cfg.Sources[name] = url
	}
	return cfg, nil
}

// SourceURL resolves a data-source identifier to its connection URL.
// Lookup is case-insensitive since environment overrides arrive lower-cased.
func (c *Config) SourceURL(name string) (string, bool) {
	if url, ok := c.Sources[name]; ok {
		return url, true
	}
	url, ok := c.Sources[strings.ToLower(name)]
	return url, ok
}
