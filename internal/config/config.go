// Package config provides configuration loading and structs for sitesearch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug  bool         `yaml:"debug" toml:"debug"`
	Site   SiteConfig   `yaml:"site" toml:"site"`
	Server ServerConfig `yaml:"server" toml:"server"`
}

// SiteConfig describes the static site whose search.json is searched.
type SiteConfig struct {
	// BaseURL is the data-baseurl prefix; the index lives at BaseURL + "/search.json".
	BaseURL string `yaml:"baseurl" toml:"baseurl"`
	// Origin is the scheme and host used to resolve the index location outside a browser.
	Origin string `yaml:"origin" toml:"origin"`
	// Dir is the built site directory served by `sitesearch serve`.
	Dir string `yaml:"dir" toml:"dir"`
	// IndexFile is the index path relative to Dir.
	IndexFile string `yaml:"index_file" toml:"index_file"`
	InputID   string `yaml:"input_id" toml:"input_id"`
	ResultsID string `yaml:"results_id" toml:"results_id"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" toml:"host"`
	Port int    `yaml:"port" toml:"port"`
}

// Environment variables that override file values.
const (
	EnvBaseURL = "SITESEARCH_BASEURL"
	EnvOrigin  = "SITESEARCH_ORIGIN"
	EnvSiteDir = "SITESEARCH_SITE_DIR"
	EnvHost    = "SITESEARCH_HOST"
	EnvPort    = "SITESEARCH_PORT"
	EnvDebug   = "SITESEARCH_DEBUG"
)

// IndexPath returns the absolute path of the index file inside the site directory.
func (s SiteConfig) IndexPath() string {
	return filepath.Join(s.Dir, s.IndexFile)
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Files ending in .toml are parsed as TOML, everything else as YAML.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	cfg.Site.Dir = expandPath(cfg.Site.Dir, filepath.Dir(path))
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	cfg.Site.Dir = expandPath(cfg.Site.Dir, ".")
	return &cfg
}

// ApplyEnv loads envFile (when present) into the process environment and applies
// SITESEARCH_* overrides to cfg. Variables already set in the environment win over the file.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}
	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		cfg.Site.BaseURL = v
	}
	if v := os.Getenv(EnvOrigin); v != "" {
		cfg.Site.Origin = v
	}
	if v := os.Getenv(EnvSiteDir); v != "" {
		cfg.Site.Dir = expandPath(v, ".")
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		cfg.Debug = debug
	}
	return nil
}

// expandPath converts a path to absolute. Relative paths are relative to baseDir.
func expandPath(path string, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(filepath.Join(baseDir, path)); err == nil {
		return abs
	}
	return path
}
