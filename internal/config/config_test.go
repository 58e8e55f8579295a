package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
site:
  baseurl: "/blog"
  dir: "./public"
server:
  host: "127.0.0.1"
  port: 9000
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/blog", cfg.Site.BaseURL)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "public"), cfg.Site.Dir)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.False(t, cfg.Debug, "debug should default to false when unset")
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "sitesearch.toml", `
debug = true

[site]
baseurl = "/docs"
origin = "https://example.com"

[server]
port = 8080
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/docs", cfg.Site.BaseURL)
	assert.Equal(t, "https://example.com", cfg.Site.Origin)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", "{}\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Site.BaseURL, "base url defaults to empty")
	assert.Equal(t, filepath.Join(filepath.Dir(path), "_site"), cfg.Site.Dir)
	assert.Equal(t, "search.json", cfg.Site.IndexFile)
	assert.Equal(t, "site-search-input", cfg.Site.InputID)
	assert.Equal(t, "site-search-results", cfg.Site.ResultsID)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, filepath.Join(cfg.Site.Dir, "search.json"), cfg.Site.IndexPath())
}

func TestLoad_AbsoluteDirKept(t *testing.T) {
	abs := t.TempDir()
	path := writeConfig(t, "config.yaml", "site:\n  dir: \""+filepath.ToSlash(abs)+"\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(abs), filepath.Clean(cfg.Site.Dir))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	path := writeConfig(t, "config.yaml", "site: [unclosed\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")

	path = writeConfig(t, "config.toml", "[site\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.True(t, filepath.IsAbs(cfg.Site.Dir))
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "/env")
	t.Setenv(EnvPort, "5000")
	t.Setenv(EnvDebug, "true")

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, ""))
	assert.Equal(t, "/env", cfg.Site.BaseURL)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.True(t, cfg.Debug)
}

func TestApplyEnv_EmptyBaseURLOverrides(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	cfg := Default()
	cfg.Site.BaseURL = "/from-file"
	require.NoError(t, ApplyEnv(cfg, ""))
	assert.Equal(t, "", cfg.Site.BaseURL)
}

func TestApplyEnv_DotEnvFile(t *testing.T) {
	t.Setenv(EnvOrigin, "")
	envFile := writeConfig(t, ".env", EnvOrigin+"=https://dotenv.example\n")
	t.Cleanup(func() { os.Unsetenv(EnvOrigin) })
	os.Unsetenv(EnvOrigin)

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, envFile))
	assert.Equal(t, "https://dotenv.example", cfg.Site.Origin)
}

func TestApplyEnv_MissingDotEnvIgnored(t *testing.T) {
	cfg := Default()
	assert.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), ".env")))
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "http")
	err := ApplyEnv(Default(), "")
	assert.ErrorContains(t, err, EnvPort)
}
