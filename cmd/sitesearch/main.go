// Package main is the sitesearch CLI entry point.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hyperjump/sitesearch/internal/config"
	"github.com/hyperjump/sitesearch/internal/loader"
	"github.com/hyperjump/sitesearch/pkg/utils"
)

var version = "dev"

const (
	defaultConfigPath = "sitesearch.yaml"
	defaultEnvFile    = ".env"
)

// configFallbacks are tried, in order, when --config is left at its default.
var configFallbacks = []string{defaultConfigPath, "sitesearch.yml", "sitesearch.toml"}

type rootOptions struct {
	configPath string
	envFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "sitesearch",
		Short: "Client-side search for static sites",
		Long: `sitesearch loads a static site's search.json once and filters it as you type.
It can serve a built site with a search API, run one query, or host the
search dropdown in a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigPath, "config file path (YAML or TOML)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file with SITESEARCH_* overrides")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(opts),
		newQueryCmd(opts),
		newTUICmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sitesearch version %s\n", version)
		},
	}
}

// loadConfig loads config from path. When path is the default, the YAML and TOML
// fallbacks in the current directory are tried and, if none exists, defaults are used.
// Returns the config and the path that was actually loaded ("" for defaults).
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		for _, candidate := range configFallbacks {
			if _, err := os.Stat(candidate); err == nil {
				cfg, err := config.Load(candidate)
				if err != nil {
					return nil, "", err
				}
				return cfg, candidate, nil
			}
		}
		return config.Default(), "", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// setup resolves the configuration with env overrides and reports whether debug is on.
func setup(opts *rootOptions) (*config.Config, string, bool, error) {
	cfg, resolved, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, "", false, err
	}
	if err := config.ApplyEnv(cfg, opts.envFile); err != nil {
		return nil, "", false, err
	}
	return cfg, resolved, cfg.Debug || opts.debug, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	logger, err := utils.NewLogger(debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// sourceFlags select where a one-shot or terminal session loads its index from.
type sourceFlags struct {
	index   string
	origin  string
	baseURL string
	timeout time.Duration
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.index, "index", "", "read the index from this file instead of fetching it")
	cmd.Flags().StringVar(&s.origin, "origin", "", "scheme and host the index location resolves against")
	cmd.Flags().StringVar(&s.baseURL, "baseurl", "", "base URL prefix of search.json (overrides config)")
	cmd.Flags().DurationVar(&s.timeout, "timeout", 10*time.Second, "index fetch timeout")
}

// apply copies explicitly set flags onto cfg.
func (s *sourceFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("origin") {
		cfg.Site.Origin = s.origin
	}
	if cmd.Flags().Changed("baseurl") {
		cfg.Site.BaseURL = s.baseURL
	}
}

func (s *sourceFlags) fetcher(cfg *config.Config) loader.Fetcher {
	if s.index != "" {
		return loader.FileFetcher{Path: s.index}
	}
	return loader.NewHTTPFetcher(cfg.Site.Origin, &http.Client{Timeout: s.timeout})
}

// buildQuery joins positional arguments into one query string.
func buildQuery(args []string) string {
	return strings.Join(args, " ")
}
