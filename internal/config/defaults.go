package config

// Default values applied to zero fields.
const (
	DefaultSiteDir   = "_site"
	DefaultIndexFile = "search.json"
	DefaultOrigin    = "http://localhost:4000"
	DefaultInputID   = "site-search-input"
	DefaultResultsID = "site-search-results"
	DefaultHost      = "localhost"
	DefaultPort      = 4000
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Site.Dir == "" {
		cfg.Site.Dir = DefaultSiteDir
	}
	if cfg.Site.IndexFile == "" {
		cfg.Site.IndexFile = DefaultIndexFile
	}
	if cfg.Site.Origin == "" {
		cfg.Site.Origin = DefaultOrigin
	}
	if cfg.Site.InputID == "" {
		cfg.Site.InputID = DefaultInputID
	}
	if cfg.Site.ResultsID == "" {
		cfg.Site.ResultsID = DefaultResultsID
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
}
