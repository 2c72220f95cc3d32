package config

import "time"

// Config holds runtime settings for the portal client.
//
// Fields:
//   - GatewayBaseURL: base URL of the REST API gateway.
//   - StateDBPath: path of the local sqlite file backing the session store.
//   - RequestTimeout: per-request timeout for gateway calls.
type Config struct {
	GatewayBaseURL string
	StateDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayBaseURL = "http://127.0.0.1:8080"
	c.StateDBPath = "portal.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
