package config

import (
	"time"

	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
)

// Config holds runtime settings for the admin console.
//
// Fields:
//   - APIBaseURL: absolute base URL of the backend HTTP API. There is no
//     default; a missing value is a configuration error.
//   - RequestTimeout: per-request timeout for API calls.
//   - SessionFile: path of the file holding the persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string
}

// LoadDefaults populates c with sensible defaults. APIBaseURL is deliberately
// left empty: the API location must always be provided explicitly.
func (c *Config) LoadDefaults() {
	c.RequestTimeout = 10 * time.Second
	c.SessionFile = "auth.json"
}

// Validate reports whether the config is usable. An empty APIBaseURL is a
// hard error surfaced to the user before any request is attempted.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return common.ErrMissingBaseURL
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
