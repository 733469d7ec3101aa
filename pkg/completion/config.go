package completion

import (
	"fmt"
	"net/url"
	"os"
)

// Config holds provider connection settings. Both fields are read once at
// startup; an empty APIKey is passed through and fails at call time.
type Config struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// Env maps config fields to environment variable names. Each field accepts
// a list of names; the first non-empty variable wins.
type Env struct {
	APIKey  []string
	BaseURL []string
}

// Finalize applies environment overrides and validation.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := firstEnv(env.APIKey); v != "" {
		c.APIKey = v
	}
	if v := firstEnv(env.BaseURL); v != "" {
		c.BaseURL = v
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url: %q is not an absolute URL", c.BaseURL)
	}
	return nil
}

func firstEnv(names []string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
