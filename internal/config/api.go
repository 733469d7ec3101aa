package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/frameforge/pkg/formatting"
	"github.com/JaimeStill/frameforge/pkg/middleware"
	"github.com/JaimeStill/frameforge/pkg/module"
	"github.com/JaimeStill/frameforge/pkg/openapi"
)

// AppPrefix is the mount point of the browser UI. The API base path may not
// claim it.
const AppPrefix = "/app"

const (
	EnvAPIBasePath         = "FRAMEFORGE_API_BASE_PATH"
	EnvAPIMaxBodySize      = "FRAMEFORGE_API_MAX_BODY_SIZE"
	EnvAPIStrictFrameworks = "FRAMEFORGE_API_STRICT_FRAMEWORKS"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "FRAMEFORGE_CORS_ENABLED",
	Origins:          "FRAMEFORGE_CORS_ORIGINS",
	AllowedMethods:   "FRAMEFORGE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "FRAMEFORGE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "FRAMEFORGE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "FRAMEFORGE_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "FRAMEFORGE_OPENAPI_TITLE",
	Description: "FRAMEFORGE_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, request limits, CORS, and framework
// validation settings.
type APIConfig struct {
	BasePath         string                `toml:"base_path"`
	MaxBodySize      string                `toml:"max_body_size"`
	CORS             middleware.CORSConfig `toml:"cors"`
	StrictFrameworks bool                  `toml:"strict_frameworks"`
	OpenAPI          openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize in bytes. Finalize guarantees it parses.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, _ := formatting.ParseBytes(c.MaxBodySize)
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
// StrictFrameworks can only be switched on by an overlay.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	if overlay.StrictFrameworks {
		c.StrictFrameworks = true
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
	if v := os.Getenv(EnvAPIStrictFrameworks); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.StrictFrameworks = b
		}
	}
}

func (c *APIConfig) validate() error {
	if err := module.ValidatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("invalid base_path: %w", err)
	}
	if c.BasePath == AppPrefix {
		return fmt.Errorf("invalid base_path: %q is reserved for the UI", c.BasePath)
	}
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid max_body_size: %q must be positive", c.MaxBodySize)
	}
	return nil
}
