// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/frameforge/internal/config"
	"github.com/JaimeStill/frameforge/internal/infrastructure"
	"github.com/JaimeStill/frameforge/pkg/middleware"
	"github.com/JaimeStill/frameforge/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, runtime, cfg); err != nil {
		return nil, fmt.Errorf("register api routes: %w", err)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(runtime.Metrics.Middleware())
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
