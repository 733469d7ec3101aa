package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/frameforge/internal/api"
	"github.com/JaimeStill/frameforge/internal/config"
	"github.com/JaimeStill/frameforge/internal/infrastructure"
	"github.com/JaimeStill/frameforge/pkg/lifecycle"
	"github.com/JaimeStill/frameforge/pkg/middleware"
	"github.com/JaimeStill/frameforge/pkg/module"
	"github.com/JaimeStill/frameforge/web/app"
)

// Modules holds every HTTP module mounted on the root router.
type Modules struct {
	API *module.Module
	App *module.Module
}

// NewModules creates the API and UI modules.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(config.AppPrefix, cfg.API.BasePath)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.RequestID())
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

// Mount registers every module with router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, config.AppPrefix+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})

	router.HandleNative("GET /readyz", readyHandler(infra.Lifecycle))

	metrics := infra.Metrics.Handler()
	router.HandleNative("GET /metrics", metrics.ServeHTTP)

	return router
}

func readyHandler(rc lifecycle.ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !rc.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, "not ready")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	}
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
