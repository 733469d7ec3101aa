// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies domain systems require: lifecycle coordination,
// logging, the upstream completion client, and metrics.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/JaimeStill/frameforge/internal/config"
	"github.com/JaimeStill/frameforge/pkg/completion"
	"github.com/JaimeStill/frameforge/pkg/lifecycle"
	"github.com/JaimeStill/frameforge/pkg/metrics"
)

// MetricsNamespace prefixes every service metric.
const MetricsNamespace = "frameforge"

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Completion completion.Client
	Metrics    *metrics.Recorder

	provider completion.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) *Infrastructure {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return &Infrastructure{
		Lifecycle:  lifecycle.New(),
		Logger:     logger,
		Completion: completion.NewOpenAI(&cfg.Provider),
		Metrics:    metrics.New(MetricsNamespace),
		provider:   cfg.Provider,
	}
}

// Start registers infrastructure startup hooks with the lifecycle coordinator.
// A missing API key is reported but not fatal; calls fail upstream instead.
func (i *Infrastructure) Start() error {
	logger := i.Logger.With("system", "completion")

	i.Lifecycle.OnStartup(func() {
		baseURL := i.provider.BaseURL
		if baseURL == "" {
			baseURL = "default"
		}
		logger.Info("provider configured", "model", completion.Model, "base_url", baseURL)

		if i.provider.APIKey == "" {
			logger.Warn("provider api key not set; completion calls will be rejected upstream")
		}
	})

	return nil
}
