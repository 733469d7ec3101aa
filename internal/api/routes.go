package api

import (
	"net/http"

	"github.com/JaimeStill/frameforge/internal/config"
	"github.com/JaimeStill/frameforge/internal/frameworks"
	"github.com/JaimeStill/frameforge/internal/prompts"
	"github.com/JaimeStill/frameforge/pkg/openapi"
	"github.com/JaimeStill/frameforge/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
	cfg *config.Config,
) error {
	routes.Register(
		mux,
		domain.Frameworks.Routes(),
		domain.Prompts.Handler(runtime.MaxBodySize).Routes(),
	)

	spec, err := openapi.MarshalJSON(buildSpec(cfg))
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))

	return nil
}

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(frameworks.Schemas())
	spec.Components.AddSchemas(prompts.Schemas())

	spec.AddPaths(frameworks.Paths())
	spec.AddPaths(prompts.Paths())

	return spec
}
