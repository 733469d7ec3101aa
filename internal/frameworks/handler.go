package frameworks

import (
	"net/http"

	"github.com/JaimeStill/frameforge/pkg/handlers"
	"github.com/JaimeStill/frameforge/pkg/routes"
)

// Handler serves the framework catalog.
type Handler struct{}

// NewHandler creates a catalog Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns the route group definition for framework endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/frameworks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List returns the catalog of known frameworks.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Catalog())
}
