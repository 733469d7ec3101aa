package prompts

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/frameforge/pkg/handlers"
	"github.com/JaimeStill/frameforge/pkg/routes"
)

// Handler provides HTTP endpoints for prompt generation and revision.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, and request body limit.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "prompts"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for prompt endpoints.
// The -prompt routes keep earlier clients working.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
			{Method: "POST", Pattern: "/revise", Handler: h.Revise},
			{Method: "POST", Pattern: "/generate-prompt", Handler: h.Generate},
			{Method: "POST", Pattern: "/modify-prompt", Handler: h.Revise},
		},
	}
}

// Generate converts raw task input into a framework-structured prompt.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[GenerateCommand](w, r, h.maxBodySize)
	if err != nil {
		h.fail(w, r, decodeError(err), MsgGenerationFailed)
		return
	}

	result, err := h.sys.Generate(r.Context(), cmd)
	if err != nil {
		h.fail(w, r, err, MsgGenerationFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Revise regenerates a previously generated prompt according to user feedback.
func (h *Handler) Revise(w http.ResponseWriter, r *http.Request) {
	cmd, err := handlers.DecodeJSON[ReviseCommand](w, r, h.maxBodySize)
	if err != nil {
		h.fail(w, r, decodeError(err), MsgRevisionFailed)
		return
	}

	result, err := h.sys.Revise(r.Context(), cmd)
	if err != nil {
		h.fail(w, r, err, MsgRevisionFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	handlers.RespondError(w, r, h.logger, MapHTTPStatus(err), err, Message(err, fallback))
}

func decodeError(err error) error {
	if errors.Is(err, handlers.ErrBodyTooLarge) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
