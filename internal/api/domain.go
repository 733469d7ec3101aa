package api

import (
	"github.com/JaimeStill/frameforge/internal/frameworks"
	"github.com/JaimeStill/frameforge/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Frameworks *frameworks.Handler
	Prompts    prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Frameworks: frameworks.NewHandler(),
		Prompts: prompts.New(
			runtime.Completion,
			runtime.Logger,
			runtime.Metrics,
			runtime.StrictFrameworks,
		),
	}
}
