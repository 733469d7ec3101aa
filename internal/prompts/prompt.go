// Package prompts implements the generation and revision round-trips that
// turn free-form task descriptions into framework-structured prompts.
package prompts

import "github.com/JaimeStill/frameforge/internal/frameworks"

// GenerateCommand carries the input for a first-pass generation.
type GenerateCommand struct {
	Framework frameworks.Framework `json:"framework"`
	Input     string               `json:"input"`
}

func (c GenerateCommand) validate() error {
	if c.Framework == "" || c.Input == "" {
		return ErrInvalidRequest
	}
	return nil
}

// ReviseCommand carries a previously generated prompt and the user's
// requested modification.
type ReviseCommand struct {
	Framework         frameworks.Framework `json:"framework"`
	OriginalOutput    string               `json:"originalOutput"`
	ModificationInput string               `json:"modificationInput"`
}

func (c ReviseCommand) validate() error {
	if c.Framework == "" || c.OriginalOutput == "" || c.ModificationInput == "" {
		return ErrInvalidRequest
	}
	return nil
}

// Result is the provider's reply text, returned verbatim.
type Result struct {
	Output string `json:"output"`
}
