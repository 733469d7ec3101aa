package prompts

import "github.com/JaimeStill/frameforge/pkg/openapi"

// Schemas returns the component schemas for prompt endpoints.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"GenerateCommand": {
			Type:     "object",
			Required: []string{"framework", "input"},
			Properties: map[string]*openapi.Schema{
				"framework": openapi.SchemaRef("Framework"),
				"input":     openapi.NonEmptyString("Free-form task description"),
			},
		},
		"ReviseCommand": {
			Type:     "object",
			Required: []string{"framework", "originalOutput", "modificationInput"},
			Properties: map[string]*openapi.Schema{
				"framework":         openapi.SchemaRef("Framework"),
				"originalOutput":    openapi.NonEmptyString("Previously generated prompt"),
				"modificationInput": openapi.NonEmptyString("Requested changes"),
			},
		},
		"Result": {
			Type:     "object",
			Required: []string{"output"},
			Properties: map[string]*openapi.Schema{
				"output": {Type: "string", Description: "Model output, verbatim"},
			},
		},
	}
}

// Paths returns the path items served by Handler, relative to the API base.
func Paths() map[string]*openapi.PathItem {
	generate := func(id string, deprecated bool) *openapi.Operation {
		return &openapi.Operation{
			Summary:     "Generate a framework prompt",
			OperationID: id,
			Tags:        []string{"prompts"},
			Deprecated:  deprecated,
			RequestBody: openapi.RequestBodyJSON("GenerateCommand", true),
			Responses:   responses("Generated prompt"),
		}
	}
	revise := func(id string, deprecated bool) *openapi.Operation {
		return &openapi.Operation{
			Summary:     "Revise a generated prompt",
			OperationID: id,
			Tags:        []string{"prompts"},
			Deprecated:  deprecated,
			RequestBody: openapi.RequestBodyJSON("ReviseCommand", true),
			Responses:   responses("Revised prompt"),
		}
	}

	return map[string]*openapi.PathItem{
		"/generate":        {Post: generate("generatePrompt", false)},
		"/revise":          {Post: revise("revisePrompt", false)},
		"/generate-prompt": {Post: generate("generatePromptLegacy", true)},
		"/modify-prompt":   {Post: revise("revisePromptLegacy", true)},
	}
}

func responses(success string) map[int]*openapi.Response {
	return map[int]*openapi.Response{
		200: openapi.ResponseJSON(success, "Result"),
		400: openapi.ResponseRef("BadRequest"),
		413: openapi.ResponseRef("PayloadTooLarge"),
		500: openapi.ResponseRef("InternalError"),
	}
}
