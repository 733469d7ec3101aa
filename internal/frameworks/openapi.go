package frameworks

import "github.com/JaimeStill/frameforge/pkg/openapi"

// Schemas returns the component schemas for framework endpoints.
func Schemas() map[string]*openapi.Schema {
	enum := make([]any, len(order))
	for i, f := range order {
		enum[i] = string(f)
	}

	return map[string]*openapi.Schema{
		"Framework": {
			Type:        "string",
			Description: "Framework identifier",
			Enum:        enum,
		},
		"FrameworkEntry": {
			Type:     "object",
			Required: []string{"name", "description"},
			Properties: map[string]*openapi.Schema{
				"name":        openapi.SchemaRef("Framework"),
				"description": {Type: "string"},
			},
		},
		"FrameworkCatalog": {
			Type:  "array",
			Items: openapi.SchemaRef("FrameworkEntry"),
		},
	}
}

// Paths returns the path items served by Handler, relative to the API base.
func Paths() map[string]*openapi.PathItem {
	return map[string]*openapi.PathItem{
		"/frameworks": {
			Get: &openapi.Operation{
				Summary:     "List frameworks",
				OperationID: "listFrameworks",
				Tags:        []string{"frameworks"},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSON("Known frameworks in display order", "FrameworkCatalog"),
				},
			},
		},
	}
}
