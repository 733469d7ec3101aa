package openapi

import "maps"

// NewComponents creates Components with the shared error schema and the
// error responses every endpoint can return.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Localized error message"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Missing fields, malformed JSON, or unsupported framework"),
			"PayloadTooLarge": errorResponse("Request body exceeds the configured limit"),
			"InternalError":   errorResponse("Upstream completion failed"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}
