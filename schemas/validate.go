package schemas

import (
	"errors"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"google.golang.org/genai"
)

// ShapeError reports where a decoded value stopped matching its schema
type ShapeError struct {
	Path   string
	Reason string
	Err    *openapi3.SchemaError
}

func (e *ShapeError) Error() string {
	return "schema violation at " + e.Path + ": " + e.Reason
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Validate checks a decoded JSON value (maps, slices, float64, string, bool)
// against the shape of the kind: node types and required properties.
func (d Descriptor) Validate(v any) error {
	err := d.shape.VisitJSON(v)
	if err == nil {
		return nil
	}

	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return err
	}

	return &ShapeError{
		Path:   jsonPath(schemaErr.JSONPointer()),
		Reason: schemaErr.Reason,
		Err:    schemaErr,
	}
}

// openAPISchema mirrors a genai schema as an OpenAPI schema. genai type names
// are the upper case OpenAPI ones.
func openAPISchema(s *genai.Schema) *openapi3.Schema {
	out := &openapi3.Schema{Required: s.Required}

	if s.Type != "" {
		out.Type = &openapi3.Types{strings.ToLower(string(s.Type))}
	}

	if s.Nullable != nil {
		out.Nullable = *s.Nullable
	}

	if s.Items != nil {
		out.Items = openapi3.NewSchemaRef("", openAPISchema(s.Items))
	}

	if len(s.Properties) > 0 {
		out.Properties = make(openapi3.Schemas, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = openapi3.NewSchemaRef("", openAPISchema(prop))
		}
	}

	return out
}

func jsonPath(pointer []string) string {
	var b strings.Builder
	b.WriteString("$")

	for _, seg := range pointer {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
		} else {
			b.WriteString("." + seg)
		}
	}

	return b.String()
}
