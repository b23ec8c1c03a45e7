package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/Gobd/pathmap"
)

// NewSchemaRef returns the schema of a request or response body. A
// *pathmap.Builder is described by the output it builds, a ready
// *openapi3.SchemaRef is used as is and any other value is reflected with
// openapi3gen.
func NewSchemaRef(body any) (*openapi3.SchemaRef, error) {
	switch v := body.(type) {
	case *pathmap.Builder:
		return v.Schema()
	case *openapi3.SchemaRef:
		return v, nil
	default:
		return openapi3gen.NewSchemaRefForValue(body, nil)
	}
}

// schemaRefs returns the schemas of bodies, in order.
func schemaRefs(bodies []any) (openapi3.SchemaRefs, error) {
	refs := make(openapi3.SchemaRefs, 0, len(bodies))
	for _, body := range bodies {
		ref, err := NewSchemaRef(body)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// jsonContent returns application/json content for refs, using oneOf when
// there is more than one.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.Content{
		"application/json": &openapi3.MediaType{Schema: schema},
	}
}
