package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response. Each body is a *pathmap.Builder, a
// *openapi3.SchemaRef or a Go value; several bodies are documented as oneOf.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for [Get], [Post], [Put],
// [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // single request body
	Requests    []any               // several request bodies (oneOf)
	Response    any                 // single 200 response body, typically a *pathmap.Builder
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(bodies ...any) *openapi3.RequestBodyRef {
	o, err := NewRequest(bodies...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest returns a JSON request body documenting bodies.
func NewRequest(bodies ...any) (*openapi3.RequestBodyRef, error) {
	if len(bodies) == 0 {
		return nil, errors.New("openapi: no request bodies given")
	}
	refs, err := schemaRefs(bodies)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{Content: jsonContent(refs)},
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(rs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(rs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(rs map[string]Response) (*openapi3.Responses, error) {
	if len(rs) == 0 {
		return nil, errors.New("openapi: no responses given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(rs))
	for status, r := range rs {
		refs, err := schemaRefs(r.Bodies)
		if err != nil {
			return nil, err
		}
		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}
		if len(refs) > 0 {
			resp.Content = jsonContent(refs)
		}
		opts = append(opts, openapi3.WithName(status, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the document at the given path and method.
func AddPath(path, method string, doc *openapi3.T, op *openapi3.Operation) {
	p := doc.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	doc.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
