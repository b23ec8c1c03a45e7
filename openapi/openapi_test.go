package openapi_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/pathmap"
	"github.com/Gobd/pathmap/openapi"
)

func TestNewRequest(t *testing.T) {
	_, err := openapi.NewRequest()
	require.Error(t, err)

	body, err := openapi.NewRequest(createItem{})
	require.NoError(t, err)
	schema := body.Value.Content["application/json"].Schema
	assert.Contains(t, schema.Value.Properties, "name")
	assert.Contains(t, schema.Value.Properties, "price")
}

func TestNewRequest_OneOf(t *testing.T) {
	body, err := openapi.NewRequest(createItem{}, itemMapping())
	require.NoError(t, err)
	assert.Len(t, body.Value.Content["application/json"].Schema.Value.OneOf, 2)
}

func TestNewResponse(t *testing.T) {
	_, err := openapi.NewResponse(nil)
	require.Error(t, err)

	rs, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "OK", Bodies: []any{itemMapping()}},
		"404": {Desc: "Not found"},
	})
	require.NoError(t, err)

	ok := rs.Value("200")
	require.NotNil(t, ok)
	assert.Equal(t, "OK", *ok.Value.Description)
	assert.Contains(t, ok.Value.Content["application/json"].Schema.Value.Properties, "name")

	missing := rs.Value("404")
	require.NotNil(t, missing)
	assert.Empty(t, missing.Value.Content)
}

func TestNewResponse_BuilderError(t *testing.T) {
	b := pathmap.New().From("", pathmap.To("name"))
	_, err := openapi.NewResponse(map[string]openapi.Response{
		"200": {Desc: "OK", Bodies: []any{b}},
	})
	require.Error(t, err)
}

func TestEndpoints(t *testing.T) {
	doc := openapi.DocBase("Shop API", "", "1.0.0")

	openapi.Get(doc, "/items", "listItems", openapi.Endpoint{Response: itemMapping()})
	openapi.Put(doc, "/items/{id}", "replaceItem", openapi.Endpoint{Request: createItem{}})
	openapi.Patch(doc, "/items/{id}", "updateItem", openapi.Endpoint{Requests: []any{createItem{}, itemMapping()}})
	openapi.Delete(doc, "/items/{id}", "deleteItem", openapi.Endpoint{
		Responses: map[string]openapi.Response{"204": {Desc: "Deleted"}},
	})

	list := doc.Paths.Value("/items")
	require.NotNil(t, list)
	assert.Equal(t, "listItems", list.Get.OperationID)

	item := doc.Paths.Value("/items/{id}")
	require.NotNil(t, item)
	assert.Equal(t, "replaceItem", item.Put.OperationID)
	assert.Equal(t, "updateItem", item.Patch.OperationID)
	assert.Equal(t, "deleteItem", item.Delete.OperationID)
	assert.NotNil(t, item.Delete.Responses.Value("204"))
	assert.NotNil(t, item.Put.Responses)
}

func TestNewSchemaRef_Passthrough(t *testing.T) {
	ref := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	got, err := openapi.NewSchemaRef(ref)
	require.NoError(t, err)
	assert.Same(t, ref, got)
}
