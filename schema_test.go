package pathmap_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pm "github.com/Gobd/pathmap"
)

func schemaFor(t *testing.T, b *pm.Builder) *openapi3.Schema {
	t.Helper()
	ref, err := b.Schema()
	require.NoError(t, err)
	require.NotNil(t, ref.Value)
	return ref.Value
}

func TestSchema_Properties(t *testing.T) {
	schema := schemaFor(t, pm.New().
		From("name").
		From("id", pm.To("user_id")).
		From("created", pm.Transform(pm.ISO8601)))

	assert.True(t, schema.Type.Is(openapi3.TypeObject))
	assert.Contains(t, schema.Properties, "name")
	assert.Contains(t, schema.Properties, "user_id")
	assert.NotContains(t, schema.Properties, "id")

	created := schema.Properties["created"].Value
	assert.True(t, created.Type.Is(openapi3.TypeString))
	assert.Equal(t, "date-time", created.Format)
}

func TestSchema_Presets(t *testing.T) {
	tests := []struct {
		preset pm.Preset
		typ    string
		format string
	}{
		{pm.Date, openapi3.TypeString, "date-time"},
		{pm.Int, openapi3.TypeInteger, "int64"},
		{pm.Float, openapi3.TypeNumber, "double"},
		{pm.String, openapi3.TypeString, ""},
		{pm.Snake, openapi3.TypeString, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			schema := schemaFor(t, pm.New().From("v", pm.Transform(tt.preset)))
			v := schema.Properties["v"].Value
			assert.True(t, v.Type.Is(tt.typ))
			assert.Equal(t, tt.format, v.Format)
		})
	}
}

func TestSchema_NestedTargets(t *testing.T) {
	schema := schemaFor(t, pm.New().
		From("city", pm.To("address.city")).
		From("zip", pm.To("address.zip")))

	address := schema.Properties["address"].Value
	assert.True(t, address.Type.Is(openapi3.TypeObject))
	assert.Contains(t, address.Properties, "city")
	assert.Contains(t, address.Properties, "zip")
}

func TestSchema_Iterable(t *testing.T) {
	schema := schemaFor(t, pm.New().FromEach("tags", pm.Transform(pm.Lower)))

	tags := schema.Properties["tags"].Value
	assert.Equal(t, &openapi3.Types{"array"}, tags.Type)
	require.NotNil(t, tags.Items)
}

func TestSchema_SubBuilder(t *testing.T) {
	schema := schemaFor(t, pm.New().
		FromEach("items", pm.WithBuilder(func(c *pm.Builder) {
			c.From("label")
			c.From("qty", pm.Transform(pm.Int))
		})))

	items := schema.Properties["items"].Value
	assert.True(t, items.Type.Is(openapi3.TypeArray))
	require.NotNil(t, items.Items)
	assert.Contains(t, items.Items.Value.Properties, "label")
	assert.True(t, items.Items.Value.Properties["qty"].Value.Type.Is(openapi3.TypeInteger))
}

func TestSchema_Documentation(t *testing.T) {
	schema := schemaFor(t, pm.New().
		From("notes", pm.Describe("free-form notes"), pm.Example("call back later")).
		From("legacy_id", pm.Deprecate()).
		From("prefs", pm.Defaults(map[string]any{"theme": "dark"})))

	notes := schema.Properties["notes"].Value
	assert.Equal(t, "free-form notes", notes.Description)
	assert.Equal(t, "call back later", notes.Example)

	assert.True(t, schema.Properties["legacy_id"].Value.Deprecated)

	prefs := schema.Properties["prefs"].Value
	assert.True(t, prefs.Type.Is(openapi3.TypeObject))
	assert.Equal(t, map[string]any{"theme": "dark"}, prefs.Default)
}

func TestSchema_DeclarationError(t *testing.T) {
	_, err := pm.New().From("").Schema()
	require.Error(t, err)
}

func TestRule_Describe(t *testing.T) {
	r, err := pm.NewRule(pm.ScalarRule, "a", pm.Describe("second"))
	require.NoError(t, err)

	s := openapi3.NewStringSchema()
	s.Description = "first"
	ref := openapi3.NewSchemaRef("", s)
	require.NoError(t, r.Describe("a", nil, ref))
	assert.Equal(t, "first second", ref.Value.Description)
}
