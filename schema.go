package pathmap

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/pathmap/callback"
	"github.com/Gobd/pathmap/datapath"
)

// Schema describes the output of a build as an OpenAPI object schema.
// Dotted target paths become nested objects and iterable rules become
// arrays. Rules that transform with a builder are described by the schema
// of the child builder their configurator declares; the configurator is
// called with an unbound [Binding] for this.
func (b *Builder) Schema() (*openapi3.SchemaRef, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	root := openapi3.NewObjectSchema()
	for _, r := range b.rules.rules {
		segs := datapath.Split(r.to)
		if len(segs) == 0 {
			continue
		}

		parent := root
		for _, seg := range segs[:len(segs)-1] {
			parent = objectProperty(parent, seg)
		}

		ref, err := r.schema()
		if err != nil {
			return nil, fmt.Errorf("pathmap: schema for %q: %w", r.to, err)
		}
		name := segs[len(segs)-1]
		if err := r.Describe(name, parent, ref); err != nil {
			return nil, err
		}
		parent.WithPropertyRef(name, ref)
	}
	return openapi3.NewSchemaRef("", root), nil
}

// objectProperty returns the object schema at name, replacing any non-object
// property written there by an earlier rule.
func objectProperty(parent *openapi3.Schema, name string) *openapi3.Schema {
	if ref, ok := parent.Properties[name]; ok && ref.Value != nil && ref.Value.Type.Is(openapi3.TypeObject) {
		return ref.Value
	}
	child := openapi3.NewObjectSchema()
	parent.WithProperty(name, child)
	return child
}

func (r *Rule) schema() (*openapi3.SchemaRef, error) {
	elem, err := r.elementSchema()
	if err != nil {
		return nil, err
	}
	if r.Iterable() {
		return openapi3.NewSchemaRef("", openapi3.NewArraySchema().WithItems(elem)), nil
	}
	return openapi3.NewSchemaRef("", elem), nil
}

// elementSchema describes one output value: the whole value for scalar
// rules or one element for iterable ones.
func (r *Rule) elementSchema() (*openapi3.Schema, error) {
	if r.UsesBuilder() {
		return r.childSchema()
	}

	var s *openapi3.Schema
	switch r.preset {
	case ISO8601, Date:
		s = openapi3.NewDateTimeSchema()
	case Int:
		s = openapi3.NewInt64Schema()
	case Float:
		s = openapi3.NewFloat64Schema()
	case String, Snake, Camel:
		s = openapi3.NewStringSchema()
	default:
		s = openapi3.NewSchema()
	}

	if r.HasDefaults() {
		if r.transform == NoTransform {
			s = openapi3.NewObjectSchema()
		}
		s.Default = r.Defaults()
	}
	return s, nil
}

func (r *Rule) childSchema() (*openapi3.Schema, error) {
	bd := &Binding{rule: r, wrap: NewDefaultDataWrapper}
	child := newChild(bd)
	if _, err := callback.Call(r.fn, []any{child, bd}, map[string]any{"builder": child, "rule": bd}); err != nil {
		return nil, err
	}
	if !child.HasRules() {
		return openapi3.NewSchema(), nil
	}
	ref, err := child.Schema()
	if err != nil {
		return nil, err
	}
	return ref.Value, nil
}

// Describe applies the documentation options of the rule to ref, the schema
// of the property name in schema.
func (r *Rule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref == nil || ref.Value == nil {
		return nil
	}
	if r.desc != "" {
		if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
			ref.Value.Description += " "
		}
		ref.Value.Description += r.desc
	}
	if r.example != nil {
		ref.Value.Example = r.example
	}
	if r.deprecated {
		ref.Value.Deprecated = true
	}
	return nil
}
