// Package pathmap maps arbitrary nested source data into a new nested
// document through declared rules.
//
// A rule reads a dot path ("user.address.city") from the source data and
// writes the value, optionally transformed, at a target path in the output:
//
//	b := pathmap.New().
//	    From("user.name", pathmap.To("name"), pathmap.Transform(pathmap.Title)).
//	    From([]string{"user.email", "user.emails.0"}, pathmap.To("email")).
//	    FromEach("user.roles", pathmap.To("roles"), pathmap.Transform(pathmap.Lower))
//
//	out, err := b.BuildFor(payload)
//
// Rules run in declaration order. Transform, fallback and skip funcs may
// declare any prefix of their candidate arguments (see package callback) and
// receive the rule's [Binding], which exposes the source data, the rule's
// working slice and what earlier rules already wrote.
//
// [Builder.Within] scopes rules to a nested slice of the source data, and
// [WithBuilder] maps values with a child builder. Builders can also be loaded
// from YAML with [Load], decode their output into structs with
// [Builder.BuildInto] and describe it as an OpenAPI schema with
// [Builder.Schema].
//
// Sub-packages:
//   - callback – calling user funcs with a prefix of candidate arguments
//   - datapath – dot path access to normalized nested data
//   - openapi – documenting endpoints whose payloads a builder produces
//   - transform – deep string transformations used by the presets
package pathmap
