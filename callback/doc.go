// Package callback invokes user supplied funcs with exactly the arguments
// they declare.
//
// A caller offers an ordered list of positional candidates and a set of
// named candidates. [Call] inspects the func with reflection and passes only
// what it asks for, so the same call site serves all of these:
//
//	func() string
//	func(v any) any
//	func(v string, rule *pathmap.Binding) (string, error)
//	func(args struct {
//	    callback.Named
//	    Rule *pathmap.Binding
//	}) any
//
// Named parameters are declared with a struct parameter that embeds
// [Named]. Its exported fields are the parameter names: the `arg` tag when
// present, otherwise the field name with a lower-case first letter.
package callback
