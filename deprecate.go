package pathmap

// Deprecate returns a documentation-only option that marks the rule's
// output as deprecated in the schema.
func Deprecate() Option {
	return func(s *ruleSpec) {
		s.deprecated = true
	}
}
