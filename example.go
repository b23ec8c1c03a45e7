package pathmap

// Example returns a documentation-only option that sets the schema example
// of the rule's output.
func Example(ex any) Option {
	return func(s *ruleSpec) {
		s.example = ex
	}
}
