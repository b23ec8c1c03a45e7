package pathmap

// Describe returns a documentation-only option that sets the description of
// the rule's output in [Builder.Schema].
func Describe(desc string) Option {
	return func(s *ruleSpec) {
		s.desc = desc
	}
}
