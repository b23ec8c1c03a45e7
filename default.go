package pathmap

// Defaults deep-merges defaults under every resolved value that is a map.
// Keys present in the resolved value win. Lists and scalars are not
// defaulted; for iterable rules defaults apply to each element.
func Defaults(defaults map[string]any) Option {
	return func(s *ruleSpec) {
		s.Defaults = defaults
	}
}
