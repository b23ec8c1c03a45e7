package pathmap

// To sets the target path. It defaults to the from path.
func To(path string) Option {
	return func(s *ruleSpec) {
		s.To = path
	}
}

// Transform sets how resolved values are transformed. fn is either a func,
// called with the value and the rule's [Binding] (see package callback for
// the accepted shapes), or the name of a [Preset].
func Transform(fn any) Option {
	return func(s *ruleSpec) {
		s.Transform = fn
	}
}

// UseBuilder makes the transform a child builder configurator instead of a
// value func. See [WithBuilder].
func UseBuilder() Option {
	return func(s *ruleSpec) {
		s.UseBuilder = true
	}
}

// WithBuilder maps every value with a child builder set up by configure.
// configure receives the fresh child *Builder and the rule's *Binding:
//
//	b.FromEach("data", pathmap.WithBuilder(func(c *pathmap.Builder) {
//	    c.From("name")
//	    c.From("region_code", pathmap.To("state"))
//	}))
//
// A child that declares no rules passes values through unchanged.
func WithBuilder(configure any) Option {
	return func(s *ruleSpec) {
		s.Transform = configure
		s.UseBuilder = true
	}
}

// Fallback sets a func producing the value written when a scalar rule
// resolves to nil, or when the rule's Within scope does not exist in the
// source data. It is never applied to individual list elements.
func Fallback(fn any) Option {
	return func(s *ruleSpec) {
		s.Fallback = fn
	}
}
