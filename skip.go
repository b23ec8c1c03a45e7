package pathmap

// SkipIf drops list elements for which fn returns true before they are
// transformed. Only iterable rules accept it. fn may take the element and
// the rule's *Binding; a non-bool result counts as true when non-nil.
func SkipIf(fn any) Option {
	return func(s *ruleSpec) {
		s.SkipIf = fn
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}
