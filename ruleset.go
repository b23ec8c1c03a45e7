package pathmap

import (
	"slices"
	"strings"

	"github.com/Gobd/pathmap/datapath"
)

// RuleSet is the ordered list of rules of a [Builder] together with the
// Within scope stack and the data wrapper they share.
type RuleSet struct {
	rules  []*Rule
	scopes []string
	wrap   WrapperFunc
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// Rules returns the rules in declaration order.
func (s *RuleSet) Rules() []*Rule {
	return slices.Clone(s.rules)
}

// Scope returns the active Within paths, ignoring blank and whole-slice
// entries.
func (s *RuleSet) Scope() []string {
	var scope []string
	for _, p := range s.scopes {
		p = strings.TrimSpace(p)
		if p == "" || p == WholeSlice || p == CurrentSlice {
			continue
		}
		scope = append(scope, p)
	}
	return scope
}

// Wrapper returns the data wrapper, [NewDefaultDataWrapper] unless set.
func (s *RuleSet) Wrapper() WrapperFunc {
	if s.wrap == nil {
		return NewDefaultDataWrapper
	}
	return s.wrap
}

// RejectFromPaths removes every rule whose from path equals one of paths.
func (s *RuleSet) RejectFromPaths(paths []string) {
	s.rules = slices.DeleteFunc(s.rules, func(r *Rule) bool {
		return r.matchesFrom(paths)
	})
}

// within pushes path for the duration of fn. The pop is deferred so a panic
// in fn leaves the stack as it was.
func (s *RuleSet) within(path string, fn func()) {
	s.scopes = append(s.scopes, path)
	defer func() {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}()
	fn()
}

func (s *RuleSet) add(r *Rule) {
	s.rules = append(s.rules, r)
}

// Bind normalizes raw once and returns one fresh [Binding] per rule, each
// with its working slice resolved from the rule's scope.
func (s *RuleSet) Bind(raw any, parent *Binding) []*Binding {
	source := datapath.Normalize(raw)
	wrap := s.Wrapper()

	scoped := map[string]any{}
	bindings := make([]*Binding, len(s.rules))
	for i, r := range s.rules {
		b := &Binding{
			rule:    r,
			parent:  parent,
			raw:     raw,
			source:  source,
			data:    source,
			matched: true,
			wrap:    wrap,
		}
		if r.Nested() {
			path := datapath.Join(r.scope...)
			data, ok := scoped[path]
			if !ok {
				data = datapath.Get(source, path)
				scoped[path] = data
			}
			b.data = data
			b.matched = data != nil
		}
		bindings[i] = b
	}
	return bindings
}
