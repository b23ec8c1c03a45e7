package pathmap

import (
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/Gobd/pathmap/datapath"
)

// Binding is a [Rule] bound to the source data of one build. Transform,
// fallback and skip funcs receive it as their rule context. A fresh Binding
// is created for every rule on every build, so bindings are never shared
// between builds.
type Binding struct {
	rule    *Rule
	parent  *Binding
	raw     any
	source  any
	data    any
	matched bool
	prior   map[string]any
	wrap    WrapperFunc

	wrapOnce sync.Once
	wrapped  any
}

// Rule returns the bound rule.
func (b *Binding) Rule() *Rule {
	return b.rule
}

// From returns the rule's from path.
func (b *Binding) From() string {
	return b.rule.From()
}

// To returns the rule's target path.
func (b *Binding) To() string {
	return b.rule.To()
}

// SourceData returns the normalized source data of the build.
func (b *Binding) SourceData() any {
	return b.source
}

// RawSourceData returns the source data exactly as passed to the build.
func (b *Binding) RawSourceData() any {
	return b.raw
}

// Data returns the working slice the rule resolves its path against: the
// data at the rule's scope, or the whole source data for unscoped rules.
func (b *Binding) Data() any {
	return b.data
}

// Nested reports whether the rule has a Within scope.
func (b *Binding) Nested() bool {
	return b.rule.Nested()
}

// UnmatchedNested reports whether the rule's scope is missing from the
// source data.
func (b *Binding) UnmatchedNested() bool {
	return b.rule.Nested() && !b.matched
}

// MappedData returns a snapshot of the output written by the rules declared
// before this one.
func (b *Binding) MappedData() map[string]any {
	return b.prior
}

// Parent returns the binding of the rule whose child builder declared this
// rule, or nil at the top level.
func (b *Binding) Parent() *Binding {
	return b.parent
}

// WrappedSourceData returns the raw source data passed through the
// builder's data wrapper. The wrapper runs at most once per binding.
func (b *Binding) WrappedSourceData() any {
	if b.raw == nil {
		return nil
	}
	b.wrapOnce.Do(func() {
		b.wrapped = b.wrap(b.raw)
	})
	return b.wrapped
}

// Dump returns a human readable dump of the bound state for debugging.
func (b *Binding) Dump() string {
	return spew.Sdump(map[string]any{
		"from":        b.rule.from,
		"to":          b.rule.to,
		"kind":        b.rule.kind.String(),
		"transform":   b.rule.transform.String(),
		"scope":       b.rule.scope,
		"defaults":    b.rule.defaults,
		"data":        b.data,
		"source_data": b.source,
		"mapped_data": b.prior,
		"matched":     !b.UnmatchedNested(),
	})
}

func (b *Binding) withPrior(out map[string]any) {
	b.prior = datapath.Clone(out).(map[string]any)
}
