package pathmap

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Builder declares mapping rules and runs them against source data.
//
//	out, err := pathmap.New().
//	    From("user.name", pathmap.To("name")).
//	    FromEach("user.tags", pathmap.Transform(pathmap.Lower)).
//	    BuildFor(payload)
//
// Rules are applied in declaration order and later rules can read what
// earlier ones wrote through [Binding.MappedData]. Declaring rules is not
// safe for concurrent use; once declared, a builder may run BuildFor from
// several goroutines.
type Builder struct {
	rules  RuleSet
	parent *Binding
	logger *slog.Logger
	errs   []error

	mu     sync.Mutex
	source any
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{logger: nopLogger()}
}

// newChild returns a builder for the sub-builder transform of parent.
func newChild(parent *Binding) *Builder {
	child := New()
	child.parent = parent
	if pb := parent.rule.builder; pb != nil {
		child.logger = pb.logger
	}
	return child
}

// WithLogger sets the logger used to trace builds.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = nopLogger()
	}
	b.logger = logger
	return b
}

// Within scopes every rule declared by configure to the data at path.
// Scopes nest; the scope is captured by each rule when it is declared.
func (b *Builder) Within(path string, configure func(*Builder)) *Builder {
	b.rules.within(path, func() {
		configure(b)
	})
	return b
}

// WithDataWrapper sets the wrapper applied to the source data for
// [WrappedSourceData] rules.
func (b *Builder) WithDataWrapper(wrap WrapperFunc) *Builder {
	b.rules.wrap = wrap
	return b
}

// DataWrapper returns the wrapper in use.
func (b *Builder) DataWrapper() WrapperFunc {
	return b.rules.Wrapper()
}

// From declares a scalar rule. path is a dot path, one of the sentinels
// [WholeSlice], [CurrentSlice] or [WrappedSourceData], or a []string of
// candidate paths of which the first non-nil one wins.
//
// An invalid declaration is not added; the error is reported by [Builder.Err]
// and returned by the next build.
func (b *Builder) From(path any, opts ...Option) *Builder {
	return b.declare(ScalarRule, path, opts)
}

// FromEach declares an iterable rule: the resolved value is treated as a
// list and every element is mapped independently.
func (b *Builder) FromEach(path any, opts ...Option) *Builder {
	return b.declare(IterableRule, path, opts)
}

func (b *Builder) declare(kind RuleKind, path any, opts []Option) *Builder {
	r, err := newRule(b, b.rules.Scope(), kind, path, opts)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("pathmap: declare %v: %w", path, err))
		return b
	}
	b.rules.add(r)
	return b
}

// WithSourceData binds data for [Builder.Build].
func (b *Builder) WithSourceData(data any) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.source = data
	return b
}

// SourceData returns the data bound by the last WithSourceData or BuildFor.
func (b *Builder) SourceData() any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.source
}

// WithoutFromPaths removes every rule whose from path is one of paths.
func (b *Builder) WithoutFromPaths(paths ...string) *Builder {
	b.rules.RejectFromPaths(paths)
	return b
}

// Build runs the rules against the data bound with WithSourceData.
// It returns [ErrNoSourceData] when nothing is bound.
func (b *Builder) Build() (map[string]any, error) {
	source := b.SourceData()
	if source == nil {
		return nil, ErrNoSourceData
	}
	return b.build(source, nil)
}

// BuildFor binds data and runs the rules against it. hooks are applied, in
// order, to every transformed value right before it is written.
func (b *Builder) BuildFor(data any, hooks ...ValueHook) (map[string]any, error) {
	b.WithSourceData(data)
	return b.build(data, hooks)
}

func (b *Builder) build(data any, hooks []ValueHook) (map[string]any, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b.run(b.rules.Bind(data, b.parent), hooks)
}

// HasRules reports whether any rule is declared.
func (b *Builder) HasRules() bool {
	return b.rules.Len() > 0
}

// Keys returns the target path of every rule in declaration order.
func (b *Builder) Keys() []string {
	keys := make([]string, 0, b.rules.Len())
	for _, r := range b.rules.rules {
		keys = append(keys, r.to)
	}
	return keys
}

// Rules returns the declared rules in order.
func (b *Builder) Rules() []*Rule {
	return b.rules.Rules()
}

// Parent returns the binding of the enclosing rule for builders created by
// a sub-builder transform, or nil.
func (b *Builder) Parent() *Binding {
	return b.parent
}

// Err returns the declaration errors collected so far, or nil.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}
