package pathmap

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/pathmap/callback"
	"github.com/Gobd/pathmap/datapath"
)

// Rule is one declared mapping instruction: where to read, where to write
// and how to shape the value in between. Rules are immutable once declared;
// per-build state lives in a [Binding].
type Rule struct {
	from      []string
	multi     bool
	to        string
	kind      RuleKind
	transform TransformKind
	fn        any
	preset    Preset
	defaults  map[string]any
	fallback  any
	skipIf    any
	scope     []string
	builder   *Builder

	desc       string
	example    any
	deprecated bool
}

// ruleSpec collects the options of a declaration before it is validated.
type ruleSpec struct {
	From       any            `json:"from"`
	To         string         `json:"to"`
	Transform  any            `json:"transform"`
	UseBuilder bool           `json:"use_builder"`
	Defaults   map[string]any `json:"defaults"`
	Fallback   any            `json:"fallback"`
	SkipIf     any            `json:"skip_if"`

	kind       RuleKind
	desc       string
	example    any
	deprecated bool
}

func (s *ruleSpec) validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.From, validation.Required.Error("must be filled"), validation.By(validFrom)),
		validation.Field(&s.Transform, validation.By(s.validTransform)),
		validation.Field(&s.Fallback, validation.By(validCallback)),
		validation.Field(&s.SkipIf,
			validation.When(s.kind != IterableRule, validation.Nil.Error("only allowed on iterable rules")),
			validation.By(validCallback),
		),
	)
}

func validFrom(value any) error {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return errors.New("must be filled")
		}
	case []string:
		for _, p := range v {
			if strings.TrimSpace(p) == "" {
				return errors.New("must not contain blank paths")
			}
		}
	default:
		return fmt.Errorf("must be a string or a list of strings, got %T", value)
	}
	return nil
}

func (s *ruleSpec) validTransform(value any) error {
	var name string
	switch v := value.(type) {
	case nil:
		if s.UseBuilder {
			return errors.New("is required when transforming with a builder")
		}
		return nil
	case string:
		name = v
	case Preset:
		name = string(v)
	default:
		return validCallback(value)
	}

	if s.UseBuilder {
		return errors.New("must be a func when transforming with a builder")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("must name a preset")
	}
	names := presetNames()
	in := make([]any, len(names))
	for i, n := range names {
		in[i] = n
	}
	return validation.Validate(name,
		validation.In(in...).Error(fmt.Sprintf("'%s' must be one of [%s]", name, strings.Join(names, ", "))),
	)
}

func validCallback(value any) error {
	if value == nil {
		return nil
	}
	_, err := callback.Inspect(value)
	return err
}

// NewRule declares a standalone rule outside of any builder. path is a dot
// path, a sentinel, or a []string of candidate paths.
func NewRule(kind RuleKind, path any, opts ...Option) (*Rule, error) {
	return newRule(nil, nil, kind, path, opts)
}

func newRule(b *Builder, scope []string, kind RuleKind, path any, opts []Option) (*Rule, error) {
	spec := &ruleSpec{From: path, kind: kind}
	for _, opt := range opts {
		opt(spec)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}

	r := &Rule{
		kind:       kind,
		scope:      scope,
		builder:    b,
		fallback:   spec.Fallback,
		skipIf:     spec.SkipIf,
		desc:       spec.desc,
		example:    spec.example,
		deprecated: spec.deprecated,
	}

	switch v := spec.From.(type) {
	case string:
		r.from = []string{v}
	case []string:
		r.from = append([]string(nil), v...)
		r.multi = true
	}

	r.to = spec.To
	if strings.TrimSpace(r.to) == "" {
		r.to = r.from[0]
	}

	switch v := spec.Transform.(type) {
	case nil:
		r.transform = NoTransform
	case string:
		r.transform, r.preset = PresetTransform, Preset(v)
	case Preset:
		r.transform, r.preset = PresetTransform, v
	default:
		r.fn = v
		r.transform = FuncTransform
		if spec.UseBuilder {
			r.transform = BuilderTransform
		}
	}

	if len(spec.Defaults) > 0 {
		r.defaults, _ = datapath.Normalize(spec.Defaults).(map[string]any)
	}
	return r, nil
}

// From returns the string form of the from path. Candidate lists are
// joined with commas.
func (r *Rule) From() string {
	return strings.Join(r.from, ",")
}

// Paths returns the from path candidates.
func (r *Rule) Paths() []string {
	return append([]string(nil), r.from...)
}

// To returns the target path.
func (r *Rule) To() string {
	return r.to
}

// Kind reports whether the rule is scalar or iterable.
func (r *Rule) Kind() RuleKind {
	return r.kind
}

// Iterable reports whether the rule maps every element of a list.
func (r *Rule) Iterable() bool {
	return r.kind == IterableRule
}

// TransformKind reports how the rule transforms values.
func (r *Rule) TransformKind() TransformKind {
	return r.transform
}

// Transformable reports whether a transform func is configured.
func (r *Rule) Transformable() bool {
	return r.transform == FuncTransform || r.transform == BuilderTransform
}

// UsesBuilder reports whether the transform configures a child builder.
func (r *Rule) UsesBuilder() bool {
	return r.transform == BuilderTransform
}

// Preset returns the preset name, if any.
func (r *Rule) Preset() Preset {
	return r.preset
}

// Scope returns the enclosing Within paths captured at declaration.
func (r *Rule) Scope() []string {
	return append([]string(nil), r.scope...)
}

// Nested reports whether the rule was declared inside a Within block.
func (r *Rule) Nested() bool {
	return len(r.scope) > 0
}

// Defaults returns a copy of the rule's defaults.
func (r *Rule) Defaults() map[string]any {
	if r.defaults == nil {
		return nil
	}
	return datapath.Clone(r.defaults).(map[string]any)
}

// HasDefaults reports whether defaults are configured.
func (r *Rule) HasDefaults() bool {
	return len(r.defaults) > 0
}

// HasFallback reports whether a fallback is configured.
func (r *Rule) HasFallback() bool {
	return r.fallback != nil
}

// Skippable reports whether a skip predicate is configured.
func (r *Rule) Skippable() bool {
	return r.skipIf != nil
}

// Builder returns the builder the rule was declared on, or nil.
func (r *Rule) Builder() *Builder {
	return r.builder
}

func (r *Rule) matchesFrom(paths []string) bool {
	from := r.From()
	for _, p := range paths {
		if p == from {
			return true
		}
	}
	return false
}
