package pathmap

import (
	"io"
	"log/slog"
)

// Sentinel values for a rule's from path.
const (
	// WholeSlice and CurrentSlice resolve to the rule's whole working slice.
	WholeSlice   = "*"
	CurrentSlice = "."
	// WrappedSourceData resolves to the top-level source data passed
	// through the builder's data wrapper.
	WrappedSourceData = "wrapped_source_data"
)

type (
	// Option configures a rule declared with [Builder.From] or
	// [Builder.FromEach].
	Option func(*ruleSpec)

	// WrapperFunc wraps raw source data for [WrappedSourceData] rules.
	WrapperFunc func(source any) any

	// ValueHook is applied to every transformed value right before it is
	// written to the output.
	ValueHook func(value any, b *Binding) (any, error)

	// RuleKind distinguishes scalar rules from iterable ones.
	RuleKind int

	// TransformKind tells the engine how a rule transforms its values.
	TransformKind int
)

const (
	// ScalarRule maps one value.
	ScalarRule RuleKind = iota
	// IterableRule maps every element of a list independently.
	IterableRule
)

const (
	// NoTransform writes resolved values as is.
	NoTransform TransformKind = iota
	// FuncTransform calls a user func with the value.
	FuncTransform
	// PresetTransform applies a named preset.
	PresetTransform
	// BuilderTransform configures a child builder that maps the value.
	BuilderTransform
)

func (k RuleKind) String() string {
	switch k {
	case ScalarRule:
		return "scalar"
	case IterableRule:
		return "iterable"
	default:
		return "unknown"
	}
}

func (k TransformKind) String() string {
	switch k {
	case NoTransform:
		return "none"
	case FuncTransform:
		return "func"
	case PresetTransform:
		return "preset"
	case BuilderTransform:
		return "builder"
	default:
		return "unknown"
	}
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
