package pathmap

import (
	"github.com/Gobd/pathmap/callback"
	"github.com/Gobd/pathmap/datapath"
)

// run applies bindings in order, writing each result into a fresh output
// map. The first failing callback aborts the build.
func (b *Builder) run(bindings []*Binding, hooks []ValueHook) (map[string]any, error) {
	out := map[string]any{}
	for _, bd := range bindings {
		bd.withPrior(out)
		r := bd.rule

		if bd.UnmatchedNested() {
			b.logger.Debug("pathmap: scope not found", "from", r.From(), "to", r.to, "scope", datapath.Join(r.scope...))
			v, err := fallbackValue(bd)
			if err != nil {
				return nil, err
			}
			datapath.Set(out, r.to, v)
			continue
		}

		v, err := b.apply(bd)
		if err != nil {
			return nil, err
		}
		for _, hook := range hooks {
			if v, err = hook(v, bd); err != nil {
				return nil, ruleError("hook", r, err)
			}
		}

		b.logger.Debug("pathmap: rule applied", "from", r.From(), "to", r.to, "kind", r.kind.String())
		datapath.Set(out, r.to, v)
	}
	return out, nil
}

func (b *Builder) apply(bd *Binding) (any, error) {
	r := bd.rule
	raw := resolve(bd)

	switch r.kind {
	case IterableRule:
		return b.applyEach(raw, bd)
	default:
		if !wrapped(r) {
			raw = applyDefaults(raw, r)
		}
		v, err := b.transform(raw, bd)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return fallbackValue(bd)
		}
		return v, nil
	}
}

// applyEach maps every element of raw. Skipped elements never reach the
// transform and there is no per-element fallback.
func (b *Builder) applyEach(raw any, bd *Binding) ([]any, error) {
	r := bd.rule
	list := asList(raw)

	out := make([]any, 0, len(list))
	for _, item := range list {
		if r.skipIf != nil {
			skip, err := callback.Call(r.skipIf, []any{item, bd}, map[string]any{"value": item, "rule": bd})
			if err != nil {
				return nil, ruleError("skip_if", r, err)
			}
			if truthy(skip) {
				continue
			}
		}
		if !wrapped(r) {
			item = applyDefaults(item, r)
		}
		v, err := b.transform(item, bd)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// resolve returns the value of the rule's from path against its working
// slice. Source values are copied so that writes into the output never
// reach the source snapshot.
func resolve(bd *Binding) any {
	r := bd.rule
	if r.multi {
		return datapath.Clone(datapath.Pick(bd.data, r.from))
	}
	switch from := r.from[0]; from {
	case WholeSlice, CurrentSlice:
		return datapath.Clone(bd.data)
	case WrappedSourceData:
		return bd.WrappedSourceData()
	default:
		return datapath.Clone(datapath.Get(bd.data, from))
	}
}

// wrapped reports whether r reads the data wrapper's result, which is
// passed to the transform as is.
func wrapped(r *Rule) bool {
	return !r.multi && r.from[0] == WrappedSourceData
}

func asList(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return t
	default:
		return []any{v}
	}
}

func applyDefaults(v any, r *Rule) any {
	m, ok := v.(map[string]any)
	if !ok || !r.HasDefaults() {
		return v
	}
	return datapath.Merge(r.defaults, m)
}

func (b *Builder) transform(v any, bd *Binding) (any, error) {
	r := bd.rule
	switch r.transform {
	case PresetTransform:
		return presets[r.preset](v), nil
	case FuncTransform:
		out, err := callback.Call(r.fn, []any{v, bd}, map[string]any{"value": v, "rule": bd})
		if err != nil {
			return nil, ruleError("transform", r, err)
		}
		return out, nil
	case BuilderTransform:
		return b.transformWithBuilder(v, bd)
	default:
		return v, nil
	}
}

// transformWithBuilder maps v with a fresh child builder configured by the
// rule's func. A child without rules leaves v unchanged.
func (b *Builder) transformWithBuilder(v any, bd *Binding) (any, error) {
	r := bd.rule
	child := newChild(bd)
	if _, err := callback.Call(r.fn, []any{child, bd}, map[string]any{"builder": child, "rule": bd}); err != nil {
		return nil, ruleError("builder", r, err)
	}
	if err := child.Err(); err != nil {
		return nil, ruleError("builder", r, err)
	}
	if !child.HasRules() {
		return v, nil
	}

	out, err := child.BuildFor(v)
	if err != nil {
		return nil, ruleError("builder", r, err)
	}
	return out, nil
}

func fallbackValue(bd *Binding) (any, error) {
	r := bd.rule
	if r.fallback == nil {
		return nil, nil
	}
	v, err := callback.Call(r.fallback, []any{bd}, map[string]any{"rule": bd})
	if err != nil {
		return nil, ruleError("fallback", r, err)
	}
	return v, nil
}
