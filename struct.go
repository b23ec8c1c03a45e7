package pathmap

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// BuildInto runs the rules against data and decodes the output into out,
// which must be a pointer. Output keys are matched against the json tags of
// out's fields; values are weakly typed, so "42" fills an int field and
// RFC 3339 strings fill time.Time fields. Once decoded, out and the values
// nested in it are finalized (see [Finalizer]).
func (b *Builder) BuildInto(data, out any, hooks ...ValueHook) error {
	return b.BuildIntoCtx(context.Background(), data, out, hooks...)
}

// BuildIntoCtx is like BuildInto but passes ctx to [ContextFinalizer].
func (b *Builder) BuildIntoCtx(ctx context.Context, data, out any, hooks ...ValueHook) error {
	mapped, err := b.BuildFor(data, hooks...)
	if err != nil {
		return err
	}
	if err := decodeInto(mapped, out); err != nil {
		return err
	}
	finalizeRecursive(ctx, out)
	return nil
}

func decodeInto(mapped map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("pathmap: decode output: %w", err)
	}
	if err := dec.Decode(mapped); err != nil {
		return fmt.Errorf("pathmap: decode output: %w", err)
	}
	return nil
}
