package pathmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// BuildJSON decodes a JSON document and runs the rules against it. Numbers
// are kept as [json.Number] so large integers survive; the int and float
// presets accept them.
func (b *Builder) BuildJSON(data []byte, hooks ...ValueHook) (map[string]any, error) {
	return b.DecodeAndBuild(bytes.NewReader(data), hooks...)
}

// DecodeAndBuild reads one JSON document from r using a streaming decoder,
// then runs the rules against it. Use this instead of [Builder.BuildJSON]
// when reading directly from an [io.Reader] such as an HTTP request body.
func (b *Builder) DecodeAndBuild(r io.Reader, hooks ...ValueHook) (map[string]any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var data any
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("pathmap: decode source: %w", err)
	}
	return b.BuildFor(data, hooks...)
}
