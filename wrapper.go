package pathmap

import (
	"github.com/Gobd/pathmap/datapath"
)

// DefaultDataWrapper is the data wrapper used unless [Builder.WithDataWrapper]
// sets another one. It holds a normalized copy of the source data and gives
// path access to it.
type DefaultDataWrapper struct {
	data any
}

// NewDefaultDataWrapper wraps source. It satisfies [WrapperFunc].
func NewDefaultDataWrapper(source any) any {
	return &DefaultDataWrapper{data: datapath.Normalize(source)}
}

// Get returns the value at path, or nil.
func (w *DefaultDataWrapper) Get(path string) any {
	return datapath.Get(w.data, path)
}

// Pick returns the value of the first path that resolves.
func (w *DefaultDataWrapper) Pick(paths ...string) any {
	return datapath.Pick(w.data, paths)
}

// Data returns the wrapped, normalized data.
func (w *DefaultDataWrapper) Data() any {
	return w.data
}
