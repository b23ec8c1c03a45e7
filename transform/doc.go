// Package transform applies string functions across normalized nested data
// (maps, slices and scalars as produced by [datapath.Normalize]). These are
// the building blocks of the string presets used by pathmap rules.
package transform
