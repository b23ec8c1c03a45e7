package datapath_test

import (
	"encoding/json"
	"net/netip"
	"testing"
	"time"

	"github.com/Gobd/pathmap/datapath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := map[string]any{
		"root": map[string]any{
			"deep": map[string]any{"email": "e"},
			"list": []any{"a", map[string]any{"name": "n"}},
		},
		"nil": nil,
	}

	tests := []struct {
		name string
		path string
		want any
	}{
		{name: "top level", path: "nil", want: nil},
		{name: "nested", path: "root.deep.email", want: "e"},
		{name: "slice index", path: "root.list.0", want: "a"},
		{name: "through slice", path: "root.list.1.name", want: "n"},
		{name: "missing leaf", path: "root.deep.phone", want: nil},
		{name: "missing intermediate", path: "root.nope.email", want: nil},
		{name: "index out of range", path: "root.list.5", want: nil},
		{name: "scalar intermediate", path: "root.deep.email.x", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datapath.Get(data, tt.path))
		})
	}
}

func TestLookup(t *testing.T) {
	data := map[string]any{"a": nil, "b": map[string]any{}}

	v, ok := datapath.Lookup(data, "a")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = datapath.Lookup(data, "c")
	assert.False(t, ok)

	v, ok = datapath.Lookup(data, "")
	assert.True(t, ok)
	assert.Equal(t, data, v)
}

func TestPick(t *testing.T) {
	data := map[string]any{"a": nil, "b": "B", "c": "C"}

	assert.Equal(t, "B", datapath.Pick(data, []string{"x", "a", "b", "c"}))
	assert.Nil(t, datapath.Pick(data, []string{"x", "a"}))
	assert.Nil(t, datapath.Pick(data, nil))
}

func TestSet(t *testing.T) {
	out := map[string]any{"a": "scalar"}

	datapath.Set(out, "x.y.z", 1)
	datapath.Set(out, "x.y.w", 2)
	datapath.Set(out, "a.b", 3)
	datapath.Set(out, "", 4)

	assert.Equal(t, map[string]any{
		"x": map[string]any{"y": map[string]any{"z": 1, "w": 2}},
		"a": map[string]any{"b": 3},
	}, out)
}

func TestMerge(t *testing.T) {
	defaults := map[string]any{
		"status": "active",
		"name":   "default",
		"meta":   map[string]any{"source": "api", "v": 1},
	}
	value := map[string]any{
		"name": "n",
		"meta": map[string]any{"v": 2},
	}

	got := datapath.Merge(defaults, value)

	assert.Equal(t, map[string]any{
		"status": "active",
		"name":   "n",
		"meta":   map[string]any{"source": "api", "v": 2},
	}, got)
	assert.Equal(t, 1, defaults["meta"].(map[string]any)["v"], "defaults must not change")
}

func TestClone(t *testing.T) {
	in := map[string]any{"list": []any{map[string]any{"a": 1}}}
	out := datapath.Clone(in).(map[string]any)

	out["list"].([]any)[0].(map[string]any)["a"] = 2
	assert.Equal(t, 1, in["list"].([]any)[0].(map[string]any)["a"])
}

func TestClone_KeepsOpaqueValues(t *testing.T) {
	addr := netip.MustParseAddr("10.0.0.1")
	at := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	in := datapath.Normalize(map[string]any{"hosts": []netip.Addr{addr}, "at": &at})

	out := datapath.Clone(in).(map[string]any)
	assert.Equal(t, []any{addr}, out["hosts"])
	assert.Same(t, &at, out["at"])
}

type base struct {
	ID string `json:"id"`
}

type Embedded struct {
	Kind string `json:"kind"`
}

type profile struct {
	Embedded
	base
	Email    string            `json:"email"`
	Age      int               `json:"age,omitempty"`
	Secret   string            `json:"-"`
	Tags     []string          `json:"tags"`
	Labels   map[string]string `json:"labels"`
	Created  time.Time         `json:"created"`
	Nickname *string           `json:"nickname"`
	Plain    bool
	hidden   string
}

func TestNormalize(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := map[any]any{
		"profile": &profile{
			Embedded: Embedded{Kind: "user"},
			base:     base{ID: "x"},
			Email:    "e",
			Secret:   "s",
			Tags:     []string{"a"},
			Labels:   map[string]string{"k": "v"},
			Created:  created,
			Plain:    true,
			hidden:   "h",
		},
		1:      []int{1, 2},
		"num":  json.Number("12"),
		"raw":  []byte("bytes"),
		"none": (*profile)(nil),
	}

	got := datapath.Normalize(in)

	assert.Equal(t, map[string]any{
		"profile": map[string]any{
			"kind":     "user",
			"email":    "e",
			"tags":     []any{"a"},
			"labels":   map[string]any{"k": "v"},
			"created":  created,
			"nickname": nil,
			"Plain":    true,
		},
		"1":    []any{1, 2},
		"num":  json.Number("12"),
		"raw":  []byte("bytes"),
		"none": nil,
	}, got)
}

func TestNormalize_Copies(t *testing.T) {
	in := map[string]any{"a": map[string]any{"b": 1}}
	out := datapath.Normalize(in).(map[string]any)
	out["a"].(map[string]any)["b"] = 2

	require.Equal(t, 1, in["a"].(map[string]any)["b"])
}

func TestSplitJoin(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, datapath.Split("a..b."))
	assert.Empty(t, datapath.Split(""))
	assert.Equal(t, "a.b", datapath.Join("a", "b"))
}
