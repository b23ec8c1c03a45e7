package pathmap_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pm "github.com/Gobd/pathmap"
)

type intoLine struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

func (l *intoLine) Finalize() {
	l.SKU = strings.ToUpper(l.SKU)
}

type intoOrder struct {
	ID       int                 `json:"id"`
	Customer string              `json:"customer"`
	PlacedAt time.Time           `json:"placed_at"`
	Shipped  time.Time           `json:"shipped"`
	Timeout  time.Duration       `json:"timeout"`
	Lines    []intoLine          `json:"lines"`
	ByCode   map[string]intoLine `json:"by_code"`
	Note     *intoNote           `json:"note"`

	finalized bool
	ctxValue  any
}

type intoNote struct {
	Text string `json:"text"`
}

func (n *intoNote) Finalize(ctx context.Context) {
	n.Text = strings.TrimSpace(n.Text) + "!"
}

type ctxKey struct{}

func (o *intoOrder) Finalize(ctx context.Context) {
	o.finalized = true
	o.ctxValue = ctx.Value(ctxKey{})
}

func orderBuilder() *pm.Builder {
	return pm.New().
		From("order.id", pm.To("id")).
		From("order.customer.name", pm.To("customer")).
		From("order.placed_at", pm.To("placed_at"), pm.Transform(pm.Date)).
		From("order.shipped_at", pm.To("shipped")).
		From("order.timeout", pm.To("timeout")).
		FromEach("order.items", pm.To("lines")).
		From("order.by_code", pm.To("by_code")).
		From("order.note", pm.To("note"))
}

func TestBuildInto(t *testing.T) {
	src := map[string]any{"order": map[string]any{
		"id":         "42",
		"customer":   map[string]any{"name": "Ada"},
		"placed_at":  "2024-03-05T10:30:00Z",
		"shipped_at": "2024-03-07T08:00:00Z",
		"timeout":    "1m30s",
		"items":      []any{map[string]any{"sku": "ab", "quantity": "2"}},
		"by_code":    map[string]any{"x": map[string]any{"sku": "xy", "quantity": 1}},
		"note":       map[string]any{"text": " fragile "},
	}}

	var order intoOrder
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	require.NoError(t, orderBuilder().BuildIntoCtx(ctx, src, &order))

	assert.Equal(t, 42, order.ID)
	assert.Equal(t, "Ada", order.Customer)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), order.PlacedAt)
	assert.Equal(t, time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC), order.Shipped.UTC())
	assert.Equal(t, 90*time.Second, order.Timeout)
	assert.Equal(t, []intoLine{{SKU: "AB", Quantity: 2}}, order.Lines)
	assert.Equal(t, intoLine{SKU: "XY", Quantity: 1}, order.ByCode["x"])
	require.NotNil(t, order.Note)
	assert.Equal(t, "fragile!", order.Note.Text)
	assert.True(t, order.finalized)
	assert.Equal(t, "v", order.ctxValue)
}

func TestBuildInto_BuildError(t *testing.T) {
	var order intoOrder
	err := pm.New().From("").BuildInto(map[string]any{}, &order)
	require.Error(t, err)
	assert.False(t, order.finalized)
}

func TestBuildInto_DecodeError(t *testing.T) {
	var order intoOrder
	err := pm.New().
		From("id").
		BuildInto(map[string]any{"id": map[string]any{"nested": true}}, &order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode output")
}
