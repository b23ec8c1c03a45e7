// Command example maps incoming order payloads into a flat order document
// and documents the endpoint in an OpenAPI spec.
//
// Run:
//
//	go run ./_example
//
// Then POST a JSON document to http://localhost:8080/orders.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Gobd/pathmap"
	"github.com/Gobd/pathmap/openapi"
)

// Order is the mapped document.
type Order struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	PlacedAt  time.Time `json:"placed_at"`
	Lines     []Line    `json:"lines"`
	LineCount int       `json:"line_count"`
}

type Line struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func orderMapping(logger *slog.Logger) *pathmap.Builder {
	return pathmap.New().
		WithLogger(logger).
		From("order.id", pathmap.To("id"), pathmap.Transform(pathmap.String)).
		From([]string{"order.customer.name", "order.customer.email"},
			pathmap.To("customer"),
			pathmap.Fallback(func() string { return "guest" }),
		).
		From("order.placed_at", pathmap.To("placed_at"), pathmap.Transform(pathmap.Date)).
		FromEach("order.items", pathmap.To("lines"),
			pathmap.SkipIf(func(item map[string]any) bool { return item["quantity"] == nil }),
			pathmap.WithBuilder(func(c *pathmap.Builder) {
				c.From("product.sku", pathmap.To("sku"), pathmap.Transform(pathmap.Upper))
				c.From("quantity", pathmap.Transform(pathmap.Int))
			}),
		).
		From(pathmap.WholeSlice, pathmap.To("line_count"), pathmap.Transform(func(_ any, b *pathmap.Binding) int {
			lines, _ := b.MappedData()["lines"].([]any)
			return len(lines)
		}))
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	orders := orderMapping(logger)

	doc := openapi.DocBase("Example API", "Demonstrates pathmap", "0.1.0")
	openapi.Post(doc, "/orders", "mapOrder", openapi.Endpoint{
		Summary: "Map an order",
		Responses: map[string]openapi.Response{
			"200": {Desc: "Mapped order", Bodies: []any{orders}},
			"400": {Desc: "Malformed payload", Bodies: []any{ErrorResponse{}}},
		},
	})

	http.HandleFunc("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		var order Order
		if err := orders.BuildInto(payload, &order); err != nil {
			logger.Error("map order", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(order)
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
