// Command chi serves a mapping loaded from a YAML rule file behind a chi
// router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then POST a JSON document to http://localhost:8080/contacts.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/Gobd/pathmap"
	"github.com/Gobd/pathmap/openapi"
)

const rules = `
rules:
  - from: [contact.email, contact.emails.0]
    to: email
    transform: lower
    fallback: unknown
  - from: contact.full_name
    to: name
    transform: title
  - within: contact.address
    rules:
      - from: city
        to: address.city
        transform: title
      - from: zip
        to: address.zip
        transform: string
  - from: contact.phones
    to: phones
    each: true
    skip: ["", null]
    transform: trim
`

type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	contacts, err := pathmap.Load([]byte(rules))
	if err != nil {
		log.Fatal(err)
	}
	contacts.WithLogger(logger)

	doc := openapi.DocBase("Contacts API (chi)", "Normalizes contact payloads", "0.1.0")
	openapi.Post(doc, "/contacts", "normalizeContact", openapi.Endpoint{
		Summary:  "Normalize a contact",
		Response: contacts,
		Responses: map[string]openapi.Response{
			"200": {Desc: "Normalized contact", Bodies: []any{contacts}},
			"400": {Desc: "Malformed payload", Bodies: []any{ErrorResponse{}}},
		},
	})

	r := chi.NewRouter()

	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})

	r.Post("/contacts", func(w http.ResponseWriter, r *http.Request) {
		out, err := contacts.DecodeAndBuild(r.Body)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("OpenAPI: http://localhost:8080/openapi.json")
	log.Fatal(http.ListenAndServe(":8080", r))
}
