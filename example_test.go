package pathmap_test

import (
	"encoding/json"
	"fmt"
	"strings"

	pm "github.com/Gobd/pathmap"
)

func printJSON(v any) {
	out, _ := json.Marshal(v)
	fmt.Println(string(out))
}

func ExampleBuilder_BuildFor() {
	out, err := pm.New().
		From("user.name", pm.To("name"), pm.Transform(pm.Title)).
		From([]string{"user.email", "user.emails.0"}, pm.To("email")).
		FromEach("user.roles", pm.To("roles"), pm.Transform(pm.Upper)).
		BuildFor(map[string]any{"user": map[string]any{
			"name":   "ada lovelace",
			"emails": []any{"ada@example.com"},
			"roles":  []any{"admin", "dev"},
		}})
	if err != nil {
		fmt.Println(err)
		return
	}
	printJSON(out)
	// Output: {"email":"ada@example.com","name":"Ada Lovelace","roles":["ADMIN","DEV"]}
}

func ExampleBuilder_Within() {
	out, _ := pm.New().
		Within("root.deep.profile", func(b *pm.Builder) {
			b.From("email")
			b.From("uid", pm.To("user_id"))
		}).
		BuildFor(map[string]any{"root": map[string]any{"deep": map[string]any{
			"profile": map[string]any{"email": "e", "uid": 1},
		}}})
	printJSON(out)
	// Output: {"email":"e","user_id":1}
}

func ExampleWithBuilder() {
	out, _ := pm.New().
		FromEach("data", pm.WithBuilder(func(c *pm.Builder) {
			c.From("name")
			c.From("region_code", pm.To("state"))
		})).
		BuildFor(map[string]any{"data": []any{
			map[string]any{"name": "n", "region_code": "AB"},
		}})
	printJSON(out)
	// Output: {"data":[{"name":"n","state":"AB"}]}
}

func ExampleSkipIf() {
	out, _ := pm.New().
		FromEach("list", pm.SkipIf(func(v string) bool { return v == "a" })).
		BuildFor(map[string]any{"list": []any{"a", "b"}})
	printJSON(out)
	// Output: {"list":["b"]}
}

func ExampleFallback() {
	out, _ := pm.New().
		From("name").
		From("nick", pm.Fallback(func(b *pm.Binding) string {
			name, _ := b.MappedData()["name"].(string)
			return strings.ToLower(name)
		})).
		BuildFor(map[string]any{"name": "Ada"})
	printJSON(out)
	// Output: {"name":"Ada","nick":"ada"}
}

func ExampleBinding_MappedData() {
	out, _ := pm.New().
		From("name", pm.Transform(pm.Upper)).
		From("greeting", pm.Transform(func(v string, b *pm.Binding) string {
			return fmt.Sprintf("%s, %s", v, b.MappedData()["name"])
		})).
		BuildFor(map[string]any{"name": "ada", "greeting": "hello"})
	printJSON(out)
	// Output: {"greeting":"hello, ADA","name":"ADA"}
}

func ExampleLoad() {
	b, err := pm.Load([]byte(`
rules:
  - from: user.login
    to: handle
    transform: lower
  - from: user.tags
    to: tags
    each: true
    skip: [""]
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _ := b.BuildFor(map[string]any{"user": map[string]any{
		"login": "OCTO",
		"tags":  []any{"go", "", "yaml"},
	}})
	printJSON(out)
	// Output: {"handle":"octo","tags":["go","yaml"]}
}
