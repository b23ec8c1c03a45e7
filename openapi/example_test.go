package openapi_test

import (
	"fmt"

	"github.com/Gobd/pathmap"
	"github.com/Gobd/pathmap/openapi"
)

type createItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func itemMapping() *pathmap.Builder {
	return pathmap.New().
		From("item.name", pathmap.To("name"), pathmap.Transform(pathmap.Title)).
		From("item.price_cents", pathmap.To("price.cents"), pathmap.Transform(pathmap.Int)).
		FromEach("item.tags", pathmap.To("tags"), pathmap.Transform(pathmap.Lower))
}

func ExamplePost() {
	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")

	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  createItem{},
		Response: itemMapping(),
	})

	fmt.Println(doc.Paths.Value("/items").Post.OperationID)
	// Output: createItem
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}

func ExampleNewSchemaRef() {
	ref, err := openapi.NewSchemaRef(itemMapping())
	if err != nil {
		panic(err)
	}

	price := ref.Value.Properties["price"].Value
	fmt.Println(price.Properties["cents"].Value.Type.Is("integer"))
	fmt.Println(ref.Value.Properties["tags"].Value.Type.Is("array"))
	// Output:
	// true
	// true
}
