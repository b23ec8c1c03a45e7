// Package openapi documents HTTP endpoints whose payloads are produced by a
// [pathmap.Builder]. A builder used as a body is described by the schema of
// the output it builds; plain Go values are reflected with openapi3gen.
//
// Use [DocBase] to create a base document and register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete]:
//
//	users := pathmap.New().
//	    From("user.name", pathmap.To("name")).
//	    FromEach("user.tags", pathmap.To("tags"), pathmap.Transform(pathmap.Lower))
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Get(doc, "/users/{id}", "getUser", openapi.Endpoint{
//	    Response: users,
//	})
package openapi
