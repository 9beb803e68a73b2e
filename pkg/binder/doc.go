// Package binder decodes HTTP request data into structs.
//
// Form reads url-encoded and multipart bodies through `form` tags; Path
// reads router parameters through `path` tags. Both return a
// func(*http.Request, any) error so they can be chained by handler.Bind.
// Supported field kinds are strings, signed and unsigned integers, bools,
// pointers to those and slices of those.
package binder
