// Package recovery turns handler panics into logged 500 responses.
//
// Middleware is the process wide fault observer for HTTP handlers: a panic
// is logged with its value and stack through the request logger, so records
// carry the request id, and the client gets a 500 unless the handler had
// already started its response.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware, recovery.Middleware(log))
package recovery
