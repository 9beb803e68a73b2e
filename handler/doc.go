// Package handler provides typed HTTP handlers with templ and Datastar
// responses.
//
// A HandlerFunc receives a Context and a request value filled by binders,
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type closeRequest struct {
//		Page       string `path:"page"`
//		Generation uint64 `path:"generation"`
//	}
//
//	r.Post("/pages/{page}/notifications/{generation}/close", handler.Wrap(
//		func(ctx handler.Context, req closeRequest) handler.Response {
//			...
//			return handler.Empty()
//		},
//		handler.WithBinders[handler.Context, closeRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, closeRequest](errorHandler),
//	))
//
// # Responses
//
// Templ and TemplMulti render components as HTML for regular requests and
// as Datastar element patches for Datastar requests. SSE keeps an event
// stream open and hands the handler a StreamContext for pushing patches.
// Empty answers 204.
//
// # Errors
//
// Binding and rendering errors go to the ErrorHandler. NewErrorHandler maps
// HTTPError values to their status, binder failures to 400 or 415 and
// anything else to 500, then renders an error page or, for Datastar
// requests, a toast patch.
package handler
