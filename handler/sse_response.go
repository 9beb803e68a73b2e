package handler

import "net/http"

// SSEHandler runs for the lifetime of a Datastar event stream. The stream
// closes when the handler returns; stream.Done is closed when the client
// disconnects or the server shuts down.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		for patch := range patches {
//			if err := stream.SendComponent(patch); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render rejects non-Datastar requests with 400 and runs the handler
// otherwise.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	}

	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: base.SSE()})
}

// SSE creates a streaming response.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
