package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/folio/pkg/logger"
)

// ErrPanic wraps the value a handler panicked with.
var ErrPanic = errors.New("recovery: handler panicked")

// Middleware recovers panics raised by next. http.ErrAbortHandler is
// re-raised so the server can abort the connection.
func Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				written := ww.Status() != 0 || ww.BytesWritten() > 0
				log.ErrorContext(r.Context(), "handler panicked",
					logger.Error(fmt.Errorf("%w: %v", ErrPanic, v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", written),
					slog.String("stack", string(debug.Stack())),
				)
				if !written {
					http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
