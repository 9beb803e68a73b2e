package portfolio

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/folio/pkg/clientip"
	"github.com/dmitrymomot/folio/pkg/environment"
	"github.com/dmitrymomot/folio/pkg/httpserver"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/recovery"
	"github.com/dmitrymomot/folio/pkg/requestid"
)

// NewRouter mounts the page routes behind the request scoped middleware.
// Checks back the /healthz readiness endpoint. Handler panics are logged
// and answered with 500.
func NewRouter(h *Handlers, tr *i18n.Translator, env environment.Environment, log *slog.Logger, checks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		recovery.Middleware(log),
		clientip.Middleware,
		environment.Middleware(env),
		i18n.Middleware(i18n.AcceptLanguage(tr.SupportedLanguages(), tr.DefaultLanguage())),
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log, checks...))
	h.Routes(r)
	return r
}
