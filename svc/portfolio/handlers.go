package portfolio

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/folio/handler"
	"github.com/dmitrymomot/folio/pkg/binder"
	"github.com/dmitrymomot/folio/pkg/clientip"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/notifications"
	"github.com/dmitrymomot/folio/pkg/ratelimiter"
)

const msgTooManyRequests = "You are sending messages too quickly. Please wait a moment."

type pageRequest struct {
	Page string `path:"page"`
}

type contactRequest struct {
	Page    string `path:"page"`
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

func (r contactRequest) fields() []contact.Field {
	return []contact.Field{
		{Name: contact.FieldName, Value: r.Name, Required: true},
		{Name: contact.FieldEmail, Value: r.Email, Required: true},
		{Name: contact.FieldMessage, Value: r.Message, Required: true},
	}
}

type fieldRequest struct {
	contactRequest
	Field string `path:"field"`
}

func (r fieldRequest) field() (contact.Field, bool) {
	i := slices.IndexFunc(r.fields(), func(f contact.Field) bool { return f.Name == r.Field })
	if i < 0 {
		return contact.Field{}, false
	}
	return r.fields()[i], true
}

type closeRequest struct {
	Page       string `path:"page"`
	Generation uint64 `path:"generation"`
}

// Handlers serves the portfolio page.
type Handlers struct {
	pages   *Pages
	limiter ratelimiter.RateLimiter
	log     *slog.Logger
	onErr   handler.ErrorHandler[handler.Context]
}

// HandlersOption configures Handlers.
type HandlersOption func(*Handlers)

// WithSubmitLimiter limits contact submissions per client address.
func WithSubmitLimiter(l ratelimiter.RateLimiter) HandlersOption {
	return func(h *Handlers) {
		h.limiter = l
	}
}

// NewHandlers creates the page handlers.
func NewHandlers(pages *Pages, tr *i18n.Translator, log *slog.Logger, opts ...HandlersOption) *Handlers {
	if log == nil {
		log = logger.Discard()
	}
	h := &Handlers{
		pages: pages,
		log:   log,
		onErr: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage: func(p handler.ErrorPageParams) templ.Component {
				return errorPage(tr, p)
			},
			ErrorToast: func(p handler.ErrorToastParams) templ.Component {
				return errorToast(tr, p)
			},
			ToastTarget: "#" + errorToastRootID,
			ToastMode:   handler.PatchInner,
			Translate: func(r *http.Request, key string) string {
				return tr.Td(i18n.GetLocale(r.Context()), "error."+key, key)
			},
		}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handlers) page(id string) (*Page, error) {
	p, ok := h.pages.Get(id)
	if !ok {
		return nil, handler.ErrNotFound
	}
	return p, nil
}

// Index opens a new page in the request language and renders it.
func (h *Handlers) Index(ctx handler.Context, _ struct{}) handler.Response {
	lang := i18n.GetLocale(ctx)
	p := h.pages.Create(lang)
	return handler.Templ(pageDocument(p.ID, p.l))
}

// Events streams page updates to the browser.
func (h *Handlers) Events(_ handler.Context, req pageRequest) handler.Response {
	p, err := h.page(req.Page)
	if err != nil {
		return errorResponse{err}
	}
	return handler.SSE(p.Stream)
}

// Submit starts a contact form submission. Feedback reaches the browser
// through the page stream, including the notice of a rate limited attempt.
func (h *Handlers) Submit(ctx handler.Context, req contactRequest) handler.Response {
	p, err := h.page(req.Page)
	if err != nil {
		return errorResponse{err}
	}
	if !h.allowSubmit(ctx) {
		p.Notifier.Notify(ctx, p.l.Td("error."+handler.ErrTooManyRequests.Key, msgTooManyRequests), notifications.TypeError)
		return handler.Empty()
	}
	p.Submit(ctx, req.fields())
	return handler.Empty()
}

// allowSubmit reports whether the client may submit now. Limiter failures
// let the submission through.
func (h *Handlers) allowSubmit(ctx handler.Context) bool {
	if h.limiter == nil {
		return true
	}
	res, err := h.limiter.Allow(ctx, clientip.FromContext(ctx))
	if err != nil {
		h.log.ErrorContext(ctx, "rate limiter failed", logger.Error(err))
		return true
	}
	if !res.Allowed() {
		h.log.WarnContext(ctx, "contact submission rate limited",
			slog.Duration("retry_after", res.RetryAfter()))
		return false
	}
	return true
}

// Blur validates the field the visitor just left.
func (h *Handlers) Blur(_ handler.Context, req fieldRequest) handler.Response {
	p, err := h.page(req.Page)
	if err != nil {
		return errorResponse{err}
	}
	f, ok := req.field()
	if !ok {
		return errorResponse{handler.ErrNotFound}
	}
	p.Form.Blur(f)
	return handler.Empty()
}

// Input clears the error of the field being edited.
func (h *Handlers) Input(_ handler.Context, req fieldRequest) handler.Response {
	p, err := h.page(req.Page)
	if err != nil {
		return errorResponse{err}
	}
	if _, ok := req.field(); !ok {
		return errorResponse{handler.ErrNotFound}
	}
	p.Form.Input(req.Field)
	return handler.Empty()
}

// CloseNotification starts the exit of the displayed notification. Stale
// generations are ignored.
func (h *Handlers) CloseNotification(ctx handler.Context, req closeRequest) handler.Response {
	p, err := h.page(req.Page)
	if err != nil {
		return errorResponse{err}
	}
	p.Notifier.Close(ctx, req.Generation)
	return handler.Empty()
}

// errorResponse hands err to the error handler.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

// Routes mounts the page routes on r.
func (h *Handlers) Routes(r chi.Router) {
	path := binder.Path(chi.URLParam)
	form := binder.Form()

	r.Get("/", handler.Wrap(h.Index,
		handler.WithErrorHandler[handler.Context, struct{}](h.onErr)))
	r.Get("/pages/{page}/events", handler.Wrap(h.Events,
		handler.WithBinders[handler.Context, pageRequest](path),
		handler.WithErrorHandler[handler.Context, pageRequest](h.onErr)))
	r.Post("/pages/{page}/contact", handler.Wrap(h.Submit,
		handler.WithBinders[handler.Context, contactRequest](path, form),
		handler.WithErrorHandler[handler.Context, contactRequest](h.onErr)))
	r.Post("/pages/{page}/fields/{field}/blur", handler.Wrap(h.Blur,
		handler.WithBinders[handler.Context, fieldRequest](path, form),
		handler.WithErrorHandler[handler.Context, fieldRequest](h.onErr)))
	r.Post("/pages/{page}/fields/{field}/input", handler.Wrap(h.Input,
		handler.WithBinders[handler.Context, fieldRequest](path),
		handler.WithErrorHandler[handler.Context, fieldRequest](h.onErr)))
	r.Post("/pages/{page}/notifications/{generation}/close", handler.Wrap(h.CloseNotification,
		handler.WithBinders[handler.Context, closeRequest](path),
		handler.WithErrorHandler[handler.Context, closeRequest](h.onErr)))
}
