package portfolio

import (
	"log/slog"

	"github.com/dmitrymomot/folio/pkg/cache"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/notifications"
)

// Pages keeps the open pages in an LRU cache. Pages leaving the cache are
// closed.
type Pages struct {
	cache     *cache.LRUCache[string, *Page]
	tr        *i18n.Translator
	log       *slog.Logger
	submitter contact.Submitter
	notifier  []notifications.Option
	buffer    int
}

// PagesOption configures Pages.
type PagesOption func(*Pages)

// WithSubmitter replaces the simulated submitter.
func WithSubmitter(s contact.Submitter) PagesOption {
	return func(ps *Pages) {
		if s != nil {
			ps.submitter = s
		}
	}
}

// WithNotifierOptions appends options to every page notifier.
func WithNotifierOptions(opts ...notifications.Option) PagesOption {
	return func(ps *Pages) {
		ps.notifier = append(ps.notifier, opts...)
	}
}

func WithLogger(l *slog.Logger) PagesOption {
	return func(ps *Pages) {
		if l != nil {
			ps.log = l
		}
	}
}

// NewPages creates a registry configured from cfg.
func NewPages(cfg Config, tr *i18n.Translator, opts ...PagesOption) *Pages {
	capacity := cfg.PagesMax
	if capacity <= 0 {
		capacity = DefaultConfig().PagesMax
	}
	buffer := cfg.StreamBuffer
	if buffer <= 0 {
		buffer = DefaultConfig().StreamBuffer
	}

	ps := &Pages{
		cache:     cache.NewLRUCache[string, *Page](capacity),
		tr:        tr,
		log:       logger.Discard(),
		submitter: contact.SimulatedSubmitter{Latency: cfg.ContactSubmitLatency},
		notifier: []notifications.Option{
			notifications.WithAutoDismiss(cfg.NotifyAutoDismiss),
			notifications.WithExitDelay(cfg.NotifyExitDelay),
		},
		buffer: buffer,
	}
	for _, opt := range opts {
		opt(ps)
	}

	ps.cache.SetEvictCallback(func(_ string, p *Page) {
		p.Close()
	})
	return ps
}

// Create opens a page rendered in lang.
func (ps *Pages) Create(lang string) *Page {
	p := newPage(pageDeps{
		l:         localizer{tr: ps.tr, lang: lang},
		log:       ps.log,
		submitter: ps.submitter,
		notifier:  ps.notifier,
		buffer:    ps.buffer,
	})
	ps.cache.Put(p.ID, p)
	p.log.Debug("page opened", logger.Component("portfolio"), slog.String("lang", lang))
	return p
}

// Get returns an open page and marks it as recently used.
func (ps *Pages) Get(id string) (*Page, bool) {
	return ps.cache.Get(id)
}

// Remove closes and forgets a page.
func (ps *Pages) Remove(id string) bool {
	_, ok := ps.cache.Remove(id)
	return ok
}

// Len reports the number of open pages.
func (ps *Pages) Len() int {
	return ps.cache.Len()
}

// Close closes every page.
func (ps *Pages) Close() {
	ps.cache.Clear()
}
