package portfolio

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/folio/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the embedded message catalogue.
func NewTranslator(ctx context.Context, defaultLocale string, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
		i18n.WithDefaultLanguage(defaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}
