// Package i18n serves user facing strings from YAML translation files.
//
// Translations are loaded once through a TranslationAdapter, usually an
// FSAdapter over an embed.FS, and looked up by dot separated keys with
// %{name} placeholders:
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"))
//	tr.T("en", "validation.min_length", "min", "10")
//
// Middleware with AcceptLanguage stores the negotiated language in the
// request context for Tc.
package i18n
