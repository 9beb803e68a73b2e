package i18n

import "net/http"

// LangExtractor picks a language for a request. An empty result means no
// preference.
type LangExtractor func(r *http.Request) string

// AcceptLanguage negotiates the Accept-Language header against supported.
func AcceptLanguage(supported []string, defaultLang string) LangExtractor {
	return func(r *http.Request) string {
		return ParseAcceptLanguage(r.Header.Get("Accept-Language"), supported, defaultLang)
	}
}

// Middleware stores the extracted language in the request context, falling
// back to DefaultLanguage.
func Middleware(extract LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extract != nil {
				lang = extract(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
