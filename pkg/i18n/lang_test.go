package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/folio/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()
	supported := []string{"en", "pl", "pt-BR"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "pl", "pl"},
		{"quality ordering", "en;q=0.5, pl;q=0.9", "pl"},
		{"region exact match", "pt-BR", "pt-br"},
		{"base language fallback", "pl-PL", "pl"},
		{"exact beats base regardless of position", "en-GB;q=0.9, pl;q=0.8", "pl"},
		{"unsupported", "de, fr", "en"},
		{"malformed header", "pl;q=abc", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := i18n.Middleware(i18n.AcceptLanguage([]string{"en", "pl"}, "en"))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "pl", got)

	i18n.Middleware(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, i18n.DefaultLanguage, got)
}
