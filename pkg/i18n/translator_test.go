package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/i18n"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello": "Hello",
			"validation": map[string]any{
				"min_length": "Must be at least %{min} characters long",
			},
		},
		"pl": {
			"hello": "Cześć",
		},
	}}, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"simple key", "en", "hello", nil, "Hello"},
		{"other language", "pl", "hello", nil, "Cześć"},
		{"nested key with placeholder", "en", "validation.min_length", []string{"min", "10"}, "Must be at least 10 characters long"},
		{"unknown placeholder kept", "en", "validation.min_length", []string{"max", "10"}, "Must be at least %{min} characters long"},
		{"odd args ignored", "en", "validation.min_length", []string{"min"}, "Must be at least %{min} characters long"},
		{"unsupported language uses default", "de", "hello", nil, "Hello"},
		{"missing key falls back to key", "en", "nope.missing", nil, "nope.missing"},
		{"key is not a leaf", "en", "validation", nil, "validation"},
		{"key under a leaf", "en", "hello.world", nil, "hello.world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_Options(t *testing.T) {
	t.Parallel()

	t.Run("no fallback to key", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, tr.T("en", "missing"))
	})

	t.Run("default language", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t, i18n.WithDefaultLanguage("pl"))
		assert.Equal(t, "pl", tr.DefaultLanguage())
		assert.Equal(t, "Cześć", tr.T("de", "hello"))
	})
}

func TestTranslator_Td(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, "Hello", tr.Td("en", "hello", "fallback"))
	assert.Equal(t, "At least 3", tr.Td("en", "missing", "At least %{min}", "min", "3"))
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))
	assert.Equal(t, "Cześć", tr.Tc(i18n.SetLocale(context.Background(), "pl"), "hello"))
}

func TestTranslator_Metadata(t *testing.T) {
	t.Parallel()
	tr := newTranslator(t)

	assert.Equal(t, []string{"en", "pl"}, tr.SupportedLanguages())
	assert.True(t, tr.HasTranslation("en", "validation.min_length"))
	assert.False(t, tr.HasTranslation("en", "validation"))
}

func TestNewTranslator_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewTranslator(context.Background(), nil)
	assert.ErrorIs(t, err, i18n.ErrNilAdapter)

	_, err = i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
	assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/a.yaml":    {Data: []byte("en:\n  hello: Hello\n  contact:\n    sent: Sent\n")},
		"locales/b.yml":     {Data: []byte("en:\n  hello: Hi\npl:\n  hello: Cześć\n")},
		"locales/notes.txt": {Data: []byte("ignored")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales"))
	require.NoError(t, err)

	assert.Equal(t, "Hi", tr.T("en", "hello"), "later files override earlier keys")
	assert.Equal(t, "Sent", tr.T("en", "contact.sent"))
	assert.Equal(t, "Cześć", tr.T("pl", "hello"))

	t.Run("no supported files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{"x/readme.md": {}}, "x").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		bad := fstest.MapFS{"l/en.yaml": {Data: []byte("en: just a string\n")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), bad, "l").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewYAMLParser()

	assert.True(t, p.SupportsFileExtension(".yaml"))
	assert.True(t, p.SupportsFileExtension("YML"))
	assert.False(t, p.SupportsFileExtension("json"))

	_, err := p.Parse(context.Background(), []byte("en: [unterminated"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Parse(ctx, []byte("en:\n  a: b\n"))
	assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
}
