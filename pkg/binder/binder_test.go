package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/binder"
)

type contactRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
	Copy    bool   `form:"copy"`
	Tags    []string
	Ignored string `form:"-"`
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("url encoded", func(t *testing.T) {
		t.Parallel()
		req := formRequest(url.Values{
			"name":    {"Ada"},
			"email":   {"ada@example.com"},
			"message": {"  spaces kept  "},
			"copy":    {"on"},
			"tags":    {"a", "b"},
			"Ignored": {"x"},
		})

		var got contactRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, contactRequest{
			Name:    "Ada",
			Email:   "ada@example.com",
			Message: "  spaces kept  ",
			Copy:    true,
			Tags:    []string{"a", "b"},
		}, got)
	})

	t.Run("missing values keep zero", func(t *testing.T) {
		t.Parallel()
		var got contactRequest
		require.NoError(t, binder.Form()(formRequest(url.Values{"name": {"Ada"}}), &got))
		assert.Equal(t, "Ada", got.Name)
		assert.Empty(t, got.Email)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		require.NoError(t, w.WriteField("name", "Ada"))
		require.NoError(t, w.WriteField("email", "ada@example.com"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())

		var got contactRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "Ada", got.Name)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Ada"))
		var got contactRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrMissingContentType)
	})

	t.Run("json is unsupported", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		var got contactRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Parallel()
		var got contactRequest
		err := binder.Form()(formRequest(url.Values{"copy": {"maybe"}}), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		var got contactRequest
		assert.ErrorIs(t, binder.Form()(formRequest(url.Values{}), got), binder.ErrFailedToParseForm)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	type closeRequest struct {
		Page       string `path:"page"`
		Generation uint64 `path:"generation"`
		Skip       string `path:"-"`
	}

	params := map[string]string{"page": "p-1", "generation": "7", "skip": "x"}
	extract := func(_ *http.Request, name string) string { return params[name] }

	var got closeRequest
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodPost, "/", nil), &got))
	assert.Equal(t, closeRequest{Page: "p-1", Generation: 7}, got)

	params["generation"] = "-1"
	err := binder.Path(extract)(httptest.NewRequest(http.MethodPost, "/", nil), &got)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
}

func TestEmbeddedStructs(t *testing.T) {
	t.Parallel()

	type fieldRequest struct {
		contactRequest
		Page  string `path:"page"`
		Field string `path:"field"`
	}

	req := formRequest(url.Values{"name": {"Ada"}, "email": {"ada@example.com"}})
	params := map[string]string{"page": "p-1", "field": "email"}

	var got fieldRequest
	require.NoError(t, binder.Path(func(_ *http.Request, name string) string { return params[name] })(req, &got))
	require.NoError(t, binder.Form()(req, &got))

	assert.Equal(t, "p-1", got.Page)
	assert.Equal(t, "email", got.Field)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "ada@example.com", got.Email)
}

type pageFields struct {
	Page  string `path:"page"`
	Email string `form:"email"`
	note  string
}

func TestEmbeddedStructs_PromotedFromUnexported(t *testing.T) {
	t.Parallel()

	type blurRequest struct {
		pageFields
		Field string `path:"field"`
	}

	req := formRequest(url.Values{"email": {"bad"}, "note": {"ignored"}})
	params := map[string]string{"page": "p-2", "field": "email"}

	var got blurRequest
	require.NoError(t, binder.Path(func(_ *http.Request, name string) string { return params[name] })(req, &got))
	require.NoError(t, binder.Form()(req, &got))

	assert.Equal(t, "p-2", got.Page)
	assert.Equal(t, "email", got.Field)
	assert.Equal(t, "bad", got.Email)
	assert.Empty(t, got.note, "unexported leaf fields are never set")
}
