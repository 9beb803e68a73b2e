package portfolio

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/handler"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/notifications"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func testLocalizer(t *testing.T, lang string) localizer {
	t.Helper()
	tr, err := NewTranslator(context.Background(), "en", logger.Discard())
	require.NoError(t, err)
	return localizer{tr: tr, lang: lang}
}

func TestFieldErrorView(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, `<p id="email-error" class="field-error" role="alert" hidden></p>`,
		render(t, ctx, fieldError("email", "")))
	assert.Equal(t, `<p id="name-error" class="field-error" role="alert">&lt;b&gt;no&lt;/b&gt;</p>`,
		render(t, ctx, fieldError("name", "<b>no</b>")))
}

func TestPageDocumentView(t *testing.T) {
	t.Parallel()
	l := testLocalizer(t, "en")

	html := render(t, context.Background(), pageDocument("p-1", l))
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, `data-on-load="@get(&#39;/pages/p-1/events&#39;)"`)
	assert.Contains(t, html, `<form id="contact-form" novalidate`)
	assert.Contains(t, html, `data-on-blur="@post(&#39;/pages/p-1/fields/email/blur&#39;, {contentType: &#39;form&#39;})"`)
	assert.Contains(t, html, `data-on-input__debounce.250ms="@post(&#39;/pages/p-1/fields/message/input&#39;)"`)
	assert.Contains(t, html, `<textarea id="message" name="message" rows="5" required`)
	assert.Contains(t, html, `<div id="notification-root" aria-live="polite"></div>`)
	assert.Contains(t, html, `<div id="error-toast-root" aria-live="assertive"></div>`)
	assert.Contains(t, html, "<style>")
}

func TestNotificationRootView(t *testing.T) {
	t.Parallel()
	l := testLocalizer(t, "en")
	n := &notifications.Notification{Generation: 7, Message: "Saved & sent", Type: notifications.TypeSuccess}

	html := render(t, context.Background(), notificationRoot("p-1", n, false, l))
	assert.Contains(t, html, `class="notification notification-success"`)
	assert.Contains(t, html, `data-generation="7"`)
	assert.Contains(t, html, `style="background: #00ff88;"`)
	assert.Contains(t, html, `<i class="fas fa-check-circle"></i>`)
	assert.Contains(t, html, "Saved &amp; sent")
	assert.Contains(t, html, `data-on-click="@post(&#39;/pages/p-1/notifications/7/close&#39;)"`)

	leaving := render(t, context.Background(), notificationRoot("p-1", n, true, l))
	assert.Contains(t, leaving, `class="notification notification-success leaving"`)

	assert.Equal(t, `<div id="notification-root" aria-live="polite"></div>`,
		render(t, context.Background(), notificationRoot("p-1", nil, false, l)))
}

func TestSubmitButtonView(t *testing.T) {
	t.Parallel()
	l := testLocalizer(t, "pl")

	pending := render(t, context.Background(), submitButton(true, l))
	assert.Contains(t, pending, "disabled")
	assert.Contains(t, pending, "fa-spinner")

	idle := render(t, context.Background(), submitButton(false, l))
	assert.NotContains(t, idle, "disabled")
	assert.Contains(t, idle, `id="contact-submit"`)
}

func TestErrorViews_UseRequestLanguage(t *testing.T) {
	t.Parallel()
	l := testLocalizer(t, "pl")
	ctx := i18n.SetLocale(context.Background(), "pl")

	page := render(t, ctx, errorPage(l.tr, handler.ErrorPageParams{StatusCode: 404, Error: "gone", RequestID: "req-1"}))
	assert.Contains(t, page, `<html lang="pl">`)
	assert.Contains(t, page, "<h1>404</h1>")
	assert.Contains(t, page, `<p class="request-id">req-1</p>`)

	toast := render(t, ctx, errorToast(l.tr, handler.ErrorToastParams{Message: "slow down"}))
	assert.Contains(t, toast, "slow down")
	assert.Contains(t, toast, `data-on-load__delay.5s="el.remove()"`)
	assert.Contains(t, toast, `aria-label="`+l.T("notification.close")+`"`)
}
