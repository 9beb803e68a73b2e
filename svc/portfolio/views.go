package portfolio

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.924 generate -f views.templ

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/i18n"
	"github.com/dmitrymomot/folio/pkg/notifications"
)

// errorToastRootID hosts request error toasts. It is separate from the
// notification root, which belongs to the page Notifier.
const errorToastRootID = "error-toast-root"

func errorID(field string) string { return field + "-error" }

// contactFields lists the form controls in display order. All are required.
var contactFields = []struct {
	name      string
	inputType string
}{
	{contact.FieldName, "text"},
	{contact.FieldEmail, "email"},
	{contact.FieldMessage, "textarea"},
}

// localizer renders catalogue texts for one language.
type localizer struct {
	tr   *i18n.Translator
	lang string
}

func (l localizer) T(key string) string { return l.tr.T(l.lang, key) }

func (l localizer) Td(key, fallback string) string { return l.tr.Td(l.lang, key, fallback) }

func pagePath(pageID, suffix string) string {
	return "/pages/" + pageID + suffix
}

func fieldPath(pageID, field, event string) string {
	return pagePath(pageID, "/fields/"+field+"/"+event)
}

func closePath(pageID string, generation uint64) string {
	return pagePath(pageID, "/notifications/"+strconv.FormatUint(generation, 10)+"/close")
}

func getAction(path string) string {
	return "@get('" + path + "')"
}

func postAction(path string, form bool) string {
	if form {
		return "@post('" + path + "', {contentType: 'form'})"
	}
	return "@post('" + path + "')"
}

func notificationStyle(t notifications.Type) templ.SafeCSS {
	return templ.SafeCSS("background: " + t.Style().Background + ";")
}

func iconClass(t notifications.Type) string {
	return "fas fa-" + t.Style().Icon
}
