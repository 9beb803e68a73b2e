package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps how much of the header is parsed.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best supported language for header. Exact
// tags are tried in quality order first, then base languages ("en-US" -> "en").
// A malformed header yields defaultLang.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	for _, tag := range tags {
		if lang := strings.ToLower(tag.String()); slices.Contains(supported, lang) {
			return lang
		}
	}

	for _, tag := range tags {
		base, conf := tag.Base()
		if conf == language.No {
			continue
		}
		if lang := base.String(); slices.Contains(supported, lang) {
			return lang
		}
	}

	return defaultLang
}
