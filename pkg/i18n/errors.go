package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: translation adapter is nil")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")
	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrInvalidStructure     = errors.New("i18n: invalid translation structure")
	ErrFailedToReadDir      = errors.New("i18n: failed to read translation directory")
	ErrFailedToReadFile     = errors.New("i18n: failed to read translation file")
	ErrNoTranslationFiles   = errors.New("i18n: no translation files found")
	ErrLoadingCancelled     = errors.New("i18n: loading translations cancelled")
)
