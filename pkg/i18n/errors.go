package i18n

import "errors"

var (
	ErrNilAdapter            = errors.New("i18n: adapter is nil")
	ErrInvalidTranslations   = errors.New("i18n: invalid translations")
	ErrUnsupportedFileFormat = errors.New("i18n: unsupported file format")
	ErrFailedToParseJSON     = errors.New("i18n: failed to parse JSON translations")
	ErrFailedToParseYAML     = errors.New("i18n: failed to parse YAML translations")
)
