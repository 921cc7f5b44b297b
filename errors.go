package i18n

import (
	"errors"
	"fmt"
)

// Sentinel errors cover construction and loading failures. Resolution failures
// use the typed errors below so callers can inspect the key and locale.
var (
	// Construction
	ErrNilAdapter      = errors.New("i18n: adapter is nil")
	ErrNoLanguages     = errors.New("i18n: no languages registered")
	ErrInvalidFallback = errors.New("i18n: fallback locale cannot be empty")

	// Parsing
	ErrParsingCancelled  = errors.New("i18n: parsing cancelled")
	ErrFailedToParseJSON = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")

	// Source loading
	ErrLoadingCancelled    = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadSource  = errors.New("i18n: failed to read translation source")
	ErrFailedToParseSource = errors.New("i18n: failed to parse translation source")

	// Backing stores
	ErrInvalidTableName    = errors.New("i18n: invalid translations table name")
	ErrStoreNotReady       = errors.New("i18n: translation store did not become ready")
	ErrFailedToParseDBConn = errors.New("i18n: failed to parse store connection string")
)

// ErrUnknownLocale indicates that the requested locale is not registered.
type ErrUnknownLocale struct {
	Locale string
}

func (e *ErrUnknownLocale) Error() string {
	return fmt.Sprintf("i18n: locale %q does not exist", e.Locale)
}

// ErrMissingTranslation indicates that a key could not be resolved for the
// requested locale, nor for the fallback locale when fallback was attempted.
// Fallback is empty when the failure occurred below the resolver.
type ErrMissingTranslation struct {
	Key      string
	Locale   string
	Fallback string
}

func (e *ErrMissingTranslation) Error() string {
	if e.Fallback == "" || e.Fallback == e.Locale {
		return fmt.Sprintf("i18n: translation %q not found for locale %q", e.Key, e.Locale)
	}
	return fmt.Sprintf("i18n: translation %q not found for locale %q, nor fallback %q", e.Key, e.Locale, e.Fallback)
}

// ErrEmptyTranslation indicates that a key resolved to an empty string.
// Empty entries are rejected by default; see AllowEmpty.
type ErrEmptyTranslation struct {
	Key    string
	Locale string
}

func (e *ErrEmptyTranslation) Error() string {
	return fmt.Sprintf("i18n: translation for key %q in locale %q is empty", e.Key, e.Locale)
}
