package i18n

import (
	"io"
	"log/slog"
)

// Option configures an I18n resolver during construction.
type Option func(*I18n)

// WithDelimiter sets the key-path delimiter used when flattening documents
// loaded through an adapter. Default is ".".
func WithDelimiter(delimiter string) Option {
	return func(i *I18n) {
		if delimiter != "" {
			i.delimiter = delimiter
		}
	}
}

// WithLogger provides a customizable logger for the resolver.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(i *I18n) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMissingLogging controls whether missing keys and locales are logged at
// Warn level. Default is false to avoid noise on hot paths.
func WithMissingLogging(enabled bool) Option {
	return func(i *I18n) {
		i.missingLog = enabled
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(i *I18n) {
		i.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		i.missingLog = false
	}
}

// callOptions carries per-call resolution settings.
type callOptions struct {
	noFallback    bool
	noReuse       bool
	allowEmpty    bool
	listFormatter func([]string) string
}

// CallOption adjusts a single resolution call.
type CallOption func(*callOptions)

func newCallOptions(opts []CallOption) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NoFallback disables the fallback step for this call: an unknown locale or a
// missing key fails instead of retrying against the fallback language.
func NoFallback() CallOption {
	return func(o *callOptions) {
		o.noFallback = true
	}
}

// NoReuse disables using entries of the language table as substitution values,
// leaving caller-supplied Vars as the only source.
func NoReuse() CallOption {
	return func(o *callOptions) {
		o.noReuse = true
	}
}

// AllowEmpty accepts empty-string translations instead of reporting
// ErrEmptyTranslation.
func AllowEmpty() CallOption {
	return func(o *callOptions) {
		o.allowEmpty = true
	}
}

// WithListFormatter sets the function applied to []string substitution values
// for this call. See Language.JoinList, Language.And and Language.Or.
func WithListFormatter(f func([]string) string) CallOption {
	return func(o *callOptions) {
		o.listFormatter = f
	}
}
