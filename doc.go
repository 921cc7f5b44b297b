// Package i18n is a localization library for chat-bot backends. Given a
// translation key and a target locale it returns a formatted string, falling
// back to a configured default locale when the key or the locale is missing.
//
// The package allows you to:
//
//   - Build per-locale language tables from arbitrarily nested documents;
//     nesting (maps and sequences) is flattened into delimiter-joined keys at
//     construction time, so lookups are a single map access.
//   - Translate strings with `{name}` placeholder substitution. Caller values
//     take priority, and entries of the same language table can be used as
//     substitution arguments, so one translated string may reference another.
//   - Chain a single fallback step: an unknown locale resolves against the
//     fallback language, and a key missing in the selected language is retried
//     against the fallback language once.
//   - Load translations from in-memory maps, single files, any io/fs.FS
//     (including embed.FS), a PostgreSQL table or Redis hashes by implementing
//     or reusing the Adapter interface.
//   - Carry the current locale through a request with context.Context and
//     translate via Tc/Nc, or hand out a locale-bound Translator.
//
// # Architecture
//
// The resolver type I18n holds one Language per locale code plus the fallback
// code. A Language is immutable after construction and stores a flat
// key-to-string table. Storage concerns live behind the Adapter interface;
// file-based adapters delegate format handling to a Parser (JSON and YAML
// parsers are included).
//
// # Usage
//
// Basic set-up from an fs.FS with YAML files named after their locale:
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), os.DirFS("./locales"), ".")
//	bundle, err := i18n.NewFromAdapter(context.Background(), adapter, "en")
//	if err != nil {
//		log.Fatalf("failed to init i18n: %v", err)
//	}
//
//	msg, err := bundle.Translate("fr", "welcome", i18n.Vars{"name": "John"})
//	// msg == "Bienvenue, John!"
//
// The lenient API returns the key itself instead of an error:
//
//	msg := bundle.T("fr", "welcome", i18n.Vars{"name": "John"})
//
// # Error Handling
//
// Failures are reported through typed errors such as ErrMissingTranslation and
// ErrUnknownLocale that carry the offending key and locale:
//
//	var miss *i18n.ErrMissingTranslation
//	if errors.As(err, &miss) {
//		log.Printf("untranslated key %q for %q", miss.Key, miss.Locale)
//	}
package i18n
