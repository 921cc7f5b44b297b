package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength truncates oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit; 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// Normalize canonicalizes a BCP 47 tag to its lowercased form ("EN-us" to
// "en-us"). It returns false for malformed or undetermined tags.
func Normalize(code string) (string, bool) {
	tag, err := language.Parse(code)
	if err != nil || tag == language.Und {
		return "", false
	}
	return strings.ToLower(tag.String()), true
}

// Match picks the best supported locale for the requested ones using the
// x/text language matcher, which understands script and region distance
// (e.g. "en-GB" matching "en"). Returns fallback when nothing fits.
func Match(requested, supported []string, fallback string) string {
	if len(requested) == 0 || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	desired := make([]language.Tag, 0, len(requested))
	for _, code := range requested {
		if tag, err := language.Parse(code); err == nil {
			desired = append(desired, tag)
		}
	}
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return fallback
	}
	return codes[idx]
}

// langWithQ represents a language tag with its quality value.
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader parses Accept-Language headers per RFC 7231,
// handling malformed entries gracefully and sorting by quality descending.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0

		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// ParseAcceptLanguage negotiates a locale from an Accept-Language header.
// It first attempts exact matches (en-US), then base language matches
// (en-US -> en), only after all exact matches are exhausted so that quality
// ordering is respected.
func ParseAcceptLanguage(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}

	normalized := make([]string, len(supported))
	for i, lang := range supported {
		normalized[i] = strings.ToLower(lang)
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(normalized, lq.lang) {
			return lq.lang
		}
	}

	for _, lq := range languages {
		if idx := strings.Index(lq.lang, "-"); idx > 0 {
			if base := lq.lang[:idx]; slices.Contains(normalized, base) {
				return base
			}
		}
	}

	return fallback
}
