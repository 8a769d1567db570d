// Package i18n holds the static translation dictionary for the marketing
// pages and resolves the active UI language per request.
package i18n

import "golang.org/x/text/language"

// Language is an ISO-like two-letter UI language code.
type Language string

const (
	Chinese  Language = "zh"
	English  Language = "en"
	Japanese Language = "ja"
	Korean   Language = "ko"
)

// DefaultLanguage is used when neither cookie nor Accept-Language yields a
// supported language.
const DefaultLanguage = Chinese

// CookieKey persists the visitor's language choice across requests.
const CookieKey = "lockerlink-lang"

// SupportedLanguages lists selectable UI languages in display order.
var SupportedLanguages = []Language{Chinese, English, Japanese, Korean}

// LanguageLabels maps each language to its native display name for the
// language switcher.
var LanguageLabels = map[Language]string{
	Chinese:  "简体中文",
	English:  "English",
	Japanese: "日本語",
	Korean:   "한국어",
}

// matchTags must stay aligned with SupportedLanguages; the matcher prefers
// earlier entries on ties.
var matchTags = []language.Tag{
	language.Chinese,
	language.English,
	language.Japanese,
	language.Korean,
}

var matcher = language.NewMatcher(matchTags)

// IsSupported reports whether value names a supported UI language.
func IsSupported(value string) bool {
	for _, lang := range SupportedLanguages {
		if string(lang) == value {
			return true
		}
	}
	return false
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value. Returns DefaultLanguage when the header is
// empty or matches nothing.
func MatchAcceptLanguage(header string) Language {
	if header == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[index]
}
