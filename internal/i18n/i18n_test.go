package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAcceptLanguage(t *testing.T) {
	cases := map[string]Language{
		"":                        DefaultLanguage,
		"zh-CN,zh;q=0.9":          Chinese,
		"en-US,en;q=0.9":          English,
		"ja,en;q=0.8":             Japanese,
		"ko-KR,ko;q=0.9,en;q=0.5": Korean,
		"fr-FR,fr;q=0.9":          DefaultLanguage,
		"not a header":            DefaultLanguage,
	}

	for header, want := range cases {
		assert.Equal(t, want, MatchAcceptLanguage(header), "header %q", header)
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.True(t, IsSupported(string(lang)))
	}
	assert.False(t, IsSupported("fr"))
	assert.False(t, IsSupported(""))
	assert.False(t, IsSupported("ZH"))
}

func TestEveryLanguageCoversEveryPage(t *testing.T) {
	for lang, translation := range translations {
		assert.NotEmpty(t, translation.LanguageName, string(lang))
		for _, id := range MarketingPages {
			page, ok := translation.Pages[id]
			require.True(t, ok, "%s missing page %s", lang, id)
			assert.NotEmpty(t, page.Hero.Title, "%s/%s hero", lang, id)
			assert.NotEmpty(t, page.Meta.Title, "%s/%s meta", lang, id)
		}
	}
}

func TestHeroEventIDsAreStableAcrossLanguages(t *testing.T) {
	reference := en.Pages

	for lang, translation := range translations {
		for id, page := range translation.Pages {
			want := reference[id].Hero
			assert.Equal(t, want.PrimaryCta.EventID, page.Hero.PrimaryCta.EventID, "%s/%s primary", lang, id)
			assert.Equal(t, want.SecondaryCta.EventID, page.Hero.SecondaryCta.EventID, "%s/%s secondary", lang, id)
		}
	}
}

func TestGetPageFallsBackToEnglishSections(t *testing.T) {
	partial := Translation{
		LanguageName: "partial",
		Pages: map[PageID]PageContent{
			PageHome: {Hero: HeroContent{Title: "partial home"}},
		},
	}
	translations[Language("xx")] = &partial
	defer delete(translations, Language("xx"))

	page := GetPage(Language("xx"), PageHome)
	assert.Equal(t, "partial home", page.Hero.Title)
	assert.Equal(t, en.Common.FeatureSection.Title, page.FeatureSection.Title)
	assert.Equal(t, en.Common.Testimonials.Title, page.Testimonials.Title)

	// Pages missing entirely fall back to the English page.
	missing := GetPage(Language("xx"), PageStorage)
	assert.Equal(t, en.Pages[PageStorage].Hero.Title, missing.Hero.Title)
}

func TestGetTranslationUnknownLanguage(t *testing.T) {
	assert.Equal(t, &en, GetTranslation(Language("xx-unknown")))
}
