package i18n

// PageID identifies one of the marketing pages.
type PageID string

const (
	PageHome     PageID = "home"
	PageStorage  PageID = "storage"
	PageDelivery PageID = "delivery"
	PagePartner  PageID = "partner"
	PageAccount  PageID = "account"
)

// MarketingPages lists the marketing page ids in navigation order.
var MarketingPages = []PageID{PageHome, PageStorage, PageDelivery, PagePartner, PageAccount}

// Cta is a call-to-action link; EventID, when set, names the analytics event
// emitted on click.
type Cta struct {
	Label   string
	Href    string
	EventID string
}

type HeroHighlight struct {
	Label string
	Value string
}

type HeroContent struct {
	Eyebrow      string
	Title        string
	Subtitle     string
	Description  string
	PrimaryCta   Cta
	SecondaryCta Cta
	Highlights   []HeroHighlight
}

type FeatureCard struct {
	ID          string
	Title       string
	Description string
	LinkLabel   string
	Icon        string
}

type FeatureSection struct {
	Title    string
	Subtitle string
	Cards    []FeatureCard
}

type SearchSection struct {
	Title               string
	LocationLabel       string
	LocationPlaceholder string
	DateLabel           string
	ActionLabel         string
}

type MapCity struct {
	ID          string
	Name        string
	Headline    string
	Description string
	Highlight   string
}

type MapSection struct {
	Title        string
	Subtitle     string
	Callout      string
	ExploreLabel string
	Cities       []MapCity
}

type HowItWorksStep struct {
	ID          string
	Title       string
	Description string
}

type HowItWorks struct {
	Title    string
	Subtitle string
	Footnote string
	Steps    []HowItWorksStep
}

type Testimonial struct {
	ID       string
	Name     string
	Role     string
	Location string
	Quote    string
	Rating   int
}

type Testimonials struct {
	Title    string
	Subtitle string
	Entries  []Testimonial
}

type PartnerBanner struct {
	Title        string
	Subtitle     string
	PrimaryCta   Cta
	SecondaryCta Cta
}

type Meta struct {
	Title       string
	Description string
}

type Navigation struct {
	Home     string
	Storage  string
	Delivery string
	Partner  string
	Account  string
}

type Footer struct {
	About        string
	Contact      string
	Privacy      string
	Terms        string
	Partner      string
	Rights       string
	ContactPhone string
	ContactMail  string
}

type PartnerHighlight struct {
	Title    string
	Subtitle string
	Cta      string
}

type PageContent struct {
	Hero HeroContent
	Meta Meta
}

// Common holds section content shared across pages. Nil sections fall back
// to English, mirroring how the source dictionary reuses English blocks for
// partially translated languages.
type Common struct {
	FeatureSection *FeatureSection
	SearchSection  *SearchSection
	MapSection     *MapSection
	HowItWorks     *HowItWorks
	Testimonials   *Testimonials
	PartnerBanner  *PartnerBanner
}

type Translation struct {
	LanguageName     string
	Navigation       Navigation
	Footer           Footer
	PartnerHighlight PartnerHighlight
	Common           Common
	Pages            map[PageID]PageContent
}

// Page bundles everything a marketing template needs for one page in one
// language.
type Page struct {
	ID             PageID
	Language       Language
	Meta           Meta
	Hero           HeroContent
	FeatureSection FeatureSection
	SearchSection  SearchSection
	MapSection     MapSection
	HowItWorks     HowItWorks
	Testimonials   Testimonials
	PartnerBanner  PartnerBanner
}

var translations = map[Language]*Translation{
	English:  &en,
	Chinese:  &zh,
	Japanese: &ja,
	Korean:   &ko,
}

// GetTranslation returns the dictionary for lang, falling back to English
// for unknown values.
func GetTranslation(lang Language) *Translation {
	if t, ok := translations[lang]; ok {
		return t
	}
	return &en
}

// GetPage assembles the full content for a marketing page, applying the
// English fallback for untranslated shared sections and missing pages.
func GetPage(lang Language, id PageID) Page {
	t := GetTranslation(lang)

	page, ok := t.Pages[id]
	if !ok {
		page = en.Pages[id]
	}

	return Page{
		ID:             id,
		Language:       lang,
		Meta:           page.Meta,
		Hero:           page.Hero,
		FeatureSection: *fallback(t.Common.FeatureSection, en.Common.FeatureSection),
		SearchSection:  *fallback(t.Common.SearchSection, en.Common.SearchSection),
		MapSection:     *fallback(t.Common.MapSection, en.Common.MapSection),
		HowItWorks:     *fallback(t.Common.HowItWorks, en.Common.HowItWorks),
		Testimonials:   *fallback(t.Common.Testimonials, en.Common.Testimonials),
		PartnerBanner:  *fallback(t.Common.PartnerBanner, en.Common.PartnerBanner),
	}
}

func fallback[T any](preferred, def *T) *T {
	if preferred != nil {
		return preferred
	}
	return def
}
