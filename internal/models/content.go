// Package models defines the domain types shared across Hallabong: the
// resolved content brief, the generated content package, and the topic
// research structures.
//
// JSON field names are camelCase because these types round-trip through the
// generator's structured output, which is instructed to use camelCase keys.
package models

// ContentType classifies the editorial angle of a piece.
type ContentType string

const (
	ContentInformation ContentType = "Information"
	ContentGuide       ContentType = "Guide"
	ContentReview      ContentType = "Review"
	ContentIssue       ContentType = "Issue"
	ContentComparison  ContentType = "Comparison"
)

// Valid reports whether the value is a known content type.
func (c ContentType) Valid() bool {
	switch c {
	case ContentInformation, ContentGuide, ContentReview, ContentIssue, ContentComparison:
		return true
	}
	return false
}

// Platform identifies the publishing destination a piece is written for.
type Platform string

const (
	PlatformOrganicBlog   Platform = "OrganicBlog"
	PlatformNaverCardNews Platform = "NaverCardNews"
	PlatformNaverOfficial Platform = "NaverOfficial"
	PlatformTistory       Platform = "Tistory"
	PlatformShorts        Platform = "Shorts"
)

// Platforms returns every known platform value. The Lite default table must
// cover all of them.
func Platforms() []Platform {
	return []Platform{
		PlatformOrganicBlog,
		PlatformNaverCardNews,
		PlatformNaverOfficial,
		PlatformTistory,
		PlatformShorts,
	}
}

// Valid reports whether the value is a known platform.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// Tone selects the register of the generated copy.
type Tone string

const (
	TonePolite    Tone = "Polite"
	ToneFormal    Tone = "Formal"
	ToneSoft      Tone = "Soft"
	ToneHonorific Tone = "Honorific"
)

// Valid reports whether the value is a known tone.
func (t Tone) Valid() bool {
	switch t {
	case TonePolite, ToneFormal, ToneSoft, ToneHonorific:
		return true
	}
	return false
}

// DesignConcept selects the visual direction for image prompts.
type DesignConcept string

const (
	DesignSimpleIllust   DesignConcept = "SimpleIllust"
	DesignTypoCard       DesignConcept = "TypoCard"
	DesignWebCapture     DesignConcept = "WebCapture"
	DesignDeviceCloseup  DesignConcept = "DeviceCloseup"
)

// Valid reports whether the value is a known design concept.
func (d DesignConcept) Valid() bool {
	switch d {
	case DesignSimpleIllust, DesignTypoCard, DesignWebCapture, DesignDeviceCloseup:
		return true
	}
	return false
}

// TargetPersona identifies the reader the copy addresses.
type TargetPersona string

const (
	PersonaBeginnerOwner   TargetPersona = "Beginner_Owner"
	PersonaManager         TargetPersona = "Manager"
	PersonaVeteranCEO      TargetPersona = "Veteran_CEO"
	PersonaGeneralStandard TargetPersona = "General_Standard"
)

// Valid reports whether the value is a known persona.
func (p TargetPersona) Valid() bool {
	switch p {
	case PersonaBeginnerOwner, PersonaManager, PersonaVeteranCEO, PersonaGeneralStandard:
		return true
	}
	return false
}

// Addon is an optional structural element the generator is asked to include.
type Addon string

const (
	AddonSummaryTable Addon = "SummaryTable"
	AddonQnA          Addon = "QnA"
	AddonChecklist    Addon = "Checklist"
	AddonRealCase     Addon = "RealCase"
	AddonTips         Addon = "Tips"
	AddonComparison   Addon = "Comparison"
	AddonWarning      Addon = "Warning"
)

// Valid reports whether the value is a known addon.
func (a Addon) Valid() bool {
	switch a {
	case AddonSummaryTable, AddonQnA, AddonChecklist, AddonRealCase,
		AddonTips, AddonComparison, AddonWarning:
		return true
	}
	return false
}

// GenerationMode records which configuration-resolution strategy produced a
// brief. It is provenance only; downstream consumers never branch on it.
type GenerationMode string

const (
	ModeLite   GenerationMode = "Lite"
	ModeExpert GenerationMode = "Expert"
)

// ContentConfig is the fully resolved generation brief. Every field is
// present and valid once resolution succeeds, regardless of mode.
type ContentConfig struct {
	Topic          string         `json:"topic"`
	Keywords       []string       `json:"keywords"`
	ContentType    ContentType    `json:"contentType"`
	Platform       Platform       `json:"platform"`
	ParagraphCount int            `json:"paragraphCount"`
	Tone           Tone           `json:"tone"`
	DesignConcept  DesignConcept  `json:"designConcept"`
	TargetPersona  TargetPersona  `json:"targetPersona"`
	Addons         []Addon        `json:"addons"`
	GenerationMode GenerationMode `json:"generationMode,omitempty"`
}

// SearchSource filters topic recommendations by where the demand signal
// comes from.
type SearchSource string

const (
	SourceAll    SearchSource = "ALL"
	SourcePortal SearchSource = "PORTAL"
	SourceAI     SearchSource = "AI"
)

// TopicSuggestion is a single recommended topic. Suggestions are consumed
// immediately to seed a ContentConfig and are never persisted.
type TopicSuggestion struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	SourceType       string      `json:"sourceType"` // PORTAL | AI | HYBRID
	Rank             int         `json:"rank"`
	Reason           string      `json:"reason"`
	Keywords         []string    `json:"keywords"`
	ExpectedTraffic  string      `json:"expectedTraffic"` // High | Medium | Low
	ContentTypeBadge ContentType `json:"contentTypeBadge,omitempty"`
}

// TopicResponse is the result of one topic-recommendation request.
type TopicResponse struct {
	Summary        string            `json:"summary"`
	InsightSources []string          `json:"insightSources,omitempty"`
	GroundingLinks []GroundingLink   `json:"groundingLinks,omitempty"`
	Items          []TopicSuggestion `json:"items"`
}

// GroundingLink is a citation the generator reports as a source for its
// claims. Only entries with both a title and a URL are kept.
type GroundingLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// BannerConfig describes the promotional banner appended to an export.
// Fields are inserted verbatim, including the background color value.
type BannerConfig struct {
	MainCopy string `json:"mainCopy"`
	SubCopy  string `json:"subCopy"`
	CTAText  string `json:"ctaText"`
	BGColor  string `json:"bgColor"`
}

// BlogPost is the canonical written output of a generation.
type BlogPost struct {
	Title           string        `json:"title"`
	Lead            string        `json:"lead"`
	Body            string        `json:"body"`
	TableOfContents []string      `json:"tableOfContents,omitempty"`
	SEOAnalysis     string        `json:"seoAnalysis,omitempty"`
	BannerConfig    *BannerConfig `json:"bannerConfig,omitempty"`
}

// StructureItem is one planned stage of the piece.
type StructureItem struct {
	Stage          string   `json:"stage"`
	Intent         string   `json:"intent"`
	ContentSummary string   `json:"contentSummary"`
	KeywordsUsed   []string `json:"keywordsUsed,omitempty"`
}

// ShortsScene is a single scene of a shorts script.
type ShortsScene struct {
	Time   string `json:"time"`
	Visual string `json:"visual"`
	Audio  string `json:"audio"`
}

// ShortsScript is the optional short-form video companion script.
type ShortsScript struct {
	Title  string        `json:"title"`
	Scenes []ShortsScene `json:"scenes"`
}

// ImagePrompt is a work order for one illustration.
type ImagePrompt struct {
	ParagraphIndex int    `json:"paragraphIndex"`
	ConceptName    string `json:"conceptName"`
	KoreanPrompt   string `json:"koreanPrompt"`
	EnglishPrompt  string `json:"englishPrompt"`
	ReferenceURL   string `json:"referenceUrl,omitempty"`
}

// SEOMeta carries the metadata block for the piece.
type SEOMeta struct {
	MetaTitle       string         `json:"metaTitle"`
	MetaDescription string         `json:"metaDescription"`
	OGTitle         string         `json:"ogTitle,omitempty"`
	OGDescription   string         `json:"ogDescription,omitempty"`
	Slug            string         `json:"slug,omitempty"`
	MainKeywords    []string       `json:"mainKeywords,omitempty"`
	SubKeywords     []string       `json:"subKeywords,omitempty"`
	Hashtags        []string       `json:"hashtags,omitempty"`
	StructuredData  map[string]any `json:"structuredData,omitempty"`
}

// FactCheckItem records one claim the generator verified against live
// search results.
type FactCheckItem struct {
	Item   string `json:"item"`
	Result string `json:"result"`
	Source string `json:"source"`
	Status string `json:"status"` // Verified | Corrected | Uncertain
}

// ContentPackage is the unit of history: everything one generation run
// produced. It is immutable except for BlogPost.Body, which may be replaced
// wholesale by a user edit. Sub-structures beyond the config and blog post
// are optional because the generator's output shape is not guaranteed;
// absence means "not provided", never an error.
type ContentPackage struct {
	Config         ContentConfig   `json:"config"`
	Structure      []StructureItem `json:"structure,omitempty"`
	BlogPost       BlogPost        `json:"blogPost"`
	ShortsScript   *ShortsScript   `json:"shortsScript,omitempty"`
	ImagePrompts   []ImagePrompt   `json:"imagePrompts,omitempty"`
	SEOMeta        SEOMeta         `json:"seoMeta"`
	FactCheck      []FactCheckItem `json:"factCheck,omitempty"`
	GroundingLinks []GroundingLink `json:"groundingLinks,omitempty"`
}
