package models

// IntentAnalysis compares the search intent a piece actually serves against
// the intent it targets.
type IntentAnalysis struct {
	ActualType  string `json:"actualType"` // Know | Do | Go | Mixed
	TargetType  string `json:"targetType"` // Know | Do | Commercial | Go
	GapAnalysis string `json:"gapAnalysis"`
	Fit         string `json:"fit"` // Excellent | Good | Fair | Poor
	Reason      string `json:"reason"`
}

// CompetitorInsight is one benchmarked competing document.
type CompetitorInsight struct {
	Name    string `json:"name"`
	Insight string `json:"insight"`
}

// Headline is a recommended title variant.
type Headline struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ImageStrategyItem is a placement recommendation within the technical SEO
// report.
type ImageStrategyItem struct {
	Position string `json:"position"`
	Content  string `json:"content"`
	Alt      string `json:"alt"`
	Prompt   string `json:"prompt"`
}

// TechnicalSEO is the machine-actionable half of an SEO analysis.
type TechnicalSEO struct {
	RecommendedImageCount int                 `json:"recommendedImageCount"`
	ImageStrategy         []ImageStrategyItem `json:"imageStrategy,omitempty"`
	MetaTitle             string              `json:"metaTitle"`
	MetaDescription       string              `json:"metaDescription"`
	Hashtags              []string            `json:"hashtags,omitempty"`
	JSONLD                map[string]any      `json:"jsonLd,omitempty"`
	Slug                  string              `json:"slug,omitempty"`
}

// SEOAnalysisResult is the generator's diagnosis of an existing draft
// against a target keyword. Scoring is delegated entirely to the generator;
// this type only carries its verdict.
type SEOAnalysisResult struct {
	Score                int                 `json:"score"`
	IntentAnalysis       IntentAnalysis      `json:"intentAnalysis"`
	CompetitorAnalysis   []CompetitorInsight `json:"competitorAnalysis,omitempty"`
	KeywordDensity       string              `json:"keywordDensity"`
	Readability          string              `json:"readability"`
	Improvements         []string            `json:"improvements,omitempty"`
	RecommendedHeadlines []Headline          `json:"recommendedHeadlines,omitempty"`
	TechnicalSEO         *TechnicalSEO       `json:"technicalSeo,omitempty"`
}
