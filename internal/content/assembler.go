package content

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/minsu-oh/hallabong/internal/ai"
	"github.com/minsu-oh/hallabong/internal/extract"
	"github.com/minsu-oh/hallabong/internal/markup"
	"github.com/minsu-oh/hallabong/internal/models"
)

// fallbackTrendKeywords is served when the trend-keywords operation fails;
// topic research should stay usable even if that one call misbehaves.
var fallbackTrendKeywords = []string{
	"사업자 범용인증서",
	"전자세금계산서 발행",
	"홈택스 로그인",
	"나라장터 입찰",
	"법인인감증명서",
}

// Assembler orchestrates generation requests against the external
// generator. Each operation makes exactly one outbound call; retries are a
// caller concern, and the assembler never mutates history.
type Assembler struct {
	gen       ai.Generator
	webSearch bool
}

// NewAssembler creates an Assembler on top of the given generator.
// webSearch controls whether operations that benefit from live retrieval
// request it.
func NewAssembler(gen ai.Generator, webSearch bool) *Assembler {
	return &Assembler{gen: gen, webSearch: webSearch}
}

// GeneratePackage runs one content generation: build the prompt, call the
// generator once, extract the structured payload, and return the typed
// package. The resolved config is authoritative and replaces whatever
// config echo the generator produced; the body is normalized before the
// package is returned so every rendering and export path sees clean markup.
// Fields absent from the generator output stay absent.
func (a *Assembler) GeneratePackage(ctx context.Context, cfg models.ContentConfig) (*models.ContentPackage, error) {
	resp, err := a.gen.Generate(ctx, ai.Request{
		Kind:         ai.KindContentGeneration,
		Instructions: ai.GeneratePackagePrompt(cfg),
		WebSearch:    a.webSearch,
	})
	if err != nil {
		return nil, &GenerationFailure{Err: err}
	}

	var pkg models.ContentPackage
	if err := extract.Unmarshal(resp.Text, &pkg); err != nil {
		return nil, err
	}

	pkg.Config = cfg
	pkg.BlogPost.Body = markup.Normalize(pkg.BlogPost.Body)
	pkg.GroundingLinks = filterCitations(resp.Citations)

	return &pkg, nil
}

// RecommendTopics asks the generator for topic suggestions seeded by a
// keyword. excludeTopics lists titles already shown to the operator so the
// generator avoids repeating them. Recommendations always request live
// retrieval; stale topic research is worthless.
func (a *Assembler) RecommendTopics(ctx context.Context, keyword string, source models.SearchSource, excludeTopics []string) (*models.TopicResponse, error) {
	resp, err := a.gen.Generate(ctx, ai.Request{
		Kind:         ai.KindTopicRecommendation,
		Instructions: ai.RecommendTopicsPrompt(keyword, source, excludeTopics),
		WebSearch:    true,
	})
	if err != nil {
		return nil, &GenerationFailure{Err: err}
	}

	var topics models.TopicResponse
	if err := extract.Unmarshal(resp.Text, &topics); err != nil {
		return nil, err
	}

	topics.GroundingLinks = filterCitations(resp.Citations)
	return &topics, nil
}

// TrendingKeywords fetches the current hot keywords. Unlike the other
// operations this one degrades instead of failing: a generator error or a
// malformed payload yields the fixed fallback list, because trend chips are
// decoration around the research form rather than the requested action.
func (a *Assembler) TrendingKeywords(ctx context.Context) []string {
	resp, err := a.gen.Generate(ctx, ai.Request{
		Kind:         ai.KindTrendKeywords,
		Instructions: ai.TrendingKeywordsPrompt(),
		WebSearch:    true,
	})
	if err != nil {
		slog.Warn("trending keywords fetch failed, using fallback", "error", err)
		return fallbackTrendKeywords
	}

	var keywords []string
	if err := extract.Unmarshal(resp.Text, &keywords); err != nil {
		slog.Warn("trending keywords response malformed, using fallback", "error", err)
		return fallbackTrendKeywords
	}
	if len(keywords) == 0 {
		return fallbackTrendKeywords
	}
	return keywords
}

// AnalyzeSEO asks the generator to diagnose an existing draft against a
// target keyword.
func (a *Assembler) AnalyzeSEO(ctx context.Context, keyword, title, body string) (*models.SEOAnalysisResult, error) {
	resp, err := a.gen.Generate(ctx, ai.Request{
		Kind:         ai.KindSEOAnalysis,
		Instructions: ai.AnalyzeSEOPrompt(keyword, title, body),
		WebSearch:    true,
	})
	if err != nil {
		return nil, &GenerationFailure{Err: err}
	}

	var result models.SEOAnalysisResult
	if err := extract.Unmarshal(resp.Text, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResearchResult bundles the two halves of a topic research run.
type ResearchResult struct {
	TrendingKeywords []string              `json:"trendingKeywords"`
	Topics           *models.TopicResponse `json:"topics"`
}

// Research runs trend-keyword lookup and topic recommendation concurrently.
// The recommendation result decides success; trending keywords degrade to
// the fallback list on their own.
func (a *Assembler) Research(ctx context.Context, keyword string, source models.SearchSource, excludeTopics []string) (*ResearchResult, error) {
	var result ResearchResult

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.TrendingKeywords = a.TrendingKeywords(ctx)
		return nil
	})
	g.Go(func() error {
		topics, err := a.RecommendTopics(ctx, keyword, source, excludeTopics)
		if err != nil {
			return err
		}
		result.Topics = topics
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

// filterCitations keeps only citations that carry both a title and a URL;
// partial entries are useless as grounding links and are discarded.
func filterCitations(citations []ai.Citation) []models.GroundingLink {
	var links []models.GroundingLink
	for _, c := range citations {
		if c.Title == "" || c.URL == "" {
			continue
		}
		links = append(links, models.GroundingLink{Title: c.Title, URL: c.URL})
	}
	return links
}
