package content

import (
	"context"
	"errors"
	"testing"

	"github.com/minsu-oh/hallabong/internal/ai"
	"github.com/minsu-oh/hallabong/internal/extract"
	"github.com/minsu-oh/hallabong/internal/models"
)

func testConfig() models.ContentConfig {
	cfg, err := ResolveConfig(Input{
		Topic:    "사업자 인증서 발급",
		Platform: models.PlatformNaverCardNews,
		Tone:     models.TonePolite,
	}, models.ModeLite)
	if err != nil {
		panic(err)
	}
	return cfg
}

const packageResponse = `생성 결과입니다.
` + "```json" + `
{
  "blogPost": {
    "title": "사업자 인증서, 오늘 바로 발급받는 방법",
    "lead": "복잡해 보이는 발급 절차를 6단계로 정리했습니다.",
    "body": "## 발급 준비물\n\n** 사업자등록증 ** 사본이 필요합니다.",
    "tableOfContents": ["발급 준비물", "신청 절차"],
    "seoAnalysis": "키워드 밀도 최적화 완료"
  },
  "imagePrompts": [
    { "paragraphIndex": 0, "conceptName": "TypoCard", "koreanPrompt": "인증서 아이콘", "englishPrompt": "certificate icon" }
  ],
  "seoMeta": {
    "metaTitle": "사업자 인증서 발급 가이드",
    "metaDescription": "당일 발급 방법 총정리",
    "mainKeywords": ["사업자 인증서"],
    "subKeywords": ["당일발급"],
    "hashtags": ["#인증서"]
  }
}
` + "```"

func TestGeneratePackage(t *testing.T) {
	t.Run("assembles typed package", func(t *testing.T) {
		mock := &ai.MockGenerator{
			Response: &ai.Response{
				Text: packageResponse,
				Citations: []ai.Citation{
					{Title: "국세청 공지", URL: "https://nts.go.kr/notice"},
					{Title: "", URL: "https://no-title.example"},
					{Title: "제목만 있는 출처", URL: ""},
				},
			},
		}
		assembler := NewAssembler(mock, true)
		cfg := testConfig()

		pkg, err := assembler.GeneratePackage(context.Background(), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if pkg.BlogPost.Title != "사업자 인증서, 오늘 바로 발급받는 방법" {
			t.Errorf("got title %q", pkg.BlogPost.Title)
		}
		// The resolved config is authoritative over any generator echo.
		if pkg.Config.Platform != models.PlatformNaverCardNews {
			t.Errorf("got config platform %s", pkg.Config.Platform)
		}
		// The body is normalized on assembly.
		if want := "## 발급 준비물\n\n**사업자등록증** 사본이 필요합니다."; pkg.BlogPost.Body != want {
			t.Errorf("body not normalized:\ngot  %q\nwant %q", pkg.BlogPost.Body, want)
		}
		// Citations missing a title or URL are discarded.
		if len(pkg.GroundingLinks) != 1 {
			t.Fatalf("got %d grounding links, want 1", len(pkg.GroundingLinks))
		}
		if pkg.GroundingLinks[0].URL != "https://nts.go.kr/notice" {
			t.Errorf("got grounding link %+v", pkg.GroundingLinks[0])
		}
		// Absent optional sections stay absent.
		if pkg.ShortsScript != nil {
			t.Error("shorts script should be absent")
		}
		if pkg.FactCheck != nil {
			t.Error("fact check should be absent")
		}
	})

	t.Run("single outbound call per invocation", func(t *testing.T) {
		mock := &ai.MockGenerator{Response: &ai.Response{Text: packageResponse}}
		assembler := NewAssembler(mock, false)

		if _, err := assembler.GeneratePackage(context.Background(), testConfig()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mock.Requests) != 1 {
			t.Errorf("got %d generator calls, want 1", len(mock.Requests))
		}
		if mock.Requests[0].Kind != ai.KindContentGeneration {
			t.Errorf("got request kind %s", mock.Requests[0].Kind)
		}
	})

	t.Run("generator error becomes GenerationFailure without retry", func(t *testing.T) {
		mock := &ai.MockGenerator{Err: errors.New("connection refused")}
		assembler := NewAssembler(mock, true)

		_, err := assembler.GeneratePackage(context.Background(), testConfig())

		var failure *GenerationFailure
		if !errors.As(err, &failure) {
			t.Fatalf("expected GenerationFailure, got %v", err)
		}
		if len(mock.Requests) != 1 {
			t.Errorf("got %d generator calls, want 1 (no retry)", len(mock.Requests))
		}
	})

	t.Run("unparseable response becomes MalformedResponseError", func(t *testing.T) {
		mock := &ai.MockGenerator{Response: &ai.Response{Text: "죄송합니다, JSON을 만들 수 없었습니다."}}
		assembler := NewAssembler(mock, true)

		_, err := assembler.GeneratePackage(context.Background(), testConfig())

		var malformed *extract.MalformedResponseError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedResponseError, got %v", err)
		}
		if malformed.Raw == "" {
			t.Error("raw text should be retained for diagnostics")
		}
	})
}

func TestRecommendTopics(t *testing.T) {
	response := `{
		"summary": "연말정산 관련 주제가 급상승 중입니다.",
		"insightSources": ["국세청"],
		"items": [
			{"id": "t1", "title": "연말정산 미리보기 활용법", "sourceType": "PORTAL", "rank": 1,
			 "reason": "검색량 급증", "keywords": ["연말정산"], "expectedTraffic": "High",
			 "contentTypeBadge": "Guide"}
		]
	}`

	mock := &ai.MockGenerator{
		Response: &ai.Response{
			Text:      response,
			Citations: []ai.Citation{{Title: "국세청", URL: "https://nts.go.kr"}},
		},
	}
	assembler := NewAssembler(mock, false)

	topics, err := assembler.RecommendTopics(context.Background(), "연말정산", models.SourcePortal, []string{"이전 주제"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(topics.Items) != 1 || topics.Items[0].Rank != 1 {
		t.Errorf("got items %+v", topics.Items)
	}
	if len(topics.GroundingLinks) != 1 {
		t.Errorf("got %d grounding links, want 1", len(topics.GroundingLinks))
	}
	if mock.Requests[0].Kind != ai.KindTopicRecommendation {
		t.Errorf("got request kind %s", mock.Requests[0].Kind)
	}
	if !mock.Requests[0].WebSearch {
		t.Error("topic recommendation should request web search")
	}
}

func TestTrendingKeywords(t *testing.T) {
	t.Run("parses keyword array", func(t *testing.T) {
		mock := &ai.MockGenerator{Response: &ai.Response{Text: `["키워드1", "키워드2"]`}}
		assembler := NewAssembler(mock, false)

		got := assembler.TrendingKeywords(context.Background())
		if len(got) != 2 || got[0] != "키워드1" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("falls back on generator error", func(t *testing.T) {
		mock := &ai.MockGenerator{Err: errors.New("service unavailable")}
		assembler := NewAssembler(mock, false)

		got := assembler.TrendingKeywords(context.Background())
		if len(got) == 0 {
			t.Error("fallback list should be non-empty")
		}
	})

	t.Run("falls back on malformed payload", func(t *testing.T) {
		mock := &ai.MockGenerator{Response: &ai.Response{Text: "키워드를 찾을 수 없습니다."}}
		assembler := NewAssembler(mock, false)

		got := assembler.TrendingKeywords(context.Background())
		if len(got) == 0 {
			t.Error("fallback list should be non-empty")
		}
	})
}

func TestAnalyzeSEO(t *testing.T) {
	response := `{
		"score": 85,
		"intentAnalysis": {"actualType": "Know", "targetType": "Know", "gapAnalysis": "일치", "fit": "Good", "reason": "정보성 문서"},
		"keywordDensity": "적정",
		"readability": "양호",
		"improvements": ["표 추가"]
	}`

	mock := &ai.MockGenerator{Response: &ai.Response{Text: response}}
	assembler := NewAssembler(mock, false)

	result, err := assembler.AnalyzeSEO(context.Background(), "사업자 인증서", "제목", "본문")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 85 {
		t.Errorf("got score %d, want 85", result.Score)
	}
	if result.IntentAnalysis.Fit != "Good" {
		t.Errorf("got fit %q", result.IntentAnalysis.Fit)
	}
}

func TestResearch(t *testing.T) {
	t.Run("recommendation failure fails the run", func(t *testing.T) {
		mock := &ai.MockGenerator{Err: errors.New("down")}
		assembler := NewAssembler(mock, false)

		_, err := assembler.Research(context.Background(), "키워드", models.SourceAll, nil)
		if err == nil {
			t.Fatal("expected error when recommendation fails")
		}
	})
}
