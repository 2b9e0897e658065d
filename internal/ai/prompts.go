package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minsu-oh/hallabong/internal/models"
)

// SystemInstruction is the standing role prompt applied to every generator
// call. It enforces the markdown rules the markup normalizer relies on
// (no whitespace inside bold markers, H2/H3 hierarchy) and the 80/20
// information-to-promotion ratio.
const SystemInstruction = `당신은 수석 마케팅 기획자이자 SEO 컨텐츠 전문가입니다.

[목표]
사용자에게 실질적인 도움이 되는 정보성 컨텐츠를 제공하여 신뢰를 얻은 후,
자연스럽게 서비스로 연결하는 것입니다.

[컨텐츠 비율 및 구조 원칙]
1. 정보 제공 80% : 홍보 20% 비율을 엄격히 준수하십시오.
2. 서론(Lead) 및 본문 초반부에는 상품을 직접적으로 홍보하지 마십시오.
3. H2/H3 제목, 불릿 포인트, 표(Table)를 적극 활용하여 가독성을 극대화하십시오.

[마크다운 작성 절대 규칙]
1. Bold 공백 금지: ** 텍스트 ** (X) -> **텍스트** (O). 별표 안쪽에 공백을 넣지 마십시오.
2. # (H1)은 제목에만 사용하고, 본문은 ## (H2), ### (H3)를 사용하십시오.`

const maxAnalysisContent = 3000

// TrendingKeywordsPrompt builds the instruction for the trend-keywords
// operation. The expected output is a bare JSON string array.
func TrendingKeywordsPrompt() string {
	return `현재 시점 한국의 '사업자 인증서', '전자입찰', '법인설립', '전자세금계산서',
'연말정산', '4대보험' 등과 관련된 실시간 검색어 또는 마케팅적으로 주목해야 할
핫한 키워드 10개를 추천해주세요.

[출력 형식]
JSON 배열 문자열로만 출력하세요. 예: ["사업자 범용 공동인증서", "나라장터 입찰"]`
}

// RecommendTopicsPrompt builds the instruction for the topic-recommendation
// operation. excludeKeywords lists topics already shown that should not be
// repeated.
func RecommendTopicsPrompt(keyword string, source models.SearchSource, excludeKeywords []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "키워드: '%s'\n", keyword)
	if len(excludeKeywords) > 0 {
		fmt.Fprintf(&b, "제외할 키워드/주제: %s (이 내용과 중복되지 않는 새로운 주제를 찾아주세요)\n",
			strings.Join(excludeKeywords, ", "))
	}

	b.WriteString(`
위 키워드와 관련하여, 현재 시점에서 컨텐츠로 다루기에 가장 적합한 주제 10가지를
추천해주세요. 반드시 검색 도구를 사용하여 최신 정보를 확인하십시오.

[필수: 팩트 검증]
- 세금, 법령, 지원금 정책과 관련된 금액과 날짜는 검색 결과와 정확히 일치해야 합니다.
- 검색 결과에 없는 미래 예측은 절대 포함하지 마십시오.

[분석 기준]
1. 포털(PORTAL): 검색 상위 노출 경쟁력이 있는 주제 - 70% 비중
2. AI: 생성형 AI가 답변하기 좋아하는 질문 패턴 - 30% 비중
3. 트렌드: 최근 1개월 내 문서 발행량이 급증한 이슈
`)

	if source != models.SourceAll && source != "" {
		fmt.Fprintf(&b, "\n소스 필터: %s 유형의 주제만 추천하십시오.\n", source)
	}

	b.WriteString(`
[출력 요구사항]
반드시 아래 JSON 객체 포맷을 준수하세요.

{
  "summary": "한국어 요약 (팩트 위주)",
  "insightSources": ["국세청", "00신문"],
  "items": [
    {
      "id": "unique_id_1",
      "title": "주제 제목",
      "sourceType": "PORTAL",
      "rank": 1,
      "reason": "추천 근거 (한국어)",
      "keywords": ["키워드1", "키워드2"],
      "expectedTraffic": "High",
      "contentTypeBadge": "Information"
    }
  ]
}`)

	return b.String()
}

// AnalyzeSEOPrompt builds the instruction for the seo-analysis operation.
// Content is truncated to keep the request within sensible bounds.
func AnalyzeSEOPrompt(keyword, title, content string) string {
	if title == "" {
		title = "제목 없음"
	}
	runes := []rune(content)
	if len(runes) > maxAnalysisContent {
		content = string(runes[:maxAnalysisContent]) + "... (생략)"
	}

	var b strings.Builder
	b.WriteString("[SEO 정밀 진단]\n")
	fmt.Fprintf(&b, "타겟 키워드: %s\n", keyword)
	fmt.Fprintf(&b, "제목: %s\n", title)
	b.WriteString("본문 내용:\n")
	b.WriteString(content)
	b.WriteString(`

위 컨텐츠를 검색 엔진 가이드라인에 맞춰 분석해주세요.
경쟁 문서들을 검색하여 비교 분석하십시오.

[출력 요구사항]
JSON 형식으로 출력하세요.
{
  "score": 0,
  "intentAnalysis": {
    "actualType": "Know",
    "targetType": "Know",
    "gapAnalysis": "의도 분석 내용",
    "fit": "Good",
    "reason": "이유"
  },
  "competitorAnalysis": [
    { "name": "경쟁 문서 제목", "insight": "벤치마킹 포인트" }
  ],
  "keywordDensity": "분석 내용",
  "readability": "가독성 분석",
  "improvements": ["개선점1", "개선점2"],
  "recommendedHeadlines": [{ "type": "H1", "text": "추천 제목" }],
  "technicalSeo": {
    "recommendedImageCount": 5,
    "imageStrategy": [
      { "position": "서론", "content": "이미지 설명", "alt": "SEO Alt 태그", "prompt": "이미지 생성 프롬프트" }
    ],
    "metaTitle": "메타 타이틀",
    "metaDescription": "메타 디스크립션",
    "hashtags": ["#태그1"],
    "slug": "url-slug-suggestion",
    "jsonLd": {}
  }
}`)

	return b.String()
}

// GeneratePackagePrompt builds the instruction for the content-generation
// operation. The resolved config is embedded verbatim so the generator
// echoes it back inside the package payload.
func GeneratePackagePrompt(cfg models.ContentConfig) string {
	configJSON, _ := json.Marshal(cfg)

	var b strings.Builder
	b.WriteString("[블로그 컨텐츠 생성 요청]\n\n")
	fmt.Fprintf(&b, "1. 주제: %s\n", cfg.Topic)
	fmt.Fprintf(&b, "2. 핵심 키워드: %s\n", strings.Join(cfg.Keywords, ", "))
	fmt.Fprintf(&b, "3. 타겟 독자: %s\n", cfg.TargetPersona)
	fmt.Fprintf(&b, "4. 형식: %s (%s)\n", cfg.ContentType, cfg.Platform)
	fmt.Fprintf(&b, "5. 어조: %s\n", cfg.Tone)
	fmt.Fprintf(&b, "6. 단락 수: %d개\n", cfg.ParagraphCount)
	fmt.Fprintf(&b, "7. 디자인 컨셉: %s\n", cfg.DesignConcept)
	fmt.Fprintf(&b, "8. 포함할 요소: %s\n", joinAddons(cfg.Addons))

	b.WriteString(`
[지시사항]
- 반드시 검색 도구를 사용하여 최신 법령, 세율, 정책, 날짜 정보를 확인하고 'factCheck' 항목에 기록하십시오.
- 마크다운 작성 시 **Bold** 안에 절대 공백을 넣지 마십시오.
- 정보 80%, 홍보 20% 비율을 지키십시오. 서론에서는 상품 홍보 금지.
- 표(Table)를 최소 1개 이상 포함하여 정보를 구조화하십시오.
- 가장 하단에 배치할 배너(Banner)의 카피라이팅과 컬러 코드를 제안하십시오.

[출력 형식]
JSON으로 출력하십시오.
{
`)
	fmt.Fprintf(&b, "  \"config\": %s,\n", configJSON)
	b.WriteString(`  "structure": [{ "stage": "서론", "intent": "흥미유발", "contentSummary": "...", "keywordsUsed": [] }],
  "blogPost": {
    "title": "SEO 최적화된 매력적인 제목",
    "lead": "독자의 흥미를 끄는 서론 (300자 내외)",
    "body": "전체 본문 (마크다운 포맷, H2/H3 사용, 표 포함)",
    "tableOfContents": ["목차1", "목차2"],
    "seoAnalysis": "SEO 적용 포인트 요약",
    "bannerConfig": {
      "mainCopy": "배너 메인 카피",
      "subCopy": "서브 카피",
      "ctaText": "버튼 텍스트",
      "bgColor": "#HexCode"
    }
  },
  "shortsScript": {
    "title": "숏츠 제목",
    "scenes": [{ "time": "0-5s", "visual": "화면 설명", "audio": "대사" }]
  },
`)
	fmt.Fprintf(&b, "  \"imagePrompts\": [\n    { \"paragraphIndex\": 0, \"conceptName\": \"%s\", \"koreanPrompt\": \"한글 프롬프트\", \"englishPrompt\": \"English Prompt\" }\n  ],\n", cfg.DesignConcept)
	b.WriteString(`  "seoMeta": {
    "metaTitle": "메타 타이틀",
    "metaDescription": "메타 설명",
    "mainKeywords": ["키워드"],
    "subKeywords": ["서브키워드"],
    "hashtags": ["#태그"],
    "structuredData": {}
  },
  "factCheck": [
    { "item": "검증 항목", "result": "검증 결과 (연도/금액)", "source": "출처", "status": "Verified" }
  ]
}`)

	return b.String()
}

// joinAddons renders the addon list for the prompt, preserving the order
// the user picked them in.
func joinAddons(addons []models.Addon) string {
	if len(addons) == 0 {
		return "없음"
	}
	parts := make([]string, len(addons))
	for i, a := range addons {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}
