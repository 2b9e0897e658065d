package handlers

import (
	"context"
	"testing"

	"github.com/minsu-oh/hallabong/internal/ai"
	"github.com/minsu-oh/hallabong/internal/archive"
	"github.com/minsu-oh/hallabong/internal/content"
	"github.com/minsu-oh/hallabong/internal/studio"
)

// packageJSON is a minimal well-formed generator response for handler tests.
const packageJSON = "```json" + `
{
  "blogPost": {
    "title": "테스트 제목",
    "lead": "테스트 도입부",
    "body": "## 본문\n\n내용입니다."
  },
  "seoMeta": {
    "metaTitle": "테스트 제목",
    "metaDescription": "설명"
  }
}
` + "```"

// newTestAssembler builds an assembler over a mock generator so handler
// tests never make outbound calls.
func newTestAssembler(mock *ai.MockGenerator) *content.Assembler {
	return content.NewAssembler(mock, false)
}

// newTestArchive creates an in-memory archive store with migrations applied.
// The store is automatically closed when the test completes.
func newTestArchive(t *testing.T) *archive.Store {
	t.Helper()

	db, err := archive.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := archive.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return archive.NewStore(db)
}

// viewingSession returns a session with one freshly generated package being
// viewed, mirroring the state right after a successful generation.
func viewingSession(t *testing.T, mock *ai.MockGenerator) *studio.Session {
	t.Helper()

	session := studio.NewSession()
	token, err := session.BeginGeneration()
	if err != nil {
		t.Fatalf("BeginGeneration: %v", err)
	}

	assembler := newTestAssembler(mock)
	cfg, err := content.ResolveConfig(content.Input{
		Topic:    "사업자 인증서 발급",
		Platform: "NaverCardNews",
		Tone:     "Polite",
	}, "Lite")
	if err != nil {
		t.Fatalf("ResolveConfig: %v", err)
	}
	pkg, err := assembler.GeneratePackage(context.Background(), cfg)
	if err != nil {
		t.Fatalf("GeneratePackage: %v", err)
	}
	if !session.CompleteGeneration(token, pkg) {
		t.Fatal("generation result was discarded")
	}
	return session
}
