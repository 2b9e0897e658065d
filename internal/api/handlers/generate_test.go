package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minsu-oh/hallabong/internal/ai"
	"github.com/minsu-oh/hallabong/internal/studio"
)

func TestGenerate_LiteMode(t *testing.T) {
	mock := &ai.MockGenerator{Response: &ai.Response{Text: packageJSON}}
	session := studio.NewSession()
	store := newTestArchive(t)

	body := `{"mode": "Lite", "topic": "사업자 인증서 발급", "platform": "NaverCardNews", "tone": "Polite"}`
	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	Generate(session, newTestAssembler(mock), store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.Package == nil {
		t.Fatal("response has no package")
	}
	// Lite mode fills the brief from the platform defaults.
	if resp.Package.Config.ParagraphCount != 6 {
		t.Errorf("got paragraphCount %d, want 6", resp.Package.Config.ParagraphCount)
	}
	if string(resp.Package.Config.DesignConcept) != "TypoCard" {
		t.Errorf("got designConcept %s", resp.Package.Config.DesignConcept)
	}
	if resp.State.Surface != studio.Viewing {
		t.Errorf("got surface %s, want %s", resp.State.Surface, studio.Viewing)
	}
	if resp.State.HistoryLength != 1 {
		t.Errorf("got history length %d, want 1", resp.State.HistoryLength)
	}

	// The finished package lands in the durable archive too.
	entries, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("listing archive: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d archive entries, want 1", len(entries))
	}
	if entries[0].Title != "테스트 제목" {
		t.Errorf("got archived title %q", entries[0].Title)
	}
}

func TestGenerate_EmptyTopic(t *testing.T) {
	mock := &ai.MockGenerator{Response: &ai.Response{Text: packageJSON}}
	session := studio.NewSession()

	body := `{"mode": "Lite", "topic": "   ", "platform": "NaverCardNews", "tone": "Polite"}`
	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	Generate(session, newTestAssembler(mock), nil).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
	if len(mock.Requests) != 0 {
		t.Errorf("validation failure still called the generator %d times", len(mock.Requests))
	}
	if got := session.State().HistoryLength; got != 0 {
		t.Errorf("validation failure changed history: length %d", got)
	}
}

func TestGenerate_ConflictsOutsideCreationForm(t *testing.T) {
	mock := &ai.MockGenerator{Response: &ai.Response{Text: packageJSON}}
	session := viewingSession(t, mock)
	callsAfterSetup := len(mock.Requests)

	body := `{"mode": "Lite", "topic": "새 주제", "platform": "NaverCardNews", "tone": "Polite"}`
	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	Generate(session, newTestAssembler(mock), nil).ServeHTTP(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("got status %d, want %d; body: %s", w.Code, http.StatusConflict, w.Body.String())
	}
	if len(mock.Requests) != callsAfterSetup {
		t.Errorf("generator was called while a result was being viewed")
	}
	st := session.State()
	if st.Surface != studio.Viewing {
		t.Errorf("got surface %s, want %s", st.Surface, studio.Viewing)
	}
	if st.HistoryLength != 1 {
		t.Errorf("rejected request changed history: length %d", st.HistoryLength)
	}
}

func TestGenerate_GeneratorError(t *testing.T) {
	mock := &ai.MockGenerator{Err: errors.New("connection refused")}
	session := studio.NewSession()

	body := `{"mode": "Lite", "topic": "사업자 인증서 발급", "platform": "NaverCardNews", "tone": "Polite"}`
	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	Generate(session, newTestAssembler(mock), nil).ServeHTTP(w, r)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadGateway)
	}

	// After a failure the form stays active and history is unchanged.
	st := session.State()
	if st.Surface != studio.Creating {
		t.Errorf("got surface %s, want %s", st.Surface, studio.Creating)
	}
	if st.HistoryLength != 0 {
		t.Errorf("failure appended to history: length %d", st.HistoryLength)
	}
	if st.Generating {
		t.Error("session still marked generating")
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := &ai.MockGenerator{Response: &ai.Response{Text: "JSON이 없는 답변입니다."}}
	session := studio.NewSession()

	body := `{"mode": "Lite", "topic": "사업자 인증서 발급", "platform": "NaverCardNews", "tone": "Polite"}`
	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	Generate(session, newTestAssembler(mock), nil).ServeHTTP(w, r)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadGateway)
	}
	if got := session.State().HistoryLength; got != 0 {
		t.Errorf("malformed response appended to history: length %d", got)
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	session := studio.NewSession()
	mock := &ai.MockGenerator{Response: &ai.Response{Text: packageJSON}}

	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString("not json"))
	w := httptest.NewRecorder()

	Generate(session, newTestAssembler(mock), nil).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGenerate_NoAssembler(t *testing.T) {
	session := studio.NewSession()

	body := `{"mode": "Lite", "topic": "주제", "platform": "NaverCardNews", "tone": "Polite"}`
	r := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	Generate(session, nil, nil).ServeHTTP(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
