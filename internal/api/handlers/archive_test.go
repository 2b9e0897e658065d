package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/minsu-oh/hallabong/internal/models"
)

func TestListArchive(t *testing.T) {
	store := newTestArchive(t)

	pkg := &models.ContentPackage{
		Config:   models.ContentConfig{Topic: "주제", Platform: models.PlatformTistory},
		BlogPost: models.BlogPost{Title: "보관된 글", Body: "본문"},
	}
	if _, err := store.Save(context.Background(), pkg); err != nil {
		t.Fatalf("saving package: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/archive", nil)
	w := httptest.NewRecorder()
	ListArchive(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d; body: %s", w.Code, w.Body.String())
	}
	var entries []struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "보관된 글" {
		t.Errorf("got entries %+v", entries)
	}
}

func TestListArchive_Disabled(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/archive", nil)
	w := httptest.NewRecorder()
	ListArchive(nil).ServeHTTP(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestGetArchived_NotFound(t *testing.T) {
	store := newTestArchive(t)

	r := httptest.NewRequest(http.MethodGet, "/api/archive/42", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "42")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	GetArchived(store).ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteArchived(t *testing.T) {
	store := newTestArchive(t)

	pkg := &models.ContentPackage{
		Config:   models.ContentConfig{Topic: "주제", Platform: models.PlatformShorts},
		BlogPost: models.BlogPost{Title: "지울 글", Body: "본문"},
	}
	id, err := store.Save(context.Background(), pkg)
	if err != nil {
		t.Fatalf("saving package: %v", err)
	}

	r := httptest.NewRequest(http.MethodDelete, "/api/archive/1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	DeleteArchived(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d; body: %s", w.Code, w.Body.String())
	}

	if _, err := store.Get(context.Background(), id); err == nil {
		t.Error("archived package still present after delete")
	}
}
