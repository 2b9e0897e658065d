package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/minsu-oh/hallabong/internal/export"
	"github.com/minsu-oh/hallabong/internal/studio"
)

// sessionError maps state machine errors to HTTP status codes. Transition
// violations are conflicts with the session's current surface, not bad
// requests.
func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, studio.ErrNoSuchEntry):
		writeError(w, http.StatusNotFound, "No such history entry")
	case errors.Is(err, studio.ErrEditing):
		writeError(w, http.StatusConflict, "Finish or cancel the edit first")
	case errors.Is(err, studio.ErrNotViewing),
		errors.Is(err, studio.ErrNotBrowsing),
		errors.Is(err, studio.ErrNotEditing),
		errors.Is(err, studio.ErrNotCreating),
		errors.Is(err, studio.ErrGenerationInFlight):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("session operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Session operation failed")
	}
}

// GetSession handles GET /api/session.
func GetSession(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.State())
	}
}

// GetHistory handles GET /api/history. Entries are most recent first.
func GetHistory(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, session.History())
	}
}

// OpenHistoryEntry handles POST /api/history/{index}/open.
func OpenHistoryEntry(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := parseID(r, "index")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := session.OpenFromHistory(int(index)); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session.State())
	}
}

// StartNew handles POST /api/session/new.
func StartNew(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.StartNew()
		writeJSON(w, http.StatusOK, session.State())
	}
}

// OpenHistory handles POST /api/session/history.
func OpenHistory(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.OpenHistory()
		writeJSON(w, http.StatusOK, session.State())
	}
}

// Back handles POST /api/session/back. A package loaded from history
// returns to the list; a fresh generation returns to the creation form.
func Back(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := session.Back(); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session.State())
	}
}

// DeleteViewed handles DELETE /api/session/view. The viewed package is
// removed from history by identity.
func DeleteViewed(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := session.Delete(); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session.State())
	}
}

// StartEdit handles POST /api/session/edit.
func StartEdit(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := session.StartEdit(); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session.State())
	}
}

// SaveEditRequest is the body of POST /api/session/edit/save.
type SaveEditRequest struct {
	Body string `json:"body"`
}

// SaveEdit handles POST /api/session/edit/save. The viewed package's body
// is replaced in place; no duplicate history entry is created.
func SaveEdit(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveEditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if err := session.SaveEdit(req.Body); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session.State())
	}
}

// CancelEdit handles POST /api/session/edit/cancel.
func CancelEdit(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := session.CancelEdit(); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session.State())
	}
}

// ExportDocument handles GET /api/session/export. It renders the viewed
// package as a standalone HTML document, refusing mid-edit so a half-typed
// body never leaves the session.
func ExportDocument(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkg, body, err := session.Exportable()
		if err != nil {
			sessionError(w, err)
			return
		}

		doc := export.HTML(pkg, body)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(doc.Filename)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc.Body)
	}
}

// ClipboardPayload handles GET /api/session/clipboard?format=plain|rich.
// The plain flavor strips all markup; the rich flavor carries HTML plus a
// plain-text fallback for dual-format clipboard writes.
func ClipboardPayload(session *studio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, body, err := session.Exportable()
		if err != nil {
			sessionError(w, err)
			return
		}

		format := r.URL.Query().Get("format")
		switch format {
		case "", "plain":
			writeJSON(w, http.StatusOK, export.Payload{Text: export.PlainText(body)})
		case "rich":
			payload, err := export.RichText(body)
			if err != nil {
				slog.Error("rich clipboard rendering failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Could not build the rich clipboard payload")
				return
			}
			writeJSON(w, http.StatusOK, payload)
		default:
			writeError(w, http.StatusBadRequest, "format must be \"plain\" or \"rich\"")
		}
	}
}
