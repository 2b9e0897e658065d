package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/minsu-oh/hallabong/internal/archive"
)

// ListArchive handles GET /api/archive?limit={n}. It returns archived
// package summaries newest first, without decoded payloads.
func ListArchive(store *archive.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if store == nil {
			writeError(w, http.StatusServiceUnavailable, "Archive is disabled in config.toml")
			return
		}

		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		entries, err := store.List(ctx, limit)
		if err != nil {
			slog.Error("failed to list archive", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list archive")
			return
		}
		if entries == nil {
			entries = []archive.Entry{}
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// GetArchived handles GET /api/archive/{id}. It returns one archived entry
// with the full package payload decoded.
func GetArchived(store *archive.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if store == nil {
			writeError(w, http.StatusServiceUnavailable, "Archive is disabled in config.toml")
			return
		}

		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entry, err := store.Get(ctx, id)
		if errors.Is(err, archive.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Archived package not found")
			return
		}
		if err != nil {
			slog.Error("failed to load archived package", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load archived package")
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}

// DeleteArchived handles DELETE /api/archive/{id}.
func DeleteArchived(store *archive.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if store == nil {
			writeError(w, http.StatusServiceUnavailable, "Archive is disabled in config.toml")
			return
		}

		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := store.Delete(ctx, id); err != nil {
			if errors.Is(err, archive.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Archived package not found")
				return
			}
			slog.Error("failed to delete archived package", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to delete archived package")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}
