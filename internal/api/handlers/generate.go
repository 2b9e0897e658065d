package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/minsu-oh/hallabong/internal/archive"
	"github.com/minsu-oh/hallabong/internal/content"
	"github.com/minsu-oh/hallabong/internal/extract"
	"github.com/minsu-oh/hallabong/internal/models"
	"github.com/minsu-oh/hallabong/internal/studio"
)

// GenerateRequest is the body of POST /api/generate. The expert fields are
// ignored in Lite mode, where the platform's default table supplies them.
type GenerateRequest struct {
	Mode     models.GenerationMode `json:"mode"`
	Topic    string                `json:"topic"`
	Keywords string                `json:"keywords"`
	Platform models.Platform       `json:"platform"`
	Tone     models.Tone           `json:"tone"`

	ContentType    models.ContentType   `json:"contentType,omitempty"`
	ParagraphCount int                  `json:"paragraphCount,omitempty"`
	DesignConcept  models.DesignConcept `json:"designConcept,omitempty"`
	TargetPersona  models.TargetPersona `json:"targetPersona,omitempty"`
	Addons         []models.Addon       `json:"addons,omitempty"`
}

// GenerateResponse pairs the finished package with the session state after
// the append, so the client can render the result screen in one round trip.
type GenerateResponse struct {
	Package *models.ContentPackage `json:"package"`
	State   studio.State           `json:"state"`
}

// Generate handles POST /api/generate. It resolves the config, reserves the
// session for one generation, runs the assembler, and on success appends the
// package to history and switches to the viewing surface. A failure leaves
// history untouched and the creation form active.
func Generate(session *studio.Session, assembler *content.Assembler, store *archive.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if assembler == nil {
			writeError(w, http.StatusServiceUnavailable,
				"Generator not configured. Add your API key to config.toml")
			return
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		cfg, err := content.ResolveConfig(content.Input{
			Topic:          req.Topic,
			Keywords:       req.Keywords,
			Platform:       req.Platform,
			Tone:           req.Tone,
			ContentType:    req.ContentType,
			ParagraphCount: req.ParagraphCount,
			DesignConcept:  req.DesignConcept,
			TargetPersona:  req.TargetPersona,
			Addons:         req.Addons,
		}, req.Mode)
		if err != nil {
			var ve *content.ValidationError
			if errors.As(err, &ve) {
				writeError(w, http.StatusBadRequest, ve.Msg)
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		token, err := session.BeginGeneration()
		switch {
		case errors.Is(err, studio.ErrGenerationInFlight):
			writeError(w, http.StatusConflict, "A generation is already in progress")
			return
		case errors.Is(err, studio.ErrNotCreating):
			writeError(w, http.StatusConflict, "Return to the creation form before generating")
			return
		case err != nil:
			sessionError(w, err)
			return
		}

		pkg, err := assembler.GeneratePackage(ctx, cfg)
		if err != nil {
			session.FailGeneration(token)

			var malformed *extract.MalformedResponseError
			if errors.As(err, &malformed) {
				slog.Error("generator returned unusable output", "topic", cfg.Topic, "error", err)
				writeError(w, http.StatusBadGateway,
					"The generator returned an unusable response. Please try again.")
				return
			}
			slog.Error("generation failed", "topic", cfg.Topic, "error", err)
			writeError(w, http.StatusBadGateway, "Generation failed. Please try again.")
			return
		}

		if !session.CompleteGeneration(token, pkg) {
			// The user navigated away while the call was outstanding; the
			// result is dropped rather than applied to the current surface.
			slog.Info("discarding abandoned generation result", "topic", cfg.Topic)
			writeJSON(w, http.StatusOK, GenerateResponse{State: session.State()})
			return
		}

		archivePackage(ctx, store, pkg)

		writeJSON(w, http.StatusOK, GenerateResponse{
			Package: pkg,
			State:   session.State(),
		})
	}
}

// archivePackage persists a finished package when the durable archive is
// enabled. Archive failures are logged, never surfaced: the in-memory
// session already holds the result.
func archivePackage(ctx context.Context, store *archive.Store, pkg *models.ContentPackage) {
	if store == nil {
		return
	}
	if _, err := store.Save(ctx, pkg); err != nil {
		slog.Warn("failed to archive package", "title", pkg.BlogPost.Title, "error", err)
	}
}
