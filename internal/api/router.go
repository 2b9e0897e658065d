package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/minsu-oh/hallabong/internal/api/handlers"
	"github.com/minsu-oh/hallabong/internal/archive"
	"github.com/minsu-oh/hallabong/internal/content"
	"github.com/minsu-oh/hallabong/internal/studio"
)

// NewRouter creates and configures the HTTP router with all API routes.
// assembler and store may be nil: the affected endpoints then answer 503
// instead of the server refusing to start.
func NewRouter(session *studio.Session, assembler *content.Assembler, store *archive.Store) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Post("/generate", handlers.Generate(session, assembler, store))

		api.Get("/trending", handlers.TrendingKeywords(assembler))
		api.Post("/topics", handlers.RecommendTopics(assembler))
		api.Post("/research", handlers.Research(assembler))
		api.Post("/seo/analyze", handlers.AnalyzeSEO(assembler))

		api.Get("/session", handlers.GetSession(session))
		api.Post("/session/new", handlers.StartNew(session))
		api.Post("/session/history", handlers.OpenHistory(session))
		api.Post("/session/back", handlers.Back(session))
		api.Delete("/session/view", handlers.DeleteViewed(session))
		api.Post("/session/edit", handlers.StartEdit(session))
		api.Post("/session/edit/save", handlers.SaveEdit(session))
		api.Post("/session/edit/cancel", handlers.CancelEdit(session))
		api.Get("/session/export", handlers.ExportDocument(session))
		api.Get("/session/clipboard", handlers.ClipboardPayload(session))

		api.Get("/history", handlers.GetHistory(session))
		api.Post("/history/{index}/open", handlers.OpenHistoryEntry(session))

		api.Get("/archive", handlers.ListArchive(store))
		api.Get("/archive/{id}", handlers.GetArchived(store))
		api.Delete("/archive/{id}", handlers.DeleteArchived(store))
	})

	return r
}
