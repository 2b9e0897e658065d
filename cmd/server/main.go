package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/subosito/gotenv"

	"github.com/minsu-oh/hallabong/internal/ai"
	"github.com/minsu-oh/hallabong/internal/api"
	"github.com/minsu-oh/hallabong/internal/archive"
	"github.com/minsu-oh/hallabong/internal/config"
	"github.com/minsu-oh/hallabong/internal/content"
	"github.com/minsu-oh/hallabong/internal/studio"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	// Load .env before the config so API keys from it can override the file.
	_ = gotenv.Load()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the durable archive when enabled. The session itself is in-memory;
	// the archive only keeps finished packages across restarts.
	var store *archive.Store
	if cfg.Archive.Enabled {
		db, err := archive.OpenDatabase(cfg.Archive.Path)
		if err != nil {
			slog.Error("failed to open archive database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := archive.RunMigrations(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		store = archive.NewStore(db)
	} else {
		slog.Info("archive disabled, history is process-lifetime only")
	}

	// Create the generator (nil if no API key -- handlers check for this).
	var assembler *content.Assembler
	if cfg.AI.APIKey != "" {
		generator, err := ai.NewGenerator(ai.ProviderConfig{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
		})
		if err != nil {
			slog.Error("failed to create generator", "error", err)
			os.Exit(1)
		}
		assembler = content.NewAssembler(generator, cfg.Generator.WebSearch)
		slog.Info("generator configured",
			"provider", cfg.AI.Provider,
			"model", cfg.AI.Model,
			"web_search", cfg.Generator.WebSearch,
		)
	} else {
		slog.Warn("no generator API key configured, generation endpoints will be disabled")
	}

	session := studio.NewSession()
	router := api.NewRouter(session, assembler, store)

	// Localhost only: this is a single-user tool, not a shared service.
	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)

	slog.Info("starting server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
