package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rrens/design-assistant/internal/api"
	"github.com/Rrens/design-assistant/internal/catalog"
	"github.com/Rrens/design-assistant/internal/config"
	"github.com/Rrens/design-assistant/internal/llm"
	"github.com/Rrens/design-assistant/internal/llm/gemini"
	"github.com/Rrens/design-assistant/internal/llm/mockai"
	"github.com/Rrens/design-assistant/internal/llm/openai"
	"github.com/Rrens/design-assistant/internal/repository/memory"
	"github.com/Rrens/design-assistant/internal/repository/postgres"
	"github.com/Rrens/design-assistant/internal/repository/redis"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file - try multiple locations
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Logging)

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Design Assistant API server")

	deps, cleanup, err := buildDeps(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize dependencies")
	}
	defer cleanup()

	router := api.NewRouter(cfg, deps)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func setupLogger(cfg config.LoggingConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if level, err := zerolog.ParseLevel(cfg.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	var sink io.Writer = os.Stderr
	if cfg.Format == "console" || os.Getenv("ENV") != "production" {
		sink = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	if cfg.File != "" {
		rotator, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(cfg.RotationTime),
			rotatelogs.WithMaxAge(cfg.MaxAge),
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open log file, logging to stderr only")
		} else {
			sink = zerolog.MultiLevelWriter(sink, rotator)
		}
	}

	log.Logger = log.Output(sink)
}

// buildDeps wires storage and providers from configuration. Stores are
// constructed once here and injected; no package-level state.
func buildDeps(ctx context.Context, cfg *config.Config) (api.Deps, func(), error) {
	deps := api.Deps{LLM: buildLLMRouter(cfg.LLM)}
	cleanup := func() {}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return deps, cleanup, err
	}
	deps.Catalog = cat

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.NewDB(ctx, cfg.Database)
		if err != nil {
			return deps, cleanup, fmt.Errorf("failed to connect to database: %w", err)
		}
		deps.Users = postgres.NewUserRepository(db)
		deps.History = postgres.NewHistoryRepository(db)
		deps.Sessions = postgres.NewSessionRepository(db)
		deps.DB = db
		cleanup = db.Close
	case "memory", "":
		deps.Users = memory.NewUserRepository()
		deps.History = memory.NewHistoryRepository()
		deps.Sessions = memory.NewSessionRepository()
	default:
		return deps, cleanup, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return deps, cleanup, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.Sessions = redis.NewSessionRepository(client)
		prev := cleanup
		cleanup = func() {
			client.Close()
			prev()
		}
	}

	return deps, cleanup, nil
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.SeedPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.SeedPath)
}

func buildLLMRouter(cfg config.LLMConfig) *llm.Router {
	router := llm.NewRouter(cfg.DefaultProvider)

	// The offline provider is always present so the service degrades
	// gracefully without API keys.
	router.RegisterProvider(mockai.NewProvider())

	if cfg.OpenAI.APIKey != "" {
		router.RegisterProvider(openai.NewProvider(cfg.OpenAI.APIKey, cfg.OpenAI.Model))
	}
	if cfg.Gemini.APIKey != "" {
		router.RegisterProvider(gemini.NewProvider(cfg.Gemini.APIKey, cfg.Gemini.Model))
	}

	log.Info().
		Str("default", cfg.DefaultProvider).
		Int("providers", len(router.GetProvidersInfo())).
		Msg("Initialized text-generation providers")

	return router
}
