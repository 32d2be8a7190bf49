package api

import (
	"net/http"

	"github.com/Rrens/design-assistant/internal/api/handler"
	custommw "github.com/Rrens/design-assistant/internal/api/middleware"
	"github.com/Rrens/design-assistant/internal/catalog"
	"github.com/Rrens/design-assistant/internal/config"
	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/llm"
	"github.com/Rrens/design-assistant/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the injected collaborators the router composes. Stores are
// constructed once at process start and passed in explicitly.
type Deps struct {
	Users    domain.UserRepository
	Sessions domain.SessionRepository
	History  domain.HistoryRepository
	Catalog  *catalog.Catalog
	LLM      *llm.Router
	// DB reports storage readiness; nil for in-memory storage.
	DB handler.Pinger
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Services
	sessionManager := service.NewSessionManager(deps.Sessions, cfg.Auth.SessionTTL)
	authService := service.NewAuthService(deps.Users, sessionManager)
	historyService := service.NewHistoryService(deps.History)
	chatService := service.NewChatService(deps.LLM, deps.Catalog, historyService)

	// Handlers
	authHandler := handler.NewAuthHandler(
		authService,
		cfg.Auth.CookieName,
		int(cfg.Auth.SessionTTL.Seconds()),
		cfg.Auth.CookieSecure,
	)
	templateHandler := handler.NewTemplateHandler(deps.Catalog)
	chatHandler := handler.NewChatHandler(chatService)
	historyHandler := handler.NewHistoryHandler(historyService)

	authMiddleware := custommw.NewAuthMiddleware(sessionManager, cfg.Auth.CookieName)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(deps.DB))

		// Every route below resolves the session cookie; whether auth
		// is required is decided per route.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Resolve)

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", authHandler.Register)
				r.Post("/login", authHandler.Login)
				r.Post("/logout", authHandler.Logout)
				r.Get("/session", authHandler.Session)
			})

			// Public catalog search
			r.Get("/templates", templateHandler.Search)

			// Chat with optional authentication
			r.Post("/chat", chatHandler.Chat)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(custommw.RequireAuth)

				r.Post("/templates", templateHandler.SearchPost)
				r.Get("/history", historyHandler.List)
				r.Delete("/history", historyHandler.Delete)
				r.Get("/llm-providers", handler.ListProviders(deps.LLM))
			})
		})
	})

	return r
}
