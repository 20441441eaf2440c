package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fieldside/leaguedesk/internal/api/handler"
	"github.com/fieldside/leaguedesk/internal/cache"
	"github.com/fieldside/leaguedesk/internal/config"
	"github.com/fieldside/leaguedesk/internal/importer"
	"github.com/fieldside/leaguedesk/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(db store.Querier, appCache *cache.Cache, cfg *config.Config, sessions *importer.Sessions, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(db, appCache, cfg, sessions, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Public API
	r.Route("/api", func(r chi.Router) {
		// Combined player/parent/household search
		r.Get("/search", h.Search)

		// Teams
		r.Get("/search-team", h.SearchTeam)
		r.Get("/team-player", h.TeamPlayers)
		r.Get("/team-inrole", h.TeamInRole)

		// Games and rankings
		r.Get("/search-game", h.SearchGame)
		r.Get("/umpire-ranking", h.UmpireRanking)
		r.Get("/standings", h.Standings)

		// Dropdown enumerations
		r.Get("/level", h.Level)
		r.Get("/game-level", h.GameLevel)
		r.Get("/season", h.Season)
		r.Get("/round", h.Round)
		r.Get("/level-by-round", h.LevelByRound)
		r.Get("/team-by-year-level", h.TeamByYearLevel)
		r.Get("/team-by-season-level", h.TeamBySeasonLevel)

		// Staff/admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/preview-excel", h.PreviewExcel)
			r.Post("/confirm-import", h.ConfirmImport)
			r.Post("/delete-temp", h.DeleteTemp)

			r.Get("/player-status", h.PlayerStatus)
			r.Get("/search-players", h.SearchPlayers)
			r.Get("/player-detail-summary", h.PlayerDetailSummary)
			r.Delete("/delete-player/{player_id}", h.DeletePlayer)
		})
	})

	return r
}
