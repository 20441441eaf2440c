// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the store directly — no service layer. Store failures are
// logged with detail and surfaced to the caller as generic messages.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fieldside/leaguedesk/internal/api/respond"
	"github.com/fieldside/leaguedesk/internal/cache"
	"github.com/fieldside/leaguedesk/internal/config"
	"github.com/fieldside/leaguedesk/internal/importer"
	"github.com/fieldside/leaguedesk/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	db       store.Querier
	store    *store.Store
	cache    *cache.Cache
	cfg      *config.Config
	runner   *importer.Runner
	sessions *importer.Sessions
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(db store.Querier, c *cache.Cache, cfg *config.Config, sessions *importer.Sessions, logger *slog.Logger) *Handler {
	return &Handler{
		db:       db,
		store:    store.New(db),
		cache:    c,
		cfg:      cfg,
		runner:   importer.NewRunner(cfg.ImportCommand, cfg.ImportScript, logger),
		sessions: sessions,
		logger:   logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Leaguedesk API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	var n int
	err := h.db.QueryRow(r.Context(), "health_check").Scan(&n)
	if err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
