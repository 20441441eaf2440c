package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fieldside/leaguedesk/internal/api/respond"
	"github.com/fieldside/leaguedesk/internal/cache"
)

// Dropdown enumeration endpoints. The unscoped ones (levels, seasons) are
// cached with ETags — they only change on import, and the UI refetches
// them on every filter interaction.

// Level lists distinct team levels.
// @Summary Distinct team levels
// @Tags options
// @Produce json
// @Success 200 {array} string
// @Router /api/level [get]
func (h *Handler) Level(w http.ResponseWriter, r *http.Request) {
	h.cachedStrings(w, r, "options:team-levels", h.store.TeamLevels)
}

// GameLevel lists distinct league-game levels.
// @Summary Distinct game levels
// @Tags options
// @Produce json
// @Success 200 {array} string
// @Router /api/game-level [get]
func (h *Handler) GameLevel(w http.ResponseWriter, r *http.Request) {
	h.cachedStrings(w, r, "options:game-levels", h.store.GameLevels)
}

// Season lists distinct seasons, newest first.
// @Summary Distinct seasons
// @Tags options
// @Produce json
// @Success 200 {array} string
// @Router /api/season [get]
func (h *Handler) Season(w http.ResponseWriter, r *http.Request) {
	h.cachedStrings(w, r, "options:seasons", h.store.Seasons)
}

// Round lists the rounds played in a season as row objects.
// @Summary Rounds for a season
// @Tags options
// @Produce json
// @Param season query string true "Season"
// @Success 200 {array} object
// @Router /api/round [get]
func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.store.Rounds(r.Context(), r.URL.Query().Get("season"))
	if err != nil {
		h.logger.Error("Round enumeration failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read round data")
		return
	}
	respond.JSON(w, http.StatusOK, wrapRows("round", rounds))
}

// LevelByRound lists the levels played in a (season, round).
// @Summary Levels for a season and round
// @Tags options
// @Produce json
// @Param season query string true "Season"
// @Param round query string true "Round"
// @Success 200 {array} string
// @Router /api/level-by-round [get]
func (h *Handler) LevelByRound(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	levels, err := h.store.LevelsByRound(r.Context(), q.Get("season"), q.Get("round"))
	if err != nil {
		h.logger.Error("Level-by-round enumeration failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read level data")
		return
	}
	respond.JSON(w, http.StatusOK, levels)
}

// TeamByYearLevel lists team ids registered for a (year, level).
// @Summary Team ids for a year and level
// @Tags options
// @Produce json
// @Param year query string true "Year"
// @Param level query string true "Level"
// @Success 200 {array} object
// @Router /api/team-by-year-level [get]
func (h *Handler) TeamByYearLevel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ids, err := h.store.TeamIDsByYearLevel(r.Context(), q.Get("year"), q.Get("level"))
	if err != nil {
		h.logger.Error("Team-by-year-level enumeration failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read team data")
		return
	}
	respond.JSON(w, http.StatusOK, wrapRows("team_id", ids))
}

// TeamBySeasonLevel lists home-team ids appearing in a (season, level).
// @Summary Home-team ids for a season and level
// @Tags options
// @Produce json
// @Param season query string true "Season"
// @Param level query string true "Level"
// @Success 200 {array} object
// @Router /api/team-by-season-level [get]
func (h *Handler) TeamBySeasonLevel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ids, err := h.store.HomeTeamIDsBySeasonLevel(r.Context(), q.Get("season"), q.Get("level"))
	if err != nil {
		h.logger.Error("Team-by-season-level enumeration failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read team data")
		return
	}
	respond.JSON(w, http.StatusOK, wrapRows("h_team_id", ids))
}

// cachedStrings serves a string enumeration through the TTL/ETag cache.
func (h *Handler) cachedStrings(w http.ResponseWriter, r *http.Request,
	key string, fetch func(context.Context) ([]string, error)) {

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.NotModified(w, etag)
			return
		}
		respond.Raw(w, data, etag, cache.TTLOptions, true)
		return
	}

	values, err := fetch(r.Context())
	if err != nil {
		h.logger.Error("Enumeration failed", "key", key, "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read option data")
		return
	}

	data, err := json.Marshal(values)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "could not encode option data")
		return
	}

	etag := h.cache.Set(key, data, cache.TTLOptions)
	respond.Raw(w, data, etag, cache.TTLOptions, false)
}

// wrapRows restores the row-object shape ({"round": "..."} etc.) that the
// browser tables expect for some enumerations.
func wrapRows(field string, values []string) []map[string]string {
	rows := make([]map[string]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, map[string]string{field: v})
	}
	return rows
}
