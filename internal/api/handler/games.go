package handler

import (
	"net/http"

	"github.com/fieldside/leaguedesk/internal/api/respond"
	"github.com/fieldside/leaguedesk/internal/standings"
)

// SearchGame returns league games with resolved team names.
// @Summary Search league games
// @Description Filters by optional exact season/level and a keyword matched against either team id. Ordered by season, then natural serial-number order.
// @Tags games
// @Produce json
// @Param keyword query string false "Guest or home team id"
// @Param season query string false "Exact season"
// @Param level query string false "Exact level"
// @Success 200 {array} store.Game
// @Router /api/search-game [get]
func (h *Handler) SearchGame(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	games, err := h.store.SearchGames(r.Context(), q.Get("keyword"), q.Get("season"), q.Get("level"))
	if err != nil {
		h.logger.Error("Game search failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read game data")
		return
	}
	respond.JSON(w, http.StatusOK, games)
}

// UmpireRanking tallies head-umpire duty counts.
// @Summary Umpire attendance ranking
// @Tags games
// @Produce json
// @Param year query string false "Exact year"
// @Param level query string false "Exact level"
// @Param season query string false "Exact season"
// @Success 200 {object} map[string]interface{}
// @Router /api/umpire-ranking [get]
func (h *Handler) UmpireRanking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ranking, err := h.store.UmpireRanking(r.Context(), q.Get("year"), q.Get("level"), q.Get("season"))
	if err != nil {
		h.logger.Error("Umpire ranking failed", "error", err)
		respond.Fail(w, http.StatusInternalServerError, "could not compute umpire ranking")
		return
	}
	respond.Data(w, ranking)
}

// Standings computes the ranked team table for a (season, round, level)
// scope. An empty table is success — it just means no games matched.
// @Summary Team standings
// @Description Ranks teams by total points, then fewest runs allowed, then most runs scored. Each game counts once for the home team and once for the guest team.
// @Tags games
// @Produce json
// @Param season query string true "Season"
// @Param round query string true "Round"
// @Param level query string true "Level"
// @Param group query string false "Group substring filter"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/standings [get]
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	season, round, level := q.Get("season"), q.Get("round"), q.Get("level")
	if season == "" || round == "" || level == "" {
		respond.Fail(w, http.StatusBadRequest, "season, round, and level are required")
		return
	}

	games, err := h.store.GamesForStandings(r.Context(), season, round, level, q.Get("group"))
	if err != nil {
		h.logger.Error("Standings query failed",
			"season", season, "round", round, "level", level, "error", err)
		respond.Fail(w, http.StatusInternalServerError, "could not read standings data")
		return
	}

	respond.Data(w, standings.Compute(games))
}
