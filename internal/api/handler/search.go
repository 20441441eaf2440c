package handler

import (
	"net/http"

	"github.com/fieldside/leaguedesk/internal/api/respond"
	"github.com/fieldside/leaguedesk/internal/store"
)

// Search is the combined player/parent search with household fan-out.
// @Summary Search players or parents with their household
// @Description Matches the given entity type by exact id or name/nickname substring, then includes every player, parent, and relative sharing a family id with the matches.
// @Tags search
// @Produce json
// @Param type query string true "Entity type" Enums(player, parent)
// @Param year query string false "Exact registration year"
// @Param keyword query string false "Id or name fragment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	searchType := q.Get("type")
	year := q.Get("year")
	keyword := q.Get("keyword")

	var (
		result *store.FamilySearchResult
		err    error
	)
	switch searchType {
	case "player":
		result, err = h.store.SearchPlayerFamilies(r.Context(), keyword, year)
	case "parent":
		result, err = h.store.SearchParentFamilies(r.Context(), keyword, year)
	default:
		respond.Fail(w, http.StatusBadRequest, "type must be 'player' or 'parent'")
		return
	}
	if err != nil {
		h.logger.Error("Combined search failed", "type", searchType, "error", err)
		respond.Fail(w, http.StatusInternalServerError, "search failed")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"players":   result.Players,
		"parents":   result.Parents,
		"relatives": result.Relatives,
	})
}

// SearchTeam returns teams matching the optional filters.
// @Summary Search teams
// @Tags teams
// @Produce json
// @Param keyword query string false "Exact team id"
// @Param year query string false "Exact year"
// @Param level query string false "Exact level"
// @Success 200 {array} store.Team
// @Router /api/search-team [get]
func (h *Handler) SearchTeam(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	teams, err := h.store.SearchTeams(r.Context(), q.Get("keyword"), q.Get("year"), q.Get("level"))
	if err != nil {
		h.logger.Error("Team search failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read team data")
		return
	}
	respond.JSON(w, http.StatusOK, teams)
}

// TeamPlayers returns a team's roster ordered by grade.
// @Summary Team roster
// @Tags teams
// @Produce json
// @Param team_id query string true "Team id"
// @Success 200 {array} store.Player
// @Failure 400 {object} map[string]string
// @Router /api/team-player [get]
func (h *Handler) TeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		respond.Error(w, http.StatusBadRequest, "missing required parameter: team_id")
		return
	}

	players, err := h.store.TeamRoster(r.Context(), teamID)
	if err != nil {
		h.logger.Error("Team roster failed", "team_id", teamID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read player data")
		return
	}
	respond.JSON(w, http.StatusOK, players)
}

// TeamInRole returns a team's coach/staff assignments. A team with no
// assignments yields an empty list, not an error.
// @Summary Team staff list
// @Tags teams
// @Produce json
// @Param team_id query string true "Team id"
// @Success 200 {array} store.StaffAssignment
// @Failure 400 {object} map[string]string
// @Router /api/team-inrole [get]
func (h *Handler) TeamInRole(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	if teamID == "" {
		respond.Error(w, http.StatusBadRequest, "missing required parameter: team_id")
		return
	}

	staff, err := h.store.TeamStaff(r.Context(), teamID)
	if err != nil {
		h.logger.Error("Team staff lookup failed", "team_id", teamID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "could not read staff data")
		return
	}
	respond.JSON(w, http.StatusOK, staff)
}
