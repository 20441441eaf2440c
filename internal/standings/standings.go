// Package standings turns per-game results into ranked team totals.
//
// Each game contributes two observations — one for the home team, one for
// the guest — and teams are ranked on summed points with runs allowed and
// runs scored as tie-breaks. The aggregation lives in Go rather than in a
// single SQL string so the ordering contract is owned in one place.
package standings

import (
	"sort"

	"github.com/fieldside/leaguedesk/internal/store"
)

// Observation is one team's view of one game.
type Observation struct {
	TeamID      string
	TeamName    string
	Group       string
	Points      int
	RunsScored  int
	RunsAllowed int
}

// TeamStanding is one ranked row of the final table.
type TeamStanding struct {
	Group            string `json:"group"`
	TeamName         string `json:"team_name"`
	TeamID           string `json:"team_id"`
	TotalPoints      int    `json:"total_points"`
	TotalRunsAllowed int    `json:"total_runs_allowed"`
	TotalRunsScored  int    `json:"total_runs_scored"`
	GamesPlayed      int    `json:"games_played"`
}

// Expand splits each game result into home and guest observations. A side
// whose team id has no row in the team table (nil joined name) is dropped,
// so its games never reach the table.
func Expand(games []store.GameResult) []Observation {
	obs := make([]Observation, 0, 2*len(games))
	for _, g := range games {
		if g.HomeName != nil {
			obs = append(obs, Observation{
				TeamID:      g.HTeamID,
				TeamName:    *g.HomeName,
				Group:       g.Group,
				Points:      g.HPoint,
				RunsScored:  g.HScore,
				RunsAllowed: g.GScore,
			})
		}
		if g.GuestName != nil {
			obs = append(obs, Observation{
				TeamID:      g.GTeamID,
				TeamName:    *g.GuestName,
				Group:       g.Group,
				Points:      g.GPoint,
				RunsScored:  g.GScore,
				RunsAllowed: g.HScore,
			})
		}
	}
	return obs
}

// Rank aggregates observations per team and orders the totals:
//
//  1. total points, highest first
//  2. total runs allowed, lowest first
//  3. total runs scored, highest first
//
// Teams equal on all three keep their first-observation order — the sort
// is stable, and no further tie-break is defined.
func Rank(obs []Observation) []TeamStanding {
	index := make(map[string]int, len(obs))
	table := []TeamStanding{}

	for _, o := range obs {
		i, seen := index[o.TeamID]
		if !seen {
			i = len(table)
			index[o.TeamID] = i
			table = append(table, TeamStanding{
				Group:    o.Group,
				TeamName: o.TeamName,
				TeamID:   o.TeamID,
			})
		}
		table[i].TotalPoints += o.Points
		table[i].TotalRunsAllowed += o.RunsAllowed
		table[i].TotalRunsScored += o.RunsScored
		table[i].GamesPlayed++
	}

	sort.SliceStable(table, func(a, b int) bool {
		ta, tb := table[a], table[b]
		if ta.TotalPoints != tb.TotalPoints {
			return ta.TotalPoints > tb.TotalPoints
		}
		if ta.TotalRunsAllowed != tb.TotalRunsAllowed {
			return ta.TotalRunsAllowed < tb.TotalRunsAllowed
		}
		return ta.TotalRunsScored > tb.TotalRunsScored
	})
	return table
}

// Compute is the full pipeline: expand game results and rank the teams.
func Compute(games []store.GameResult) []TeamStanding {
	return Rank(Expand(games))
}
