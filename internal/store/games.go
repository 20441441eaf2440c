package store

import (
	"context"
	"fmt"
)

const gameColumns = `lg.ser_no, COALESCE(lg.year, ''), lg.season, lg.round, lg.level,
	COALESCE(lg.group_name, ''), COALESCE(lg.game_date, ''),
	COALESCE(lg.time_from, ''), COALESCE(lg.time_to, ''),
	COALESCE(lg.place, ''), COALESCE(lg.head_umpire, ''),
	COALESCE(lg.g_team_id, ''), COALESCE(lg.h_team_id, ''),
	COALESCE(lg.g_score, 0), COALESCE(lg.h_score, 0),
	COALESCE(lg.g_point, 0), COALESCE(lg.h_point, 0),
	COALESCE(lg.clothes, ''),
	COALESCE(guest.team_name, ''), COALESCE(home.team_name, '')`

const gameJoins = ` FROM league_game lg
	LEFT JOIN team guest ON lg.g_team_id = guest.team_id
	LEFT JOIN team home ON lg.h_team_id = home.team_id`

// SearchGames returns games with guest/home team names resolved, filtered
// by optional exact season/level and a keyword matched against either
// team id. Results are ordered by season, then by serial number using a
// length-then-lexicographic comparison so variable-width numeric codes
// sort naturally ("2" before "10").
func (s *Store) SearchGames(ctx context.Context, keyword, season, level string) ([]Game, error) {
	c := &cond{}
	if present(season) {
		c.add("lg.season = ?", season)
	}
	if present(level) {
		c.add("lg.level = ?", level)
	}
	if present(keyword) {
		c.add("(guest.team_id = ? OR home.team_id = ?)", keyword, keyword)
	}

	sql := "SELECT " + gameColumns + gameJoins + c.where() +
		" ORDER BY lg.season ASC, LENGTH(lg.ser_no) ASC, lg.ser_no ASC"

	rows, err := s.db.Query(ctx, sql, c.args...)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	defer rows.Close()

	games := []Game{}
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.SerNo, &g.Year, &g.Season, &g.Round, &g.Level,
			&g.Group, &g.Date, &g.From, &g.To, &g.Place, &g.HeadUmpire,
			&g.GTeamID, &g.HTeamID, &g.GScore, &g.HScore, &g.GPoint, &g.HPoint,
			&g.Clothes, &g.GuestName, &g.HomeName); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// UmpireRanking tallies head-umpire duty counts over games matching the
// optional year/level/season filters. Games without a recorded umpire are
// excluded. Ordering is by count only — ties stay in store order.
func (s *Store) UmpireRanking(ctx context.Context, year, level, season string) ([]UmpireDuty, error) {
	c := &cond{}
	if present(year) {
		c.add("year = ?", year)
	}
	if present(level) {
		c.add("level = ?", level)
	}
	if present(season) {
		c.add("season = ?", season)
	}

	sql := `SELECT head_umpire, COUNT(*) AS duty_count FROM league_game
		WHERE head_umpire IS NOT NULL AND head_umpire != ''` + c.and() +
		" GROUP BY head_umpire ORDER BY duty_count DESC"

	rows, err := s.db.Query(ctx, sql, c.args...)
	if err != nil {
		return nil, fmt.Errorf("umpire ranking: %w", err)
	}
	defer rows.Close()

	ranking := []UmpireDuty{}
	for rows.Next() {
		var u UmpireDuty
		if err := rows.Scan(&u.HeadUmpire, &u.DutyCount); err != nil {
			return nil, fmt.Errorf("scan umpire duty: %w", err)
		}
		ranking = append(ranking, u)
	}
	return ranking, rows.Err()
}

// GameResult is the per-game slice of a standings computation. The team
// names come from left joins against the team table; a nil name marks a
// team id with no team row, which the standings engine drops.
type GameResult struct {
	SerNo     string
	Group     string
	HTeamID   string
	GTeamID   string
	HScore    int
	GScore    int
	HPoint    int
	GPoint    int
	HomeName  *string
	GuestName *string
}

// GamesForStandings returns the game results in a (season, round, level)
// scope, optionally narrowed by a group substring. Rows come back in
// serial-number order so downstream aggregation is reproducible.
func (s *Store) GamesForStandings(ctx context.Context, season, round, level, group string) ([]GameResult, error) {
	c := &cond{}
	c.add("lg.season = ?", season)
	c.add("lg.round = ?", round)
	c.add("lg.level = ?", level)
	if present(group) {
		c.add("lg.group_name LIKE ?", likePattern(group))
	}

	sql := `SELECT lg.ser_no, COALESCE(lg.group_name, ''),
		COALESCE(lg.h_team_id, ''), COALESCE(lg.g_team_id, ''),
		COALESCE(lg.h_score, 0), COALESCE(lg.g_score, 0),
		COALESCE(lg.h_point, 0), COALESCE(lg.g_point, 0),
		home.team_name, guest.team_name` + gameJoins + c.where() +
		" ORDER BY LENGTH(lg.ser_no) ASC, lg.ser_no ASC"

	rows, err := s.db.Query(ctx, sql, c.args...)
	if err != nil {
		return nil, fmt.Errorf("games for standings: %w", err)
	}
	defer rows.Close()

	results := []GameResult{}
	for rows.Next() {
		var g GameResult
		if err := rows.Scan(&g.SerNo, &g.Group, &g.HTeamID, &g.GTeamID,
			&g.HScore, &g.GScore, &g.HPoint, &g.GPoint,
			&g.HomeName, &g.GuestName); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		results = append(results, g)
	}
	return results, rows.Err()
}
