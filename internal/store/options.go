package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Filter-option enumerations backing the UI dropdowns. Each is a distinct
// projection over one column, optionally scoped; all use statements
// prepared at connection time.

// TeamLevels lists the distinct team levels.
func (s *Store) TeamLevels(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, "team_levels")
}

// GameLevels lists the distinct levels appearing in league games.
func (s *Store) GameLevels(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, "game_levels")
}

// Seasons lists the distinct seasons, newest first.
func (s *Store) Seasons(ctx context.Context) ([]string, error) {
	return s.stringColumn(ctx, "seasons")
}

// Rounds lists the distinct rounds played in a season, newest first.
func (s *Store) Rounds(ctx context.Context, season string) ([]string, error) {
	return s.stringColumn(ctx, "rounds_by_season", season)
}

// LevelsByRound lists the distinct levels played in a (season, round).
func (s *Store) LevelsByRound(ctx context.Context, season, round string) ([]string, error) {
	return s.stringColumn(ctx, "levels_by_round", season, round)
}

// TeamIDsByYearLevel lists the distinct team ids registered for a
// (year, level).
func (s *Store) TeamIDsByYearLevel(ctx context.Context, year, level string) ([]string, error) {
	return s.stringColumn(ctx, "teams_by_year_level", year, level)
}

// HomeTeamIDsBySeasonLevel lists the distinct home-team ids that appear in
// league games for a (season, level).
func (s *Store) HomeTeamIDsBySeasonLevel(ctx context.Context, season, level string) ([]string, error) {
	return s.stringColumn(ctx, "teams_by_season_level", season, level)
}

func (s *Store) stringColumn(ctx context.Context, stmt string, args ...any) ([]string, error) {
	rows, err := s.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", stmt, err)
	}
	return scanStrings(rows)
}

func scanStrings(rows pgx.Rows) ([]string, error) {
	defer rows.Close()
	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
