package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrPlayerNotFound distinguishes a delete that matched no row from a
// store failure; callers map it to a 404 instead of a 500.
var ErrPlayerNotFound = errors.New("player not found")

// DeletePlayer removes the single player row with the given id. Rows of
// the same family are untouched — deletion is player-scoped only.
func (s *Store) DeletePlayer(ctx context.Context, playerID string) error {
	tag, err := s.db.Exec(ctx, "delete_player", playerID)
	if err != nil {
		return fmt.Errorf("delete player %s: %w", playerID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// PlayerStatuses lists the distinct non-empty status labels recorded for
// a year's players.
func (s *Store) PlayerStatuses(ctx context.Context, year string) ([]string, error) {
	return s.stringColumn(ctx, "player_statuses", year)
}

// SearchPlayersByStatus returns a year's players, optionally narrowed to
// one status label, ordered by player id.
func (s *Store) SearchPlayersByStatus(ctx context.Context, year, status string) ([]Player, error) {
	c := &cond{}
	c.add("year = ?", year)
	if present(status) {
		c.add("status = ?", status)
	}

	sql := "SELECT " + playerColumns + " FROM player" + c.where() + " ORDER BY player_id ASC"
	rows, err := s.db.Query(ctx, sql, c.args...)
	if err != nil {
		return nil, fmt.Errorf("search players by status: %w", err)
	}
	return scanPlayers(rows)
}

// PlayerStatusSummary counts a year's players per status label.
func (s *Store) PlayerStatusSummary(ctx context.Context, year string) ([]StatusCount, error) {
	rows, err := s.db.Query(ctx, "player_status_summary", year)
	if err != nil {
		return nil, fmt.Errorf("player status summary: %w", err)
	}
	defer rows.Close()

	counts := []StatusCount{}
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}
