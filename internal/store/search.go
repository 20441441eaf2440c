package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// FamilySearchResult is the combined payload of the free-text search: the
// rows matching the searched entity type plus every household member
// sharing a family id with them. The three slices are independent — any
// of them may be empty.
type FamilySearchResult struct {
	Players   []Player   `json:"players"`
	Parents   []Parent   `json:"parents"`
	Relatives []Relative `json:"relatives"`
}

const playerColumns = `player_id, COALESCE(family_id, ''), COALESCE(year, ''),
	COALESCE(ch_name, ''), COALESCE(nickname, ''),
	COALESCE(grade, 0), COALESCE(jersey_number, ''),
	COALESCE(status, ''), COALESCE(p_team_id, '')`

const parentColumns = `parent_id, COALESCE(family_id, ''), COALESCE(year, ''),
	COALESCE(ch_name, ''), COALESCE(nickname, ''), COALESCE(status, '')`

// SearchPlayerFamilies matches players by exact id or name/nickname
// substring (optionally restricted to a year), then pulls every parent and
// relative sharing a family id with the matches.
func (s *Store) SearchPlayerFamilies(ctx context.Context, keyword, year string) (*FamilySearchResult, error) {
	c := &cond{}
	c.add("(player_id = ? OR ch_name LIKE ? OR nickname LIKE ?)",
		keyword, likePattern(keyword), likePattern(keyword))
	if present(year) {
		c.add("year = ?", year)
	}

	rows, err := s.db.Query(ctx, "SELECT "+playerColumns+" FROM player"+c.where(), c.args...)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	players, err := scanPlayers(rows)
	if err != nil {
		return nil, err
	}

	result := &FamilySearchResult{
		Players:   players,
		Parents:   []Parent{},
		Relatives: []Relative{},
	}

	familyIDs := distinctFamilyIDs(len(players), func(i int) string { return players[i].FamilyID })
	if len(familyIDs) == 0 {
		return result, nil
	}

	if result.Parents, err = s.parentsByFamily(ctx, familyIDs); err != nil {
		return nil, err
	}
	if result.Relatives, err = s.relativesByFamily(ctx, familyIDs); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchParentFamilies is the symmetric flow: match parents by id/name,
// then pull players and relatives by the shared family ids.
func (s *Store) SearchParentFamilies(ctx context.Context, keyword, year string) (*FamilySearchResult, error) {
	c := &cond{}
	c.add("(parent_id = ? OR ch_name LIKE ? OR nickname LIKE ?)",
		keyword, likePattern(keyword), likePattern(keyword))
	if present(year) {
		c.add("year = ?", year)
	}

	rows, err := s.db.Query(ctx, "SELECT "+parentColumns+" FROM parent"+c.where(), c.args...)
	if err != nil {
		return nil, fmt.Errorf("search parents: %w", err)
	}
	parents, err := scanParents(rows)
	if err != nil {
		return nil, err
	}

	result := &FamilySearchResult{
		Players:   []Player{},
		Parents:   parents,
		Relatives: []Relative{},
	}

	familyIDs := distinctFamilyIDs(len(parents), func(i int) string { return parents[i].FamilyID })
	if len(familyIDs) == 0 {
		return result, nil
	}

	if result.Players, err = s.playersByFamily(ctx, familyIDs); err != nil {
		return nil, err
	}
	if result.Relatives, err = s.relativesByFamily(ctx, familyIDs); err != nil {
		return nil, err
	}
	return result, nil
}

// --------------------------------------------------------------------------
// Family fan-out
// --------------------------------------------------------------------------

func (s *Store) playersByFamily(ctx context.Context, familyIDs []string) ([]Player, error) {
	rows, err := s.db.Query(ctx, "players_by_family", familyIDs)
	if err != nil {
		return nil, fmt.Errorf("players by family: %w", err)
	}
	return scanPlayers(rows)
}

func (s *Store) parentsByFamily(ctx context.Context, familyIDs []string) ([]Parent, error) {
	rows, err := s.db.Query(ctx, "parents_by_family", familyIDs)
	if err != nil {
		return nil, fmt.Errorf("parents by family: %w", err)
	}
	return scanParents(rows)
}

func (s *Store) relativesByFamily(ctx context.Context, familyIDs []string) ([]Relative, error) {
	rows, err := s.db.Query(ctx, "relatives_by_family", familyIDs)
	if err != nil {
		return nil, fmt.Errorf("relatives by family: %w", err)
	}
	defer rows.Close()

	relatives := []Relative{}
	for rows.Next() {
		var r Relative
		if err := rows.Scan(&r.RelativeID, &r.FamilyID, &r.Name,
			&r.Relationship, &r.Contact, &r.Year); err != nil {
			return nil, fmt.Errorf("scan relative: %w", err)
		}
		relatives = append(relatives, r)
	}
	return relatives, rows.Err()
}

// distinctFamilyIDs collects non-empty family ids in first-seen order.
func distinctFamilyIDs(n int, idAt func(int) string) []string {
	seen := make(map[string]bool, n)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := idAt(i)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func likePattern(keyword string) string {
	return "%" + keyword + "%"
}

// --------------------------------------------------------------------------
// Scan helpers
// --------------------------------------------------------------------------

func scanPlayers(rows pgx.Rows) ([]Player, error) {
	defer rows.Close()
	players := []Player{}
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.PlayerID, &p.FamilyID, &p.Year, &p.ChName,
			&p.Nickname, &p.Grade, &p.JerseyNumber, &p.Status, &p.PTeamID); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func scanParents(rows pgx.Rows) ([]Parent, error) {
	defer rows.Close()
	parents := []Parent{}
	for rows.Next() {
		var p Parent
		if err := rows.Scan(&p.ParentID, &p.FamilyID, &p.Year,
			&p.ChName, &p.Nickname, &p.Status); err != nil {
			return nil, fmt.Errorf("scan parent: %w", err)
		}
		parents = append(parents, p)
	}
	return parents, rows.Err()
}
