package store

import (
	"context"
	"fmt"
)

const teamColumns = `team_id, COALESCE(year, ''), COALESCE(level, ''),
	COALESCE(team_name, ''), COALESCE(practice_time, ''), COALESCE(practice_place, ''),
	COALESCE(rain_time, ''), COALESCE(rain_place, ''),
	COALESCE(night_time, ''), COALESCE(night_place, '')`

// SearchTeams returns teams filtered by optional exact year, level, and
// team id. With no filters present it lists every team.
func (s *Store) SearchTeams(ctx context.Context, keyword, year, level string) ([]Team, error) {
	c := &cond{}
	if present(year) {
		c.add("year = ?", year)
	}
	if present(level) {
		c.add("level = ?", level)
	}
	if present(keyword) {
		c.add("team_id = ?", keyword)
	}

	rows, err := s.db.Query(ctx, "SELECT "+teamColumns+" FROM team"+c.where(), c.args...)
	if err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}
	defer rows.Close()

	teams := []Team{}
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.TeamID, &t.Year, &t.Level, &t.TeamName,
			&t.PracticeTime, &t.PracticePlace, &t.RainTime, &t.RainPlace,
			&t.NightTime, &t.NightPlace); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// TeamRoster returns every player on a team, youngest grade first.
func (s *Store) TeamRoster(ctx context.Context, teamID string) ([]Player, error) {
	rows, err := s.db.Query(ctx, "team_roster", teamID)
	if err != nil {
		return nil, fmt.Errorf("team roster: %w", err)
	}
	return scanPlayers(rows)
}

// TeamStaff returns the coach/staff assignments for a team ordered by role.
// A team with no assignments yields an empty list.
func (s *Store) TeamStaff(ctx context.Context, teamID string) ([]StaffAssignment, error) {
	rows, err := s.db.Query(ctx, "team_staff", teamID)
	if err != nil {
		return nil, fmt.Errorf("team staff: %w", err)
	}
	defer rows.Close()

	staff := []StaffAssignment{}
	for rows.Next() {
		var a StaffAssignment
		if err := rows.Scan(&a.Year, &a.TeamID, &a.Role, &a.RParentID, &a.Nickname); err != nil {
			return nil, fmt.Errorf("scan staff assignment: %w", err)
		}
		staff = append(staff, a)
	}
	return staff, rows.Err()
}
