package seed

import (
	"context"
	"log/slog"

	"github.com/fieldside/leaguedesk/internal/store"
)

const (
	upsertTeam = `
		INSERT INTO team (team_id, year, level, team_name,
			practice_time, practice_place, rain_time, rain_place,
			night_time, night_place)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (team_id) DO UPDATE SET
			year = EXCLUDED.year, level = EXCLUDED.level,
			team_name = EXCLUDED.team_name,
			practice_time = EXCLUDED.practice_time,
			practice_place = EXCLUDED.practice_place`

	upsertPlayer = `
		INSERT INTO player (player_id, family_id, year, ch_name, nickname,
			grade, jersey_number, status, p_team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (player_id) DO UPDATE SET
			family_id = EXCLUDED.family_id, year = EXCLUDED.year,
			ch_name = EXCLUDED.ch_name, nickname = EXCLUDED.nickname,
			grade = EXCLUDED.grade, jersey_number = EXCLUDED.jersey_number,
			status = EXCLUDED.status, p_team_id = EXCLUDED.p_team_id`

	upsertParent = `
		INSERT INTO parent (parent_id, family_id, year, ch_name, nickname, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (parent_id) DO UPDATE SET
			family_id = EXCLUDED.family_id, year = EXCLUDED.year,
			ch_name = EXCLUDED.ch_name, nickname = EXCLUDED.nickname,
			status = EXCLUDED.status`

	upsertRelative = `
		INSERT INTO relative (relative_id, family_id, name, relationship, contact, year)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (relative_id) DO UPDATE SET
			family_id = EXCLUDED.family_id, name = EXCLUDED.name,
			relationship = EXCLUDED.relationship, contact = EXCLUDED.contact,
			year = EXCLUDED.year`

	upsertStaff = `
		INSERT INTO in_role (r_parent_id, r_team_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (r_parent_id, r_team_id) DO UPDATE SET role = EXCLUDED.role`

	upsertGame = `
		INSERT INTO league_game (ser_no, year, season, round, level, group_name,
			game_date, time_from, time_to, place, head_umpire,
			g_team_id, h_team_id, g_score, h_score, g_point, h_point, clothes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (season, round, level, ser_no) DO UPDATE SET
			game_date = EXCLUDED.game_date, place = EXCLUDED.place,
			head_umpire = EXCLUDED.head_umpire,
			g_score = EXCLUDED.g_score, h_score = EXCLUDED.h_score,
			g_point = EXCLUDED.g_point, h_point = EXCLUDED.h_point`
)

// Run upserts the demonstration dataset for a year. Rerunning it against
// a database that already has the demo rows just refreshes them.
func Run(ctx context.Context, db store.Querier, year string, logger *slog.Logger) Result {
	var result Result
	season := year + "S"

	logger.Info("Phase 1/3: Seeding teams...")
	for _, row := range demoTeams(year) {
		if _, err := db.Exec(ctx, upsertTeam, row...); err != nil {
			result.AddErrorf("upsert team %v: %v", row[0], err)
		} else {
			result.TeamsUpserted++
		}
	}

	logger.Info("Phase 2/3: Seeding households...")
	for _, row := range demoPlayers(year) {
		if _, err := db.Exec(ctx, upsertPlayer, row...); err != nil {
			result.AddErrorf("upsert player %v: %v", row[0], err)
		} else {
			result.PlayersUpserted++
		}
	}
	for _, row := range demoParents(year) {
		if _, err := db.Exec(ctx, upsertParent, row...); err != nil {
			result.AddErrorf("upsert parent %v: %v", row[0], err)
		} else {
			result.ParentsUpserted++
		}
	}
	for _, row := range demoRelatives(year) {
		if _, err := db.Exec(ctx, upsertRelative, row...); err != nil {
			result.AddErrorf("upsert relative %v: %v", row[0], err)
		} else {
			result.RelativesUpserted++
		}
	}
	for _, row := range demoStaff() {
		if _, err := db.Exec(ctx, upsertStaff, row...); err != nil {
			result.AddErrorf("upsert staff %v/%v: %v", row[0], row[1], err)
		} else {
			result.StaffUpserted++
		}
	}

	logger.Info("Phase 3/3: Seeding games...")
	for _, row := range demoGames(year, season) {
		if _, err := db.Exec(ctx, upsertGame, row...); err != nil {
			result.AddErrorf("upsert game %v: %v", row[0], err)
		} else {
			result.GamesUpserted++
		}
	}

	logger.Info("Seed complete", "year", year, "summary", result.Summary())
	return result
}

// Demo rows cover every query path: two levels, shared households,
// a played round with scores and an unscored upcoming round.

func demoTeams(year string) [][]any {
	return [][]any{
		{"T01", year, "Major", "Riverside Hawks",
			"Sat 09:00", "Riverside Field A", "Sat 13:00", "Community Gym",
			"Wed 19:00", "Riverside Field B"},
		{"T02", year, "Major", "Harbor Eagles",
			"Sat 09:00", "Harbor Park", "Sat 13:00", "Harbor Gym",
			"Thu 19:00", "Harbor Park"},
		{"T03", year, "Minor", "Hillside Cubs",
			"Sun 09:00", "Hillside Diamond", "Sun 13:00", "School Gym",
			"", ""},
	}
}

func demoPlayers(year string) [][]any {
	return [][]any{
		{"P001", "F001", year, "Lin Chia-Hao", "Hao", 5, "12", "Sat AM", "T01"},
		{"P002", "F001", year, "Lin Chia-Mei", "Mei", 3, "4", "Sat AM", "T03"},
		{"P003", "F002", year, "Chen Yu-Ting", "Ting", 6, "7", "Sun PM", "T01"},
		{"P004", "F003", year, "Wang Shao-An", "An", 4, "21", "Sat AM", "T02"},
		{"P005", "F004", year, "Huang Tzu-Wei", "Wei", 2, "3", "Sun PM", "T03"},
	}
}

func demoParents(year string) [][]any {
	return [][]any{
		{"PA01", "F001", year, "Lin Wen-Xiong", "Coach Lin", "active"},
		{"PA02", "F002", year, "Chen Mei-Ling", "Mei-Ling", "active"},
		{"PA03", "F003", year, "Wang Da-Wei", "Da-Wei", "active"},
	}
}

func demoRelatives(year string) [][]any {
	return [][]any{
		{"R001", "F001", "Lin Su-Zhen", "grandmother", "0912-345-678", year},
		{"R002", "F003", "Wang Jin-Fa", "grandfather", "0922-111-222", year},
	}
}

func demoStaff() [][]any {
	return [][]any{
		{"PA01", "T01", "coach"},
		{"PA02", "T01", "manager"},
		{"PA03", "T02", "coach"},
	}
}

func demoGames(year, season string) [][]any {
	return [][]any{
		{"1", year, season, "Prelim", "Major", "A",
			"2026-03-07", "09:00", "11:00", "Riverside Field A", "Umpire Kao",
			"T02", "T01", 3, 5, 0, 2, "white"},
		{"2", year, season, "Prelim", "Major", "A",
			"2026-03-14", "09:00", "11:00", "Harbor Park", "Umpire Kao",
			"T01", "T02", 4, 2, 2, 0, "blue"},
		{"10", year, season, "Final", "Major", "A",
			"2026-04-11", "09:00", "11:00", "Riverside Field A", "Umpire Su",
			"T02", "T01", nil, nil, nil, nil, "white"},
	}
}
