// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldside/leaguedesk/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers every fixed-shape query the API uses.
// Queries with optional filters are assembled per request by the store layer
// and are not prepared here.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Family fan-out for the combined search
		"players_by_family": `
			SELECT player_id, COALESCE(family_id, ''), COALESCE(year, ''),
			       COALESCE(ch_name, ''), COALESCE(nickname, ''),
			       COALESCE(grade, 0), COALESCE(jersey_number, ''),
			       COALESCE(status, ''), COALESCE(p_team_id, '')
			FROM player WHERE family_id = ANY($1)`,
		"parents_by_family": `
			SELECT parent_id, COALESCE(family_id, ''), COALESCE(year, ''),
			       COALESCE(ch_name, ''), COALESCE(nickname, ''), COALESCE(status, '')
			FROM parent WHERE family_id = ANY($1)`,
		"relatives_by_family": `
			SELECT relative_id, COALESCE(family_id, ''), COALESCE(name, ''),
			       COALESCE(relationship, ''), COALESCE(contact, ''), COALESCE(year, '')
			FROM relative WHERE family_id = ANY($1)`,

		// Rosters and staff
		"team_roster": `
			SELECT player_id, COALESCE(family_id, ''), COALESCE(year, ''),
			       COALESCE(ch_name, ''), COALESCE(nickname, ''),
			       COALESCE(grade, 0), COALESCE(jersey_number, ''),
			       COALESCE(status, ''), COALESCE(p_team_id, '')
			FROM player WHERE p_team_id = $1 ORDER BY grade ASC`,
		"team_staff": `
			SELECT COALESCE(t.year, ''), t.team_id, COALESCE(ir.role, ''),
			       ir.r_parent_id, COALESCE(p.nickname, '')
			FROM team t
			JOIN in_role ir ON t.team_id = ir.r_team_id
			JOIN parent p ON ir.r_parent_id = p.parent_id
			WHERE t.team_id = $1
			ORDER BY ir.role ASC`,

		// Player administration
		"delete_player": "DELETE FROM player WHERE player_id = $1",
		"player_statuses": `
			SELECT DISTINCT status FROM player
			WHERE year = $1 AND status IS NOT NULL AND status != ''`,
		"player_status_summary": `
			SELECT status, COUNT(*) FROM player
			WHERE year = $1 AND status IS NOT NULL AND status != ''
			GROUP BY status ORDER BY status ASC`,

		// Filter-option enumerations
		"team_levels": `
			SELECT DISTINCT level FROM team
			WHERE level IS NOT NULL AND level != '' ORDER BY level ASC`,
		"game_levels": `
			SELECT DISTINCT level FROM league_game
			WHERE level IS NOT NULL AND level != '' ORDER BY level ASC`,
		"seasons": "SELECT DISTINCT season FROM league_game ORDER BY season DESC",
		"rounds_by_season": `
			SELECT DISTINCT round FROM league_game WHERE season = $1 ORDER BY round DESC`,
		"levels_by_round": `
			SELECT DISTINCT level FROM league_game
			WHERE season = $1 AND round = $2 ORDER BY level ASC`,
		"teams_by_year_level": `
			SELECT DISTINCT team_id FROM team
			WHERE year = $1 AND level = $2 ORDER BY team_id ASC`,
		"teams_by_season_level": `
			SELECT DISTINCT h_team_id FROM league_game
			WHERE season = $1 AND level = $2 AND h_team_id IS NOT NULL
			ORDER BY h_team_id ASC`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
