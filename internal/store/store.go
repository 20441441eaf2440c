// Package store is the directory store access layer. Every method is a
// single parameterized query (or a small fixed fan-out sequence) against
// the league database; no method holds state between calls.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the store needs. Tests substitute
// a pgxmock pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store executes directory queries against a shared pool.
type Store struct {
	db Querier
}

func New(db Querier) *Store {
	return &Store{db: db}
}

// --------------------------------------------------------------------------
// Dynamic filter assembly
// --------------------------------------------------------------------------

// cond collects parameterized WHERE clauses with sequential placeholder
// numbering. Each `?` in an expression is rewritten to the next $n, so
// optional filters append cleanly without string concatenation of values.
type cond struct {
	clauses []string
	args    []any
}

func (c *cond) add(expr string, vals ...any) {
	for _, v := range vals {
		c.args = append(c.args, v)
		expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", len(c.args)), 1)
	}
	c.clauses = append(c.clauses, expr)
}

// where renders the collected clauses, or an empty string when no filter
// is present.
func (c *cond) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// and renders the clauses as additions to an existing WHERE.
func (c *cond) and() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " AND " + strings.Join(c.clauses, " AND ")
}

// present reports whether an optional query parameter carries a value.
// Whitespace-only values are treated as absent, matching how the UI sends
// cleared filter boxes.
func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
