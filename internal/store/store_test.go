package store

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shared mock helpers for the store tests.

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func newRowSet(cols []string) *pgxmock.Rows {
	return pgxmock.NewRows(cols)
}

func playerRows() *pgxmock.Rows {
	return newRowSet([]string{
		"player_id", "family_id", "year", "ch_name", "nickname",
		"grade", "jersey_number", "status", "p_team_id",
	})
}

func parentRows() *pgxmock.Rows {
	return newRowSet([]string{
		"parent_id", "family_id", "year", "ch_name", "nickname", "status",
	})
}

func relativeRows() *pgxmock.Rows {
	return newRowSet([]string{
		"relative_id", "family_id", "name", "relationship", "contact", "year",
	})
}

func strPtr(s string) *string { return &s }

func TestCondPlaceholderNumbering(t *testing.T) {
	c := &cond{}
	c.add("season = ?", "2026S")
	c.add("(guest.team_id = ? OR home.team_id = ?)", "T1", "T1")

	assert.Equal(t, " WHERE season = $1 AND (guest.team_id = $2 OR home.team_id = $3)", c.where())
	assert.Equal(t, []any{"2026S", "T1", "T1"}, c.args)
}

func TestCondEmpty(t *testing.T) {
	c := &cond{}
	assert.Equal(t, "", c.where())
	assert.Equal(t, "", c.and())
}
