package store

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePlayer(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectExec("delete_player").
		WithArgs("P001").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeletePlayer(context.Background(), "P001"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePlayerNotFound(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectExec("delete_player").
		WithArgs("NOPE").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeletePlayer(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestDeletePlayerStoreFailure(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectExec("delete_player").
		WithArgs("P001").
		WillReturnError(errors.New("connection reset"))

	err := s.DeletePlayer(context.Background(), "P001")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlayerNotFound, "store failure must stay distinct from not-found")
}

func TestSearchPlayersByStatus(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`FROM player WHERE year = \$1 AND status = \$2 ORDER BY player_id ASC`).
		WithArgs("2026", "Sat AM").
		WillReturnRows(playerRows().
			AddRow("P001", "F1", "2026", "Lin Hao", "Hao", 3, "12", "Sat AM", "T1"))

	players, err := s.SearchPlayersByStatus(context.Background(), "2026", "Sat AM")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Sat AM", players[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPlayersByStatusAll(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`FROM player WHERE year = \$1 ORDER BY player_id ASC`).
		WithArgs("2026").
		WillReturnRows(playerRows())

	_, err := s.SearchPlayersByStatus(context.Background(), "2026", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerStatusSummary(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("player_status_summary").
		WithArgs("2026").
		WillReturnRows(newRowSet([]string{"status", "count"}).
			AddRow("Sat AM", 14).
			AddRow("Sun PM", 9))

	counts, err := s.PlayerStatusSummary(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, []StatusCount{
		{Status: "Sat AM", Count: 14},
		{Status: "Sun PM", Count: 9},
	}, counts)
}

func TestPlayerStatuses(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("player_statuses").
		WithArgs("2026").
		WillReturnRows(newRowSet([]string{"status"}).AddRow("Sat AM"))

	statuses, err := s.PlayerStatuses(context.Background(), "2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sat AM"}, statuses)
}
