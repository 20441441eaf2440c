package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPlayerFamilies(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`FROM player WHERE \(player_id = \$1 OR ch_name LIKE \$2 OR nickname LIKE \$3\) AND year = \$4`).
		WithArgs("P001", "%P001%", "%P001%", "2026").
		WillReturnRows(playerRows().
			AddRow("P001", "F1", "2026", "Lin Hao", "Hao", 3, "12", "Sat AM", "T1"))

	mock.ExpectQuery("parents_by_family").
		WithArgs([]string{"F1"}).
		WillReturnRows(parentRows().
			AddRow("PA01", "F1", "2026", "Lin Wei", "Wei", ""))

	mock.ExpectQuery("relatives_by_family").
		WithArgs([]string{"F1"}).
		WillReturnRows(relativeRows().
			AddRow("R01", "F1", "Grandma Lin", "grandmother", "0912-000-000", "2026"))

	result, err := s.SearchPlayerFamilies(context.Background(), "P001", "2026")
	require.NoError(t, err)

	require.Len(t, result.Players, 1)
	assert.Equal(t, "P001", result.Players[0].PlayerID)
	assert.Equal(t, 3, result.Players[0].Grade)

	require.Len(t, result.Parents, 1)
	assert.Equal(t, "PA01", result.Parents[0].ParentID)

	require.Len(t, result.Relatives, 1)
	assert.Equal(t, "grandmother", result.Relatives[0].Relationship)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPlayerFamiliesNoYearFilter(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`FROM player WHERE \(player_id = \$1 OR ch_name LIKE \$2 OR nickname LIKE \$3\)$`).
		WithArgs("Lin", "%Lin%", "%Lin%").
		WillReturnRows(playerRows())

	result, err := s.SearchPlayerFamilies(context.Background(), "Lin", "  ")
	require.NoError(t, err)
	assert.Empty(t, result.Players)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPlayerFamiliesSkipsFanOutWithoutFamilyIDs(t *testing.T) {
	mock, s := newMock(t)

	// One match, but it carries no family id — no household queries run.
	mock.ExpectQuery("FROM player WHERE").
		WithArgs("P002", "%P002%", "%P002%").
		WillReturnRows(playerRows().
			AddRow("P002", "", "2026", "Chen Yu", "", 5, "7", "", "T2"))

	result, err := s.SearchPlayerFamilies(context.Background(), "P002", "")
	require.NoError(t, err)

	assert.Len(t, result.Players, 1)
	assert.Empty(t, result.Parents)
	assert.Empty(t, result.Relatives)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPlayerFamiliesDeduplicatesFamilyIDs(t *testing.T) {
	mock, s := newMock(t)

	// Siblings share a family id; the fan-out must query it once.
	mock.ExpectQuery("FROM player WHERE").
		WithArgs("Lin", "%Lin%", "%Lin%").
		WillReturnRows(playerRows().
			AddRow("P001", "F1", "2026", "Lin Hao", "", 3, "12", "", "T1").
			AddRow("P003", "F1", "2026", "Lin Mei", "", 1, "4", "", "T1").
			AddRow("P004", "F2", "2026", "Lin Jia", "", 2, "9", "", "T2"))

	mock.ExpectQuery("parents_by_family").
		WithArgs([]string{"F1", "F2"}).
		WillReturnRows(parentRows())
	mock.ExpectQuery("relatives_by_family").
		WithArgs([]string{"F1", "F2"}).
		WillReturnRows(relativeRows())

	result, err := s.SearchPlayerFamilies(context.Background(), "Lin", "")
	require.NoError(t, err)
	assert.Len(t, result.Players, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchParentFamilies(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`FROM parent WHERE \(parent_id = \$1 OR ch_name LIKE \$2 OR nickname LIKE \$3\)`).
		WithArgs("PA01", "%PA01%", "%PA01%").
		WillReturnRows(parentRows().
			AddRow("PA01", "F1", "2026", "Lin Wei", "Wei", ""))

	mock.ExpectQuery("players_by_family").
		WithArgs([]string{"F1"}).
		WillReturnRows(playerRows().
			AddRow("P001", "F1", "2026", "Lin Hao", "Hao", 3, "12", "", "T1"))

	mock.ExpectQuery("relatives_by_family").
		WithArgs([]string{"F1"}).
		WillReturnRows(relativeRows())

	result, err := s.SearchParentFamilies(context.Background(), "PA01", "")
	require.NoError(t, err)

	assert.Len(t, result.Parents, 1)
	assert.Len(t, result.Players, 1)
	assert.Empty(t, result.Relatives)
	assert.NoError(t, mock.ExpectationsWereMet())
}
