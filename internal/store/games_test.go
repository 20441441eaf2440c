package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchGamesFilters(t *testing.T) {
	mock, s := newMock(t)

	cols := []string{
		"ser_no", "year", "season", "round", "level", "group_name",
		"game_date", "time_from", "time_to", "place", "head_umpire",
		"g_team_id", "h_team_id", "g_score", "h_score", "g_point", "h_point",
		"clothes", "guest_name", "home_name",
	}

	mock.ExpectQuery(`lg\.season = \$1 AND lg\.level = \$2 AND \(guest\.team_id = \$3 OR home\.team_id = \$4\) ORDER BY lg\.season ASC, LENGTH\(lg\.ser_no\) ASC, lg\.ser_no ASC`).
		WithArgs("2026S", "Major", "T1", "T1").
		WillReturnRows(newRowSet(cols).
			AddRow("2", "2026", "2026S", "Prelim", "Major", "A", "2026-03-01",
				"09:00", "11:00", "Field 1", "Wang", "T2", "T1", 3, 5, 0, 2,
				"white", "Eagles", "Hawks"))

	games, err := s.SearchGames(context.Background(), "T1", "2026S", "Major")
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, "2", g.SerNo)
	assert.Equal(t, "Eagles", g.GuestName)
	assert.Equal(t, "Hawks", g.HomeName)
	assert.Equal(t, 5, g.HScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchGamesNoFilters(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`(?s)FROM league_game lg.*ORDER BY lg\.season ASC`).
		WillReturnRows(newRowSet([]string{
			"ser_no", "year", "season", "round", "level", "group_name",
			"game_date", "time_from", "time_to", "place", "head_umpire",
			"g_team_id", "h_team_id", "g_score", "h_score", "g_point", "h_point",
			"clothes", "guest_name", "home_name",
		}))

	games, err := s.SearchGames(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUmpireRanking(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`head_umpire IS NOT NULL AND head_umpire != '' AND season = \$1 GROUP BY head_umpire ORDER BY duty_count DESC`).
		WithArgs("2026S").
		WillReturnRows(newRowSet([]string{"head_umpire", "duty_count"}).
			AddRow("Wang", 7).
			AddRow("Chen", 4))

	ranking, err := s.UmpireRanking(context.Background(), "", "", "2026S")
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, UmpireDuty{HeadUmpire: "Wang", DutyCount: 7}, ranking[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGamesForStandings(t *testing.T) {
	mock, s := newMock(t)

	cols := []string{
		"ser_no", "group_name", "h_team_id", "g_team_id",
		"h_score", "g_score", "h_point", "g_point", "home_name", "guest_name",
	}

	mock.ExpectQuery(`lg\.season = \$1 AND lg\.round = \$2 AND lg\.level = \$3 AND lg\.group_name LIKE \$4`).
		WithArgs("2026S", "Final", "Major", "%A%").
		WillReturnRows(newRowSet(cols).
			AddRow("1", "A", "T1", "T2", 5, 3, 2, 0, strPtr("Hawks"), strPtr("Eagles")).
			AddRow("2", "A", "T3", "T1", 1, 1, 1, 1, (*string)(nil), strPtr("Hawks")))

	games, err := s.GamesForStandings(context.Background(), "2026S", "Final", "Major", "A")
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "Hawks", *games[0].HomeName)
	assert.Nil(t, games[1].HomeName, "join miss comes through as nil name")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGamesForStandingsNoGroupFilter(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`lg\.season = \$1 AND lg\.round = \$2 AND lg\.level = \$3 ORDER BY`).
		WithArgs("2026S", "Final", "Major").
		WillReturnRows(newRowSet([]string{
			"ser_no", "group_name", "h_team_id", "g_team_id",
			"h_score", "g_score", "h_point", "g_point", "home_name", "guest_name",
		}))

	games, err := s.GamesForStandings(context.Background(), "2026S", "Final", "Major", "")
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.NoError(t, mock.ExpectationsWereMet())
}
