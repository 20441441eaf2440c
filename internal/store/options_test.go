package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasons(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("seasons").
		WillReturnRows(newRowSet([]string{"season"}).
			AddRow("2026S").
			AddRow("2025F"))

	seasons, err := s.Seasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026S", "2025F"}, seasons)
}

func TestRoundsUnknownSeason(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("rounds_by_season").
		WithArgs("1999X").
		WillReturnRows(newRowSet([]string{"round"}))

	rounds, err := s.Rounds(context.Background(), "1999X")
	require.NoError(t, err)
	assert.Empty(t, rounds, "unknown season enumerates to nothing")
}

func TestLevelsByRound(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("levels_by_round").
		WithArgs("2026S", "Prelim").
		WillReturnRows(newRowSet([]string{"level"}).AddRow("Major").AddRow("Minor"))

	levels, err := s.LevelsByRound(context.Background(), "2026S", "Prelim")
	require.NoError(t, err)
	assert.Equal(t, []string{"Major", "Minor"}, levels)
}

func TestStringColumnPropagatesError(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("team_levels").
		WillReturnError(errors.New("connection closed"))

	_, err := s.TeamLevels(context.Background())
	assert.ErrorContains(t, err, "team_levels")
}
