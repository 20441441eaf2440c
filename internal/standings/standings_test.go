package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldside/leaguedesk/internal/store"
)

func name(s string) *string { return &s }

func game(serNo, home, guest string, hScore, gScore, hPoint, gPoint int) store.GameResult {
	return store.GameResult{
		SerNo:     serNo,
		Group:     "A",
		HTeamID:   home,
		GTeamID:   guest,
		HScore:    hScore,
		GScore:    gScore,
		HPoint:    hPoint,
		GPoint:    gPoint,
		HomeName:  name(home + " Name"),
		GuestName: name(guest + " Name"),
	}
}

func TestExpand(t *testing.T) {
	obs := Expand([]store.GameResult{game("1", "T1", "T2", 5, 3, 2, 0)})
	require.Len(t, obs, 2)

	assert.Equal(t, Observation{
		TeamID: "T1", TeamName: "T1 Name", Group: "A",
		Points: 2, RunsScored: 5, RunsAllowed: 3,
	}, obs[0])
	assert.Equal(t, Observation{
		TeamID: "T2", TeamName: "T2 Name", Group: "A",
		Points: 0, RunsScored: 3, RunsAllowed: 5,
	}, obs[1])
}

func TestExpandDropsUnknownTeams(t *testing.T) {
	g := game("1", "T1", "GHOST", 5, 3, 2, 0)
	g.GuestName = nil

	obs := Expand([]store.GameResult{g})
	require.Len(t, obs, 1)
	assert.Equal(t, "T1", obs[0].TeamID)
}

func TestRankTwoGameRoundTrip(t *testing.T) {
	// T1 and T2 meet twice with roles swapped; both finish on 2 points
	// and the tie falls to runs allowed.
	games := []store.GameResult{
		game("1", "T1", "T2", 5, 3, 2, 0),
		game("2", "T2", "T1", 2, 4, 0, 2),
	}

	table := Compute(games)
	require.Len(t, table, 2)

	t1, t2 := table[0], table[1]
	assert.Equal(t, "T1", t1.TeamID)
	assert.Equal(t, 2, t1.TotalPoints)
	assert.Equal(t, 9, t1.TotalRunsScored)
	assert.Equal(t, 5, t1.TotalRunsAllowed)
	assert.Equal(t, 2, t1.GamesPlayed)

	assert.Equal(t, "T2", t2.TeamID)
	assert.Equal(t, 2, t2.TotalPoints)
	assert.Equal(t, 5, t2.TotalRunsScored)
	assert.Equal(t, 9, t2.TotalRunsAllowed)
	assert.Equal(t, 2, t2.GamesPlayed)
}

func TestRankOrdering(t *testing.T) {
	tests := []struct {
		name string
		obs  []Observation
		want []string
	}{
		{
			name: "points decide",
			obs: []Observation{
				{TeamID: "A", Points: 0},
				{TeamID: "B", Points: 3},
				{TeamID: "C", Points: 1},
			},
			want: []string{"B", "C", "A"},
		},
		{
			name: "runs allowed breaks point tie",
			obs: []Observation{
				{TeamID: "A", Points: 2, RunsAllowed: 7},
				{TeamID: "B", Points: 2, RunsAllowed: 3},
			},
			want: []string{"B", "A"},
		},
		{
			name: "runs scored breaks remaining tie",
			obs: []Observation{
				{TeamID: "A", Points: 2, RunsAllowed: 3, RunsScored: 4},
				{TeamID: "B", Points: 2, RunsAllowed: 3, RunsScored: 9},
			},
			want: []string{"B", "A"},
		},
		{
			name: "full tie keeps first-observation order",
			obs: []Observation{
				{TeamID: "X", Points: 1, RunsAllowed: 2, RunsScored: 2},
				{TeamID: "Y", Points: 1, RunsAllowed: 2, RunsScored: 2},
			},
			want: []string{"X", "Y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Rank(tt.obs)
			got := make([]string, len(table))
			for i, row := range table {
				got[i] = row.TeamID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRankGamesPlayedCountsObservations(t *testing.T) {
	games := []store.GameResult{
		game("1", "T1", "T2", 1, 0, 2, 0),
		game("2", "T1", "T3", 0, 0, 1, 1),
		game("3", "T2", "T3", 4, 2, 2, 0),
	}

	table := Compute(games)
	require.Len(t, table, 3)

	total := 0
	for _, row := range table {
		total += row.GamesPlayed
	}
	assert.Equal(t, 2*len(games), total)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Compute(nil))
}
