package store

// Row types mirror the directory schema. JSON field names follow the wire
// format the browser scripts consume, which in turn follows the original
// spreadsheet column names (hence the mixed snake/camel casing on games).

// Player is one registered player for a year. FamilyID groups the player
// with parent/relative rows of the same household; it is a shared value,
// not an enforced reference.
type Player struct {
	PlayerID     string `json:"player_id"`
	FamilyID     string `json:"family_id"`
	Year         string `json:"year"`
	ChName       string `json:"ch_name"`
	Nickname     string `json:"nickname"`
	Grade        int    `json:"grade"`
	JerseyNumber string `json:"jersey_number"`
	Status       string `json:"status"`
	PTeamID      string `json:"p_team_id"`
}

type Parent struct {
	ParentID string `json:"parent_id"`
	FamilyID string `json:"family_id"`
	Year     string `json:"year"`
	ChName   string `json:"ch_name"`
	Nickname string `json:"nickname"`
	Status   string `json:"status"`
}

type Relative struct {
	RelativeID   string `json:"relative_id"`
	FamilyID     string `json:"family_id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Contact      string `json:"contact"`
	Year         string `json:"year"`
}

// Team is scoped by (year, level); TeamID is the public handle.
type Team struct {
	TeamID        string `json:"team_id"`
	Year          string `json:"year"`
	Level         string `json:"level"`
	TeamName      string `json:"team_name"`
	PracticeTime  string `json:"practice_time"`
	PracticePlace string `json:"practice_place"`
	RainTime      string `json:"rain_time"`
	RainPlace     string `json:"rain_place"`
	NightTime     string `json:"night_time"`
	NightPlace    string `json:"night_place"`
}

// StaffAssignment is one coach/staff position on a team, joined back to
// the parent holding it.
type StaffAssignment struct {
	Year      string `json:"year"`
	TeamID    string `json:"team_id"`
	Role      string `json:"role"`
	RParentID string `json:"r_parent_id"`
	Nickname  string `json:"nickname"`
}

// Game is one league game with team names resolved for display. GuestName
// and HomeName come from a left join, so they are empty when the team id
// has no team row.
type Game struct {
	SerNo      string `json:"serNo"`
	Year       string `json:"year"`
	Season     string `json:"season"`
	Round      string `json:"round"`
	Level      string `json:"level"`
	Group      string `json:"group"`
	Date       string `json:"date"`
	From       string `json:"from"`
	To         string `json:"to"`
	Place      string `json:"place"`
	HeadUmpire string `json:"head_umpire"`
	GTeamID    string `json:"g_team_id"`
	HTeamID    string `json:"h_team_id"`
	GScore     int    `json:"gScore"`
	HScore     int    `json:"hScore"`
	GPoint     int    `json:"gPoint"`
	HPoint     int    `json:"hPoint"`
	Clothes    string `json:"clothes"`
	GuestName  string `json:"guest_name"`
	HomeName   string `json:"home_name"`
}

// UmpireDuty is one row of the head-umpire attendance tally.
type UmpireDuty struct {
	HeadUmpire string `json:"head_umpire"`
	DutyCount  int    `json:"duty_count"`
}

// StatusCount is one row of the player-count-by-status summary.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
