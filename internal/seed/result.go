// Package seed loads a small demonstration dataset so a fresh database
// has something to search, schedule, and rank before the first real
// spreadsheet import.
package seed

import "fmt"

// Result tracks counts and errors from a seeding run.
type Result struct {
	TeamsUpserted     int
	PlayersUpserted   int
	ParentsUpserted   int
	RelativesUpserted int
	StaffUpserted     int
	GamesUpserted     int
	Errors            []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seeding run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"teams=%d players=%d parents=%d relatives=%d staff=%d games=%d errors=%d",
		r.TeamsUpserted, r.PlayersUpserted, r.ParentsUpserted,
		r.RelativesUpserted, r.StaffUpserted, r.GamesUpserted,
		len(r.Errors),
	)
}
