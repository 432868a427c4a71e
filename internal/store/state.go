package store

import (
	"fmt"
	"strings"
)

// Attendee is one check-in record.
//
// Attendees are values; once appended to [State.CheckIns] they are never
// modified. They have no identity beyond their position in the list.
type Attendee struct {
	Name string
	Team Team
}

// ValidationError is a user-correctable check-in failure.
//
// Message is meant to be shown verbatim next to the form.
type ValidationError struct {
	// Code is a stable machine-readable identifier ("missing_name", "missing_team").
	Code string

	// Message is the human-readable text for the form.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrMissingName is returned when the trimmed name is empty.
	ErrMissingName = &ValidationError{
		Code:    "missing_name",
		Message: "Please enter attendee name before check-in.",
	}

	// ErrMissingTeam is returned when no team was selected.
	ErrMissingTeam = &ValidationError{
		Code:    "missing_team",
		Message: "Please select a team before check-in.",
	}
)

// State is the authoritative attendance state.
//
// Invariant: TotalAttendees == len(CheckIns) == sum of Counts. Counts always
// holds the three known teams; an unknown team only gets a key once someone
// checks in with it. CheckIns is append-only.
//
// State is not safe for concurrent use; see [MemoryStore].
type State struct {
	TotalAttendees int
	Counts         map[Team]int
	CheckIns       []Attendee
}

// NewState returns the empty state with all known team counts at zero.
func NewState() *State {
	counts := make(map[Team]int, len(knownTeams))
	for _, t := range knownTeams {
		counts[t] = 0
	}
	return &State{
		Counts:   counts,
		CheckIns: []Attendee{},
	}
}

// ApplyCheckIn records one attendee.
//
// The name is trimmed before use and invalid UTF-8 is replaced with U+FFFD,
// so the stored record survives a save and reload unchanged. The name is checked before the team, so a
// call reports at most one error, and a failed call leaves the state
// untouched. The team is not checked against the known set.
//
// On success it returns the new record and the welcome message.
func (s *State) ApplyCheckIn(name string, team Team) (Attendee, string, error) {
	name = strings.ToValidUTF8(strings.TrimSpace(name), "\uFFFD")
	if name == "" {
		return Attendee{}, "", ErrMissingName
	}
	if team == "" {
		return Attendee{}, "", ErrMissingTeam
	}

	if s.Counts == nil {
		s.Counts = NewState().Counts
	}

	s.TotalAttendees++
	s.Counts[team]++

	rec := Attendee{Name: name, Team: team}
	s.CheckIns = append(s.CheckIns, rec)

	return rec, WelcomeMessage(rec), nil
}

// WelcomeMessage returns the greeting shown after a successful check-in.
func WelcomeMessage(a Attendee) string {
	return fmt.Sprintf("Welcome, %s! You checked in with %s.", a.Name, a.Team.Label())
}

// Progress returns the percentage of goal reached, clamped to [0, 100].
//
// goal must be positive; a non-positive goal yields 0.
func (s *State) Progress(goal int) float64 {
	if goal <= 0 {
		return 0
	}
	pct := float64(s.TotalAttendees) / float64(goal) * 100
	return max(0, min(100, pct))
}

// GoalReached reports whether the total has reached goal.
func (s *State) GoalReached(goal int) bool {
	return goal > 0 && s.TotalAttendees >= goal
}

// Count returns the check-in count for team.
func (s *State) Count(team Team) int {
	return s.Counts[team]
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	counts := make(map[Team]int, len(s.Counts))
	for k, v := range s.Counts {
		counts[k] = v
	}
	return &State{
		TotalAttendees: s.TotalAttendees,
		Counts:         counts,
		CheckIns:       append([]Attendee{}, s.CheckIns...),
	}
}

// Consistent reports whether the total, the list length and the count sum agree.
func (s *State) Consistent() bool {
	sum := 0
	for _, n := range s.Counts {
		sum += n
	}
	return s.TotalAttendees == len(s.CheckIns) && s.TotalAttendees == sum
}
