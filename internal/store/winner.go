package store

import (
	"fmt"
	"strings"
)

// WinnerKind distinguishes a single leader from a tie at the top.
type WinnerKind string

const (
	// WinnerSingle means exactly one team holds the highest count.
	WinnerSingle WinnerKind = "single"

	// WinnerTie means two or more teams share the highest count.
	WinnerTie WinnerKind = "tie"
)

// Winner is the leading team, or the teams tied for the lead.
//
// For [WinnerSingle], Teams has one element and Team is set. For [WinnerTie],
// Teams lists every tied team in enumeration order and Team is empty.
type Winner struct {
	Kind  WinnerKind `json:"kind"`
	Team  Team       `json:"team,omitempty"`
	Teams []Team     `json:"teams"`
	Count int        `json:"count"`
}

// Winner ranks the known teams by count.
//
// Only water, zero and power take part; counts recorded under an unknown
// team value are ignored. Pure, so it can be called at any time, though the
// result only means something once the goal is reached. With no check-ins
// at all it reports a three-way tie at zero.
func (s *State) Winner() Winner {
	top := -1
	var leaders []Team
	for _, t := range knownTeams {
		n := s.Counts[t]
		switch {
		case n > top:
			top = n
			leaders = []Team{t}
		case n == top:
			leaders = append(leaders, t)
		}
	}

	if len(leaders) > 1 {
		return Winner{Kind: WinnerTie, Teams: leaders, Count: top}
	}
	return Winner{Kind: WinnerSingle, Team: leaders[0], Teams: leaders, Count: top}
}

// Celebration returns the goal-reached message, or "" before the goal.
func (s *State) Celebration(goal int) string {
	if !s.GoalReached(goal) {
		return ""
	}

	w := s.Winner()
	if w.Kind == WinnerTie {
		labels := make([]string, len(w.Teams))
		for i, t := range w.Teams {
			labels[i] = t.Label()
		}
		return fmt.Sprintf("🎉 Goal reached! Attendance hit %d. It's currently a tie between %s!",
			goal, strings.Join(labels, " and "))
	}
	return fmt.Sprintf("🎉 Goal reached! %s is leading with %d check-ins.", w.Team.Label(), w.Count)
}
