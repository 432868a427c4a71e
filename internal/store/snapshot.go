package store

// TeamCount is one row of the team counters.
type TeamCount struct {
	Team  Team   `json:"team"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CheckInView is one row of the check-in list.
type CheckInView struct {
	// Position is the 1-based position in insertion order.
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Team      Team   `json:"team"`
	TeamLabel string `json:"teamLabel"`
}

// Snapshot is the read projection the dashboard renders after every change.
//
// It is a plain value built from a [State]; modifying it does not affect the
// store. Winner and Celebration are only set once the goal is reached.
type Snapshot struct {
	TotalAttendees int           `json:"totalAttendees"`
	Teams          []TeamCount   `json:"teams"`
	Goal           int           `json:"goal"`
	Progress       float64       `json:"progress"`
	GoalReached    bool          `json:"goalReached"`
	Winner         *Winner       `json:"winner,omitempty"`
	Celebration    string        `json:"celebration,omitempty"`
	CheckIns       []CheckInView `json:"checkIns"`
}

// Snapshot builds the read projection for goal.
func (s *State) Snapshot(goal int) Snapshot {
	teams := make([]TeamCount, len(knownTeams))
	for i, t := range knownTeams {
		teams[i] = TeamCount{Team: t, Label: t.Label(), Count: s.Counts[t]}
	}

	checkIns := make([]CheckInView, len(s.CheckIns))
	for i, a := range s.CheckIns {
		checkIns[i] = CheckInView{
			Position:  i + 1,
			Name:      a.Name,
			Team:      a.Team,
			TeamLabel: a.Team.Label(),
		}
	}

	snap := Snapshot{
		TotalAttendees: s.TotalAttendees,
		Teams:          teams,
		Goal:           goal,
		Progress:       s.Progress(goal),
		GoalReached:    s.GoalReached(goal),
		CheckIns:       checkIns,
	}
	if snap.GoalReached {
		w := s.Winner()
		snap.Winner = &w
		snap.Celebration = s.Celebration(goal)
	}
	return snap
}

// TeamCount returns the count for team, or 0 if team is not listed.
func (s Snapshot) TeamCount(team Team) int {
	for _, tc := range s.Teams {
		if tc.Team == team {
			return tc.Count
		}
	}
	return 0
}
