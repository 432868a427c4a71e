package store

// Team identifies the affinity group an attendee checks in with.
//
// The known values are [TeamWater], [TeamZero] and [TeamPower]. Team is a
// string type so that unrecognized values coming from the form can still be
// counted; they render with [UnknownTeamLabel].
type Team string

const (
	// TeamWater is "Team Water Wise".
	TeamWater Team = "water"

	// TeamZero is "Team Net Zero".
	TeamZero Team = "zero"

	// TeamPower is "Team Renewables".
	TeamPower Team = "power"
)

// UnknownTeamLabel is the label shown for a team value outside the known set.
const UnknownTeamLabel = "Unknown Team"

// knownTeams is the enumeration order used for ties and rendering.
var knownTeams = [...]Team{TeamWater, TeamZero, TeamPower}

// KnownTeams returns the known teams in enumeration order.
func KnownTeams() []Team {
	return append([]Team(nil), knownTeams[:]...)
}

// Label returns the display label for the team.
func (t Team) Label() string {
	switch t {
	case TeamWater:
		return "Team Water Wise"
	case TeamZero:
		return "Team Net Zero"
	case TeamPower:
		return "Team Renewables"
	default:
		return UnknownTeamLabel
	}
}

// Known reports whether t is one of the three known teams.
func (t Team) Known() bool {
	switch t {
	case TeamWater, TeamZero, TeamPower:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t Team) String() string {
	return string(t)
}
