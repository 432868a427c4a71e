package store

import (
	"reflect"
	"testing"
)

func TestWinner(t *testing.T) {
	tests := []struct {
		name               string
		water, zero, power int
		want               Winner
	}{
		{
			name:  "single leader",
			water: 5, zero: 2, power: 1,
			want: Winner{Kind: WinnerSingle, Team: TeamWater, Teams: []Team{TeamWater}, Count: 5},
		},
		{
			name:  "single leader last in order",
			water: 1, zero: 2, power: 4,
			want: Winner{Kind: WinnerSingle, Team: TeamPower, Teams: []Team{TeamPower}, Count: 4},
		},
		{
			name:  "two-way tie",
			water: 3, zero: 3, power: 1,
			want: Winner{Kind: WinnerTie, Teams: []Team{TeamWater, TeamZero}, Count: 3},
		},
		{
			name:  "tie keeps enumeration order",
			water: 1, zero: 6, power: 6,
			want: Winner{Kind: WinnerTie, Teams: []Team{TeamZero, TeamPower}, Count: 6},
		},
		{
			name: "empty is a three-way tie",
			want: Winner{Kind: WinnerTie, Teams: []Team{TeamWater, TeamZero, TeamPower}, Count: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stateWithCounts(tt.water, tt.zero, tt.power).Winner()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Winner() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWinner_IgnoresUnknownTeams(t *testing.T) {
	st := stateWithCounts(2, 1, 0)
	for i := 0; i < 10; i++ {
		_, _, _ = st.ApplyCheckIn("x", "solar")
	}

	got := st.Winner()
	if got.Kind != WinnerSingle || got.Team != TeamWater || got.Count != 2 {
		t.Errorf("Winner() = %+v, want single water with 2", got)
	}
}

func TestCelebration(t *testing.T) {
	tests := []struct {
		name               string
		water, zero, power int
		goal               int
		want               string
	}{
		{"before goal", 10, 5, 5, 50, ""},
		{"single leader", 30, 15, 5, 50, "🎉 Goal reached! Team Water Wise is leading with 30 check-ins."},
		{"tie", 20, 20, 10, 50, "🎉 Goal reached! Attendance hit 50. It's currently a tie between Team Water Wise and Team Net Zero!"},
		{"three-way tie", 1, 1, 1, 3, "🎉 Goal reached! Attendance hit 3. It's currently a tie between Team Water Wise and Team Net Zero and Team Renewables!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stateWithCounts(tt.water, tt.zero, tt.power).Celebration(tt.goal)
			if got != tt.want {
				t.Errorf("Celebration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	st := stateWithCounts(1, 2, 0)

	snap := st.Snapshot(50)

	if snap.TotalAttendees != 3 {
		t.Errorf("TotalAttendees = %d, want 3", snap.TotalAttendees)
	}
	if snap.Goal != 50 {
		t.Errorf("Goal = %d, want 50", snap.Goal)
	}
	if snap.Progress != 6 {
		t.Errorf("Progress = %v, want 6", snap.Progress)
	}
	if snap.GoalReached || snap.Winner != nil || snap.Celebration != "" {
		t.Errorf("winner fields set before goal: %+v", snap)
	}

	wantTeams := []TeamCount{
		{Team: TeamWater, Label: "Team Water Wise", Count: 1},
		{Team: TeamZero, Label: "Team Net Zero", Count: 2},
		{Team: TeamPower, Label: "Team Renewables", Count: 0},
	}
	if !reflect.DeepEqual(snap.Teams, wantTeams) {
		t.Errorf("Teams = %+v, want %+v", snap.Teams, wantTeams)
	}
	if snap.TeamCount(TeamZero) != 2 {
		t.Errorf("TeamCount(zero) = %d, want 2", snap.TeamCount(TeamZero))
	}

	if len(snap.CheckIns) != 3 {
		t.Fatalf("len(CheckIns) = %d, want 3", len(snap.CheckIns))
	}
	first := snap.CheckIns[0]
	if first.Position != 1 || first.Name != "water-0" || first.TeamLabel != "Team Water Wise" {
		t.Errorf("CheckIns[0] = %+v", first)
	}
}

func TestSnapshot_GoalReached(t *testing.T) {
	snap := stateWithCounts(2, 1, 0).Snapshot(3)

	if !snap.GoalReached {
		t.Fatal("GoalReached = false, want true")
	}
	if snap.Winner == nil || snap.Winner.Team != TeamWater {
		t.Errorf("Winner = %+v, want water", snap.Winner)
	}
	if snap.Celebration == "" {
		t.Error("Celebration should be set once the goal is reached")
	}
}
