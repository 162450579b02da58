package bingo

import (
	"testing"

	"HockeyBingoApi/internal/assert"
)

func TestIsFulfilled(t *testing.T) {
	box := testBoxscore()

	tests := []struct {
		name string
		cond EventCondition
		want bool
	}{
		{
			name: "Greater Than Is Inclusive At Threshold",
			cond: EventCondition{Category: CategoryTeam, Subject: "goals",
				Comparison: GreaterThan, Threshold: 4, TeamAbbrev: "TOR"},
			want: true,
		},
		{
			name: "Greater Than Below Threshold",
			cond: EventCondition{Category: CategoryTeam, Subject: "goals",
				Comparison: GreaterThan, Threshold: 5, TeamAbbrev: "TOR"},
			want: false,
		},
		{
			name: "Less Than Is Strict Below Threshold",
			cond: EventCondition{Category: CategoryTeam, Subject: "goals",
				Comparison: LessThan, Threshold: 3, TeamAbbrev: "MTL"},
			want: true,
		},
		{
			name: "Less Than At Threshold",
			cond: EventCondition{Category: CategoryTeam, Subject: "goals",
				Comparison: LessThan, Threshold: 2, TeamAbbrev: "MTL"},
			want: false,
		},
		{
			name: "Player Stat Fulfilled",
			cond: EventCondition{Category: CategoryForward, Subject: "goals",
				Comparison: GreaterThan, Threshold: 2, PlayerID: 8479318},
			want: true,
		},
		{
			name: "Unavailable Stat Never Fulfilled",
			cond: EventCondition{Category: CategoryForward, Subject: "faceoffs",
				Comparison: GreaterThan, Threshold: 0, PlayerID: 8479318},
			want: false,
		},
		{
			name: "Unknown Player Never Fulfilled",
			cond: EventCondition{Category: CategoryGoalie, Subject: "saves",
				Comparison: GreaterThan, Threshold: 1, PlayerID: 99},
			want: false,
		},
		{
			name: "Unknown Comparison Never Fulfilled",
			cond: EventCondition{Category: CategoryTeam, Subject: "goals",
				Comparison: "EQUALS", Threshold: 4, TeamAbbrev: "TOR"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, IsFulfilled(tt.cond, box), tt.want)
		})
	}
}

func TestEvaluateGrid(t *testing.T) {
	box := testBoxscore()

	events := []EventCondition{
		{Category: CategoryTeam, Subject: "goals", Comparison: GreaterThan,
			Threshold: 3, TeamAbbrev: "TOR"},
		{Category: CategoryTeam, Subject: "sog", Comparison: GreaterThan,
			Threshold: 30, TeamAbbrev: "MTL"},
		{Category: CategoryForward, Subject: "assists", Comparison: GreaterThan,
			Threshold: 2, PlayerID: 8478483},
		{Category: CategoryGoalie, Subject: "saves", Comparison: GreaterThan,
			Threshold: 30, PlayerID: 8478470},
	}

	crossedOff := EvaluateGrid(events, box)

	assert.Equal(t, len(crossedOff), len(events))
	assert.BoolSliceEqual(t, crossedOff, []bool{true, false, true, false})
}
