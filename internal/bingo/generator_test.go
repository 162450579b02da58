package bingo

import (
	"testing"

	"HockeyBingoApi/internal/assert"
	"HockeyBingoApi/internal/nhl"

	"github.com/google/go-cmp/cmp"
)

func testRoster(teamAbbrev string, base int64) nhl.Roster {
	roster := nhl.Roster{}
	names := []string{"Avery Hall", "Ben Ito", "Cole Dunn", "Dev Rao", "Eli Ward",
		"Finn Ames", "Gus Lund", "Hugo Beck", "Ivan Ross", "Jon Pyle", "Kai Moss", "Leo Vane"}

	for i := 0; i < 12; i++ {
		roster.Forwards = append(roster.Forwards, nhl.RosterPlayer{
			ID:       base + int64(i),
			FullName: names[i] + " (" + teamAbbrev + " F)",
		})
	}
	for i := 0; i < 6; i++ {
		roster.Defensemen = append(roster.Defensemen, nhl.RosterPlayer{
			ID:       base + 100 + int64(i),
			FullName: names[i] + " (" + teamAbbrev + " D)",
		})
	}
	for i := 0; i < 2; i++ {
		roster.Goalies = append(roster.Goalies, nhl.RosterPlayer{
			ID:       base + 200 + int64(i),
			FullName: names[i] + " (" + teamAbbrev + " G)",
		})
	}

	return roster
}

func testGame() nhl.Game {
	return nhl.Game{
		ID:       2023020204,
		HomeTeam: nhl.TeamRef{Abbrev: "TOR"},
		AwayTeam: nhl.TeamRef{Abbrev: "MTL"},
	}
}

func TestGenerateFullTicket(t *testing.T) {
	game := testGame()
	rosters := nhl.GameRosters{
		Home: testRoster("TOR", 1000),
		Away: testRoster("MTL", 2000),
	}

	conditions := Generate(game, GridSize, rosters)

	assert.Equal(t, len(conditions), GridSize)

	seen := make(map[string]bool)
	categoryCounts := make(map[EventCategory]int)
	teamCounts := make(map[string]int)

	for _, cond := range conditions {
		sig := signature(cond)
		if seen[sig] {
			t.Errorf("duplicate signature %q", sig)
		}
		seen[sig] = true

		categoryCounts[cond.Category]++
		teamCounts[cond.TeamAbbrev]++

		assert.Equal(t, cond.Comparison, GreaterThan)
		assert.Equal(t, cond.Threshold > 0, true)

		switch cond.Category {
		case CategoryForward, CategoryDefense, CategoryGoalie:
			assert.Equal(t, cond.PlayerID != 0, true)
			assert.Equal(t, cond.PlayerName != "", true)
		case CategoryTeam, CategoryPenalty:
			assert.Equal(t, cond.PlayerID, 0)
			assert.Equal(t, cond.PlayerName, "")
		}
	}

	// 9 targets split 45/45/10: four forwards, four defensemen, one goalie.
	assert.Equal(t, categoryCounts[CategoryForward], 4)
	assert.Equal(t, categoryCounts[CategoryDefense], 4)
	assert.Equal(t, categoryCounts[CategoryGoalie], 1)

	// Odd remainder goes to the away side.
	assert.Equal(t, teamCounts["TOR"], 4)
	assert.Equal(t, teamCounts["MTL"], 5)
}

func TestGenerateIsDeterministicPerGame(t *testing.T) {
	game := testGame()
	rosters := nhl.GameRosters{
		Home: testRoster("TOR", 1000),
		Away: testRoster("MTL", 2000),
	}

	first := Generate(game, GridSize, rosters)
	second := Generate(game, GridSize, rosters)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated generation differs for the same game (-first +second):\n%s", diff)
	}
}

func TestGenerateSequentialIDs(t *testing.T) {
	game := testGame()
	rosters := nhl.GameRosters{
		Home: testRoster("TOR", 1000),
		Away: testRoster("MTL", 2000),
	}

	conditions := Generate(game, GridSize, rosters)
	for i, cond := range conditions {
		assert.Equal(t, cond.ID, i+1)
	}
}

func TestGenerateEmptyRosters(t *testing.T) {
	game := testGame()

	conditions := Generate(game, GridSize, nhl.GameRosters{})

	if len(conditions) >= GridSize {
		t.Errorf("got %d conditions from empty rosters, expected fewer than %d",
			len(conditions), GridSize)
	}
}

func TestGenerateOneSidedRoster(t *testing.T) {
	game := testGame()
	rosters := nhl.GameRosters{Home: testRoster("TOR", 1000)}

	conditions := Generate(game, GridSize, rosters)

	// The away side cannot produce player conditions, so the ticket comes up
	// short rather than erroring.
	if len(conditions) >= GridSize {
		t.Errorf("got %d conditions, expected an under-filled ticket", len(conditions))
	}
	for _, cond := range conditions {
		switch cond.Category {
		case CategoryForward, CategoryDefense, CategoryGoalie:
			if cond.TeamAbbrev == "MTL" {
				t.Errorf("player condition generated for a team with no roster: %+v", cond)
			}
		}
	}
}

func TestGenerateZeroTarget(t *testing.T) {
	game := testGame()
	rosters := nhl.GameRosters{
		Home: testRoster("TOR", 1000),
		Away: testRoster("MTL", 2000),
	}

	assert.Equal(t, len(Generate(game, 0, rosters)), 0)
}
