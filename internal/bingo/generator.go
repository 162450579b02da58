package bingo

import (
	"fmt"
	"math/rand"

	"HockeyBingoApi/internal/nhl"
)

var (
	skaterSubjects = []string{"goals", "assists", "hits", "sog", "blockedShots", "toi"}
	goalieSubjects = []string{"saves"}
	teamSubjects   = []string{"goals", "sog", "penaltyMinutes"}
)

type thresholdRange struct {
	min, max int
}

// Per-subject threshold ranges tuned to realistic single-game numbers.
var thresholdRanges = map[EventCategory]map[string]thresholdRange{
	CategoryForward: {
		"goals":        {1, 2},
		"assists":      {1, 2},
		"hits":         {2, 5},
		"sog":          {2, 5},
		"blockedShots": {1, 3},
		"toi":          {15, 21},
	},
	CategoryDefense: {
		"goals":        {1, 1},
		"assists":      {1, 2},
		"hits":         {2, 5},
		"sog":          {1, 4},
		"blockedShots": {2, 5},
		"toi":          {18, 24},
	},
	CategoryGoalie: {
		"saves": {26, 33},
	},
	CategoryTeam: {
		"goals": {3, 5},
		"sog":   {27, 36},
	},
	CategoryPenalty: {
		"penaltyMinutes": {4, 10},
	},
}

// quotaCategories is the fixed draw order for quota bookkeeping. PENALTY is
// not drawn directly: it is recorded when a TEAM draw lands on the
// penaltyMinutes subject.
var quotaCategories = []EventCategory{CategoryForward, CategoryDefense, CategoryGoalie, CategoryTeam}

type generationTeam struct {
	abbrev string
	roster nhl.Roster
}

// Generate synthesizes up to targetCount non-duplicate conditions for a game,
// balanced across categories and teams. Generation is seeded from the game id
// so the same game always yields the same ticket. If the attempt budget runs
// out before targetCount conditions exist (thin or empty rosters), the short
// sequence is returned as-is; callers must check the length.
func Generate(game nhl.Game, targetCount int, rosters nhl.GameRosters) []EventCondition {
	rng := rand.New(rand.NewSource(game.ID))

	// Forward and defense each take ~45% of the target; the remainder splits
	// between team and goalie conditions, with the last category computed
	// absorbing any leftover. Integer truncation here is deliberate.
	forwardQuota := targetCount * 45 / 100
	defenseQuota := targetCount * 45 / 100
	remaining := targetCount - forwardQuota - defenseQuota
	teamQuota := remaining / 2
	goalieQuota := remaining - teamQuota

	categoryQuota := map[EventCategory]int{
		CategoryForward: forwardQuota,
		CategoryDefense: defenseQuota,
		CategoryGoalie:  goalieQuota,
		CategoryTeam:    teamQuota,
	}

	teams := []generationTeam{
		{abbrev: game.HomeTeam.Abbrev, roster: rosters.Home},
		{abbrev: game.AwayTeam.Abbrev, roster: rosters.Away},
	}
	teamQuotas := []int{targetCount / 2, targetCount - targetCount/2}

	seen := make(map[string]bool)
	conditions := make([]EventCondition, 0, targetCount)

	maxAttempts := targetCount * 5
	for attempt := 0; attempt < maxAttempts && len(conditions) < targetCount; attempt++ {
		category, ok := pickCategory(rng, categoryQuota)
		if !ok {
			break
		}
		teamIdx, ok := pickTeam(rng, teamQuotas)
		if !ok {
			break
		}

		cond, ok := synthesize(rng, category, teams[teamIdx])
		if !ok {
			continue
		}

		sig := signature(cond)
		if seen[sig] {
			continue
		}

		seen[sig] = true
		categoryQuota[category]--
		teamQuotas[teamIdx]--
		cond.ID = len(conditions) + 1
		conditions = append(conditions, cond)
	}

	return conditions
}

func pickCategory(rng *rand.Rand, quota map[EventCategory]int) (EventCategory, bool) {
	// Iterate the fixed order, not the map, so a given seed always draws the
	// same sequence.
	open := make([]EventCategory, 0, len(quotaCategories))
	for _, category := range quotaCategories {
		if quota[category] > 0 {
			open = append(open, category)
		}
	}

	if len(open) == 0 {
		return "", false
	}
	return open[rng.Intn(len(open))], true
}

func pickTeam(rng *rand.Rand, quotas []int) (int, bool) {
	open := make([]int, 0, len(quotas))
	for i, quota := range quotas {
		if quota > 0 {
			open = append(open, i)
		}
	}

	if len(open) == 0 {
		return 0, false
	}
	return open[rng.Intn(len(open))], true
}

func synthesize(rng *rand.Rand, category EventCategory, team generationTeam) (EventCondition, bool) {
	switch category {
	case CategoryForward:
		return playerCondition(rng, category, team, team.roster.Forwards, skaterSubjects)
	case CategoryDefense:
		return playerCondition(rng, category, team, team.roster.Defensemen, skaterSubjects)
	case CategoryGoalie:
		return playerCondition(rng, category, team, team.roster.Goalies, goalieSubjects)
	case CategoryTeam:
		subject := teamSubjects[rng.Intn(len(teamSubjects))]
		recorded := CategoryTeam
		if subject == "penaltyMinutes" {
			recorded = CategoryPenalty
		}
		return EventCondition{
			Category:   recorded,
			Subject:    subject,
			Comparison: GreaterThan,
			Threshold:  randThreshold(rng, recorded, subject),
			TeamAbbrev: team.abbrev,
		}, true
	default:
		return EventCondition{}, false
	}
}

func playerCondition(rng *rand.Rand, category EventCategory, team generationTeam,
	players []nhl.RosterPlayer, subjects []string) (EventCondition, bool) {
	if len(players) == 0 {
		return EventCondition{}, false
	}

	player := players[rng.Intn(len(players))]
	subject := subjects[rng.Intn(len(subjects))]

	return EventCondition{
		Category:   category,
		Subject:    subject,
		Comparison: GreaterThan,
		Threshold:  randThreshold(rng, category, subject),
		PlayerID:   player.ID,
		PlayerName: player.FullName,
		TeamAbbrev: team.abbrev,
	}, true
}

func randThreshold(rng *rand.Rand, category EventCategory, subject string) int {
	bounds, ok := thresholdRanges[category][subject]
	if !ok {
		return 1
	}
	return bounds.min + rng.Intn(bounds.max-bounds.min+1)
}

// signature is the dedup key preventing two conditions from asking the same
// stat of the same player or team.
func signature(cond EventCondition) string {
	return fmt.Sprintf("%s|%s|%d|%s", cond.Category, cond.TeamAbbrev, cond.PlayerID, cond.Subject)
}
