package bingo

import (
	"strings"

	"HockeyBingoApi/internal/nhl"
)

// ResolveValue resolves a condition's subject against a box-score snapshot.
// The second return value reports availability: a stat the snapshot simply
// does not carry resolves to unavailable, which is distinct from an earned
// value of zero.
func ResolveValue(box *nhl.Boxscore, cond EventCondition) (int, bool) {
	subject := cond.Subject
	for _, prefix := range []string{"player.", "team.", "goalie."} {
		subject = strings.TrimPrefix(subject, prefix)
	}

	switch cond.Category {
	case CategoryTeam, CategoryPenalty:
		return resolveTeamValue(box, cond.TeamAbbrev, subject)
	case CategoryForward, CategoryDefense, CategoryGoalie:
		return resolvePlayerValue(box, cond, subject)
	default:
		return 0, false
	}
}

func resolveTeamValue(box *nhl.Boxscore, teamAbbrev, subject string) (int, bool) {
	var info nhl.TeamInfo
	var players nhl.TeamPlayerStats

	switch teamAbbrev {
	case box.HomeTeam.Abbrev:
		info = box.HomeTeam
		players = box.PlayerByGameStats.HomeTeam
	case box.AwayTeam.Abbrev:
		info = box.AwayTeam
		players = box.PlayerByGameStats.AwayTeam
	default:
		return 0, false
	}

	switch subject {
	case "goals":
		return info.Score, true
	case "sog":
		return info.Sog, true
	case "penaltyMinutes", "pim", "penalties":
		// Goalie penalty minutes are charged to a skater on the ice, so only
		// skaters count here.
		total := 0
		for _, skater := range append(players.Forwards, players.Defense...) {
			total += skater.Pim
		}
		return total, true
	default:
		return 0, false
	}
}

func resolvePlayerValue(box *nhl.Boxscore, cond EventCondition, subject string) (int, bool) {
	skaters := allSkaters(box)
	goalies := allGoalies(box)

	if cond.PlayerID != 0 {
		for _, skater := range skaters {
			if skater.PlayerID == cond.PlayerID {
				return skaterValue(skater, subject)
			}
		}
		for _, goalie := range goalies {
			if goalie.PlayerID == cond.PlayerID {
				return goalieValue(goalie, subject)
			}
		}
		return 0, false
	}

	if cond.PlayerName != "" {
		for _, skater := range skaters {
			if strings.EqualFold(skater.Name, cond.PlayerName) {
				return skaterValue(skater, subject)
			}
		}
		for _, goalie := range goalies {
			if strings.EqualFold(goalie.Name, cond.PlayerName) {
				return goalieValue(goalie, subject)
			}
		}
	}

	return 0, false
}

func allSkaters(box *nhl.Boxscore) []nhl.SkaterStats {
	skaters := make([]nhl.SkaterStats, 0)
	skaters = append(skaters, box.PlayerByGameStats.HomeTeam.Forwards...)
	skaters = append(skaters, box.PlayerByGameStats.HomeTeam.Defense...)
	skaters = append(skaters, box.PlayerByGameStats.AwayTeam.Forwards...)
	skaters = append(skaters, box.PlayerByGameStats.AwayTeam.Defense...)
	return skaters
}

func allGoalies(box *nhl.Boxscore) []nhl.GoalieStats {
	goalies := make([]nhl.GoalieStats, 0)
	goalies = append(goalies, box.PlayerByGameStats.HomeTeam.Goalies...)
	goalies = append(goalies, box.PlayerByGameStats.AwayTeam.Goalies...)
	return goalies
}

func skaterValue(stats nhl.SkaterStats, subject string) (int, bool) {
	switch subject {
	case "goals":
		return stats.Goals, true
	case "assists":
		return stats.Assists, true
	case "points":
		return stats.Points, true
	case "hits":
		return stats.Hits, true
	case "sog":
		return stats.Sog, true
	case "blockedShots":
		return stats.BlockedShots, true
	case "pim", "penaltyMinutes":
		return stats.Pim, true
	case "toi":
		return parseToiMinutes(stats.Toi), true
	default:
		return 0, false
	}
}

func goalieValue(stats nhl.GoalieStats, subject string) (int, bool) {
	switch subject {
	case "saves":
		return stats.Saves, true
	case "goalsAgainst", "ga":
		return stats.GoalsAgainst, true
	case "toi":
		return parseToiMinutes(stats.Toi), true
	default:
		return 0, false
	}
}

// parseToiMinutes converts a "MM:SS" or "H:MM:SS" time-on-ice string to whole
// minutes, truncating seconds. Malformed or blank input yields 0, not
// unavailable: a player listed with no TOI has simply not skated yet.
func parseToiMinutes(toi string) int {
	parts := strings.Split(toi, ":")

	switch len(parts) {
	case 2:
		minutes, ok := parseClockPart(parts[0])
		if !ok {
			return 0
		}
		if _, ok := parseClockPart(parts[1]); !ok {
			return 0
		}
		return minutes
	case 3:
		hours, ok := parseClockPart(parts[0])
		if !ok {
			return 0
		}
		minutes, ok := parseClockPart(parts[1])
		if !ok {
			return 0
		}
		if _, ok := parseClockPart(parts[2]); !ok {
			return 0
		}
		return hours*60 + minutes
	default:
		return 0
	}
}

func parseClockPart(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	value := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		value = value*10 + int(r-'0')
	}

	return value, true
}
