package bingo

import "HockeyBingoApi/internal/nhl"

// IsFulfilled reports whether a condition is satisfied by the box-score
// snapshot. An unavailable stat is never fulfilled. GreaterThan is inclusive
// ("at least") while LessThan is strict; the asymmetry is intentional.
func IsFulfilled(cond EventCondition, box *nhl.Boxscore) bool {
	value, available := ResolveValue(box, cond)
	if !available {
		return false
	}

	switch cond.Comparison {
	case GreaterThan:
		return value >= cond.Threshold
	case LessThan:
		return value < cond.Threshold
	default:
		return false
	}
}

// EvaluateGrid evaluates every condition on a ticket against one box-score
// snapshot, producing the crossed-off grid in event order.
func EvaluateGrid(events []EventCondition, box *nhl.Boxscore) []bool {
	crossedOff := make([]bool, len(events))
	for i, event := range events {
		crossedOff[i] = IsFulfilled(event, box)
	}
	return crossedOff
}
