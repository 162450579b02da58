package bingo

// EventCategory is the closed set of prediction categories. FORWARD, DEFENSE
// and GOALIE conditions carry a player reference; TEAM and PENALTY carry only
// a team reference.
type EventCategory string

const (
	CategoryForward EventCategory = "FORWARD"
	CategoryDefense EventCategory = "DEFENSE"
	CategoryGoalie  EventCategory = "GOALIE"
	CategoryTeam    EventCategory = "TEAM"
	CategoryPenalty EventCategory = "PENALTY"
)

type Comparison string

const (
	// GreaterThan reads as "at least": fulfilled when value >= threshold.
	GreaterThan Comparison = "GREATER_THAN"
	// LessThan is strict: fulfilled when value < threshold.
	LessThan Comparison = "LESS_THAN"
)

// EventCondition is one of the nine statistical predictions on a ticket.
type EventCondition struct {
	ID         int           `json:"id"`
	Category   EventCategory `json:"category"`
	Subject    string        `json:"subject"`
	Comparison Comparison    `json:"comparison"`
	Threshold  int           `json:"threshold"`
	PlayerID   int64         `json:"player_id,omitempty"`
	PlayerName string        `json:"player_name,omitempty"`
	TeamAbbrev string        `json:"team_abbrev,omitempty"`
}
