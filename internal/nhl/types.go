package nhl

// JSON tags on these types mirror the upstream provider's wire format; they
// are decoded straight off its responses.

// Game identifies a single scheduled game and the two competing teams.
type Game struct {
	ID           int64   `json:"id"`
	StartTimeUTC string  `json:"startTimeUTC,omitempty"`
	GameState    string  `json:"gameState,omitempty"`
	HomeTeam     TeamRef `json:"homeTeam"`
	AwayTeam     TeamRef `json:"awayTeam"`
}

type TeamRef struct {
	Abbrev string `json:"abbrev"`
}

// Roster is a team's current lineup split by position group. The core treats
// rosters as read-only input.
type Roster struct {
	Forwards   []RosterPlayer `json:"forwards"`
	Defensemen []RosterPlayer `json:"defensemen"`
	Goalies    []RosterPlayer `json:"goalies"`
}

type RosterPlayer struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

// GameRosters pairs the two rosters needed to generate a ticket. A side whose
// fetch failed carries an empty Roster.
type GameRosters struct {
	Home Roster
	Away Roster
}

// Boxscore is a point-in-time statistical snapshot of one game. It is fetched
// fresh for every evaluation pass and never cached past it.
type Boxscore struct {
	GameID            int64    `json:"id"`
	GameState         string   `json:"gameState"`
	HomeTeam          TeamInfo `json:"homeTeam"`
	AwayTeam          TeamInfo `json:"awayTeam"`
	PlayerByGameStats struct {
		HomeTeam TeamPlayerStats `json:"homeTeam"`
		AwayTeam TeamPlayerStats `json:"awayTeam"`
	} `json:"playerByGameStats"`
}

type TeamInfo struct {
	Abbrev string `json:"abbrev"`
	Score  int    `json:"score"`
	Sog    int    `json:"sog"`
}

type TeamPlayerStats struct {
	Forwards []SkaterStats `json:"forwards"`
	Defense  []SkaterStats `json:"defense"`
	Goalies  []GoalieStats `json:"goalies"`
}

type SkaterStats struct {
	PlayerID     int64  `json:"playerId"`
	Name         string `json:"name"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Points       int    `json:"points"`
	Hits         int    `json:"hits"`
	Sog          int    `json:"sog"`
	BlockedShots int    `json:"blockedShots"`
	Pim          int    `json:"pim"`
	Toi          string `json:"toi"`
}

type GoalieStats struct {
	PlayerID     int64  `json:"playerId"`
	Name         string `json:"name"`
	Saves        int    `json:"saves"`
	GoalsAgainst int    `json:"goalsAgainst"`
	Toi          string `json:"toi"`
}
