package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const DefaultBaseURL = "https://api-web.nhle.com"

var ErrUpstreamUnavailable = errors.New("upstream data provider unavailable")

// Client talks to the upstream hockey data provider. Fetch failures are
// returned to the caller as-is; the client never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

func New(baseURL string, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: cache,
	}
}

// Schedule returns the games on today's slate.
func (c *Client) Schedule(ctx context.Context) ([]Game, error) {
	key := "nhl:schedule:now"

	var games []Game
	if c.cache.get(ctx, key, &games) {
		return games, nil
	}

	var payload struct {
		GameWeek []struct {
			Date  string `json:"date"`
			Games []Game `json:"games"`
		} `json:"gameWeek"`
	}

	err := c.fetch(ctx, "/v1/schedule/now", &payload)
	if err != nil {
		return nil, err
	}

	games = make([]Game, 0)
	for _, day := range payload.GameWeek {
		games = append(games, day.Games...)
	}

	c.cache.set(ctx, key, games, ScheduleTTL)
	return games, nil
}

// Game resolves a game id to its two team abbreviations. The gamecenter
// payload carries them before puck drop, so this works for unstarted games.
func (c *Client) Game(ctx context.Context, gameID int64) (*Game, error) {
	box, err := c.Boxscore(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game := &Game{
		ID:        box.GameID,
		GameState: box.GameState,
		HomeTeam:  TeamRef{Abbrev: box.HomeTeam.Abbrev},
		AwayTeam:  TeamRef{Abbrev: box.AwayTeam.Abbrev},
	}
	if game.ID == 0 {
		game.ID = gameID
	}

	return game, nil
}

// Roster returns a team's current roster.
func (c *Client) Roster(ctx context.Context, teamAbbrev string) (*Roster, error) {
	key := fmt.Sprintf("nhl:roster:%s", teamAbbrev)

	var roster Roster
	if c.cache.get(ctx, key, &roster) {
		return &roster, nil
	}

	err := c.fetch(ctx, fmt.Sprintf("/v1/roster/%s/current", teamAbbrev), &roster)
	if err != nil {
		return nil, err
	}

	c.cache.set(ctx, key, roster, RosterTTL)
	return &roster, nil
}

// Boxscore returns a fresh statistical snapshot for one game. The cache TTL
// is short enough that live refreshes stay current.
func (c *Client) Boxscore(ctx context.Context, gameID int64) (*Boxscore, error) {
	key := fmt.Sprintf("nhl:boxscore:%d", gameID)

	var box Boxscore
	if c.cache.get(ctx, key, &box) {
		return &box, nil
	}

	err := c.fetch(ctx, fmt.Sprintf("/v1/gamecenter/%d/boxscore", gameID), &box)
	if err != nil {
		return nil, err
	}

	c.cache.set(ctx, key, box, BoxscoreTTL)
	return &box, nil
}

// GameRosters fetches both competing rosters concurrently and joins the
// results. A failed side degrades to an empty roster rather than aborting;
// the joined error is returned for logging only.
func (c *Client) GameRosters(ctx context.Context, homeAbbrev, awayAbbrev string) (GameRosters, error) {
	var rosters GameRosters
	var homeErr, awayErr error
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		roster, err := c.Roster(ctx, homeAbbrev)
		if err != nil {
			homeErr = fmt.Errorf("home roster (%s): %w", homeAbbrev, err)
			return
		}
		rosters.Home = *roster
	}()
	go func() {
		defer wg.Done()
		roster, err := c.Roster(ctx, awayAbbrev)
		if err != nil {
			awayErr = fmt.Errorf("away roster (%s): %w", awayAbbrev, err)
			return
		}
		rosters.Away = *roster
	}()
	wg.Wait()

	return rosters, errors.Join(homeErr, awayErr)
}

func (c *Client) fetch(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: unexpected status %d for %s", ErrUpstreamUnavailable,
			resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
