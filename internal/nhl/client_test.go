package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"HockeyBingoApi/internal/assert"
)

func testRosterServer(t *testing.T, failAbbrevs ...string) *httptest.Server {
	t.Helper()

	fail := make(map[string]bool)
	for _, abbrev := range failAbbrevs {
		fail[abbrev] = true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/roster/TOR/current", func(w http.ResponseWriter, r *http.Request) {
		if fail["TOR"] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{
			"forwards": [{"id": 8479318, "fullName": "Auston Matthews"}],
			"defensemen": [{"id": 8475166, "fullName": "Morgan Rielly"}],
			"goalies": [{"id": 8479361, "fullName": "Joseph Woll"}]
		}`))
	})
	mux.HandleFunc("/v1/roster/MTL/current", func(w http.ResponseWriter, r *http.Request) {
		if fail["MTL"] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{
			"forwards": [{"id": 8480018, "fullName": "Nick Suzuki"}],
			"defensemen": [{"id": 8483457, "fullName": "Lane Hutson"}],
			"goalies": [{"id": 8478470, "fullName": "Sam Montembeault"}]
		}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGameRosters(t *testing.T) {
	srv := testRosterServer(t)
	client := New(srv.URL, nil)

	rosters, err := client.GameRosters(context.Background(), "TOR", "MTL")

	assert.NilError(t, err)
	assert.Equal(t, len(rosters.Home.Forwards), 1)
	assert.Equal(t, rosters.Home.Forwards[0].FullName, "Auston Matthews")
	assert.Equal(t, len(rosters.Away.Goalies), 1)
	assert.Equal(t, rosters.Away.Goalies[0].ID, 8478470)
}

func TestGameRostersOneSidedFailure(t *testing.T) {
	srv := testRosterServer(t, "MTL")
	client := New(srv.URL, nil)

	rosters, err := client.GameRosters(context.Background(), "TOR", "MTL")

	// The failed side degrades to an empty roster rather than aborting the
	// whole fetch; the joined error is surfaced for logging only.
	if err == nil {
		t.Error("expected a joined fetch error, got nil")
	}

	assert.Equal(t, len(rosters.Home.Forwards), 1)
	assert.Equal(t, len(rosters.Home.Defensemen), 1)
	assert.Equal(t, len(rosters.Home.Goalies), 1)

	assert.Equal(t, len(rosters.Away.Forwards), 0)
	assert.Equal(t, len(rosters.Away.Defensemen), 0)
	assert.Equal(t, len(rosters.Away.Goalies), 0)
}

func TestGameRostersBothSidesFail(t *testing.T) {
	srv := testRosterServer(t, "TOR", "MTL")
	client := New(srv.URL, nil)

	rosters, err := client.GameRosters(context.Background(), "TOR", "MTL")

	if err == nil {
		t.Error("expected a joined fetch error, got nil")
	}
	assert.Equal(t, len(rosters.Home.Forwards), 0)
	assert.Equal(t, len(rosters.Away.Forwards), 0)
}
