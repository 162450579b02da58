package main

import "net/http"

func (app *application) GetTodaysGames(w http.ResponseWriter, r *http.Request) {
	games, err := app.nhl.Schedule(r.Context())
	if err != nil {
		app.upstreamUnavailableResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"games": games}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
