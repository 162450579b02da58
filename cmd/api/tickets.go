package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"HockeyBingoApi/internal/bingo"
	"HockeyBingoApi/internal/data"
	"HockeyBingoApi/internal/validator"
)

func (app *application) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Owner  string `json:"owner"`
		GameID int64  `json:"game_id"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	game, err := app.nhl.Game(r.Context(), input.GameID)
	if err != nil {
		app.upstreamUnavailableResponse(w, r, err)
		return
	}

	rosters, err := app.nhl.GameRosters(r.Context(), game.HomeTeam.Abbrev, game.AwayTeam.Abbrev)
	if err != nil {
		// A one-sided roster failure degrades to an empty roster; ticket
		// validation below catches the resulting under-fill.
		app.logger.PrintError(err, map[string]string{
			"game_id": fmt.Sprintf("%d", input.GameID),
		})
	}

	events := bingo.Generate(*game, bingo.GridSize, rosters)

	ticket := &data.Ticket{
		Owner:      input.Owner,
		GameID:     input.GameID,
		Events:     events,
		CrossedOff: make([]bool, bingo.GridSize),
		Score:      bingo.ComputeScore(nil),
	}

	v := validator.New()
	if data.ValidateTicket(v, ticket); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	err = app.models.Tickets.Insert(ticket)
	if err != nil {
		var modelValidationErr data.ModelValidationErr
		switch {
		case errors.As(err, &modelValidationErr):
			app.failedValidationResponse(w, r, modelValidationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/ticket/%d", ticket.ID))
	err = app.writeJSON(w, http.StatusCreated, envelope{"ticket": ticket}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTicket(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	ticket, err := app.models.Tickets.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"ticket": ticket}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	v := validator.New()

	owner := app.readString(r.URL.Query(), "owner", "")
	v.Check(owner != "", "owner", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	tickets, err := app.models.Tickets.GetAllForOwner(owner)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"tickets": tickets}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Tickets.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("ticket (%d) successfully deleted", id)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RefreshTicket(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	ticket, err := app.models.Tickets.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	refreshed, err := app.refreshTicket(r.Context(), ticket)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"ticket":    ticket,
		"refreshed": refreshed,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) RefreshAllTickets(w http.ResponseWriter, r *http.Request) {
	v := validator.New()

	owner := app.readString(r.URL.Query(), "owner", "")
	v.Check(owner != "", "owner", "must be provided")
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	tickets, err := app.models.Tickets.GetAllForOwner(owner)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Each ticket's box-score fetch and evaluation is independent; refresh
	// them concurrently and let individual failures skip that ticket.
	var wg sync.WaitGroup
	refreshedCount := 0
	var mu sync.Mutex

	for _, ticket := range tickets {
		ticket := ticket
		wg.Add(1)
		app.backgroundTask(func() {
			defer wg.Done()

			refreshed, err := app.refreshTicket(r.Context(), ticket)
			if err != nil {
				app.logger.PrintError(err, map[string]string{
					"ticket_id": fmt.Sprintf("%d", ticket.ID),
				})
				return
			}
			if refreshed {
				mu.Lock()
				refreshedCount++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	err = app.writeJSON(w, http.StatusOK, envelope{
		"tickets":   tickets,
		"refreshed": refreshedCount,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// refreshTicket recomputes a ticket's crossed-off grid and score from a fresh
// box-score. An unavailable box-score leaves the ticket untouched and reports
// refreshed=false; from the ticket's perspective that is the same as "game
// not started".
func (app *application) refreshTicket(ctx context.Context, ticket *data.Ticket) (bool, error) {
	box, err := app.nhl.Boxscore(ctx, ticket.GameID)
	if err != nil {
		app.logger.PrintError(err, map[string]string{
			"game_id": fmt.Sprintf("%d", ticket.GameID),
		})
		return false, nil
	}

	crossedOff := bingo.EvaluateGrid(ticket.Events, box)
	ticket.CrossedOff = crossedOff
	ticket.Score = bingo.ComputeScore(crossedOff)

	err = app.models.Tickets.UpdateResult(ticket)
	if err != nil {
		return false, err
	}

	return true, nil
}
