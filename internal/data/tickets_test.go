package data

import (
	"testing"

	"HockeyBingoApi/internal/assert"
	"HockeyBingoApi/internal/bingo"
	"HockeyBingoApi/internal/validator"
)

func validTicket() *Ticket {
	events := make([]bingo.EventCondition, bingo.GridSize)
	for i := range events {
		events[i] = bingo.EventCondition{
			ID:         i + 1,
			Category:   bingo.CategoryTeam,
			Subject:    "goals",
			Comparison: bingo.GreaterThan,
			Threshold:  3,
			TeamAbbrev: "TOR",
		}
	}

	return &Ticket{
		Owner:      "wayne99",
		GameID:     2023020204,
		Events:     events,
		CrossedOff: make([]bool, bingo.GridSize),
	}
}

func TestValidateTicket(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ticket)
		wantKey string
	}{
		{
			name:   "Valid Ticket",
			mutate: func(t *Ticket) {},
		},
		{
			name:    "Missing Owner",
			mutate:  func(t *Ticket) { t.Owner = "" },
			wantKey: "owner",
		},
		{
			name:    "Zero Game ID",
			mutate:  func(t *Ticket) { t.GameID = 0 },
			wantKey: "game_id",
		},
		{
			name:    "Under-Filled Events",
			mutate:  func(t *Ticket) { t.Events = t.Events[:8] },
			wantKey: "events",
		},
		{
			name:    "No Events",
			mutate:  func(t *Ticket) { t.Events = nil },
			wantKey: "events",
		},
		{
			name:    "Short Crossed Off",
			mutate:  func(t *Ticket) { t.CrossedOff = t.CrossedOff[:3] },
			wantKey: "crossed_off",
		},
		{
			name:    "Long Crossed Off",
			mutate:  func(t *Ticket) { t.CrossedOff = append(t.CrossedOff, false) },
			wantKey: "crossed_off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := validTicket()
			tt.mutate(ticket)

			v := validator.New()
			ValidateTicket(v, ticket)

			if tt.wantKey == "" {
				assert.Equal(t, v.Valid(), true)
				return
			}

			assert.Equal(t, v.Valid(), false)
			if _, exists := v.Errors[tt.wantKey]; !exists {
				t.Errorf("expected a validation error for %q, got %v", tt.wantKey, v.Errors)
			}
		})
	}
}
