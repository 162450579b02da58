package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"HockeyBingoApi/internal/bingo"
	"HockeyBingoApi/internal/validator"

	"github.com/lib/pq"
)

// Ticket is a 3x3 grid of predictions for one game. Events are fixed at
// creation; crossed_off and the score columns are overwritten wholesale on
// every refresh.
type Ticket struct {
	ID         int64                  `json:"id"`
	Owner      string                 `json:"owner"`
	GameID     int64                  `json:"game_id"`
	Events     []bingo.EventCondition `json:"events"`
	CrossedOff []bool                 `json:"crossed_off"`
	Score      bingo.Score            `json:"score"`
	CreatedAt  time.Time              `json:"-"`
	Version    int32                  `json:"-"`
}

func ValidateTicket(v *validator.Validator, ticket *Ticket) {
	v.Check(ticket.Owner != "", "owner", "must be provided")
	v.Check(len(ticket.Owner) <= 50, "owner", "must be 50 characters or less")

	v.Check(ticket.GameID > 0, "game_id", "must be a positive integer")

	v.Check(len(ticket.Events) == bingo.GridSize, "events",
		fmt.Sprintf("must contain exactly %d events", bingo.GridSize))
	v.Check(len(ticket.CrossedOff) == bingo.GridSize, "crossed_off",
		fmt.Sprintf("must contain exactly %d entries", bingo.GridSize))
}

type TicketModel struct {
	db *sql.DB
}

func (m *TicketModel) Insert(ticket *Ticket) error {
	if len(ticket.Events) != bingo.GridSize {
		return NewModelValidationErr("events",
			fmt.Sprintf("must contain exactly %d events", bingo.GridSize))
	}
	if len(ticket.CrossedOff) != bingo.GridSize {
		return NewModelValidationErr("crossed_off",
			fmt.Sprintf("must contain exactly %d entries", bingo.GridSize))
	}

	events, err := json.Marshal(ticket.Events)
	if err != nil {
		return err
	}

	stmt := `
		INSERT INTO tickets (owner, game_id, events, crossed_off, no_crossed_off, no_rows,
			no_columns, no_crosses, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version`

	args := []any{
		ticket.Owner,
		ticket.GameID,
		events,
		pq.Array(ticket.CrossedOff),
		ticket.Score.NoCrossedOff,
		ticket.Score.NoRows,
		ticket.Score.NoColumns,
		ticket.Score.NoCrosses,
		ticket.Score.Total,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.db.QueryRowContext(ctx, stmt, args...).Scan(&ticket.ID, &ticket.CreatedAt,
		&ticket.Version)
}

func (m *TicketModel) Get(id int64) (*Ticket, error) {
	stmt := `
		SELECT id, owner, game_id, events, crossed_off, no_crossed_off, no_rows, no_columns,
			no_crosses, total, created_at, version
		FROM tickets
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ticket, err := scanTicket(m.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return ticket, nil
}

func (m *TicketModel) GetAllForOwner(owner string) ([]*Ticket, error) {
	stmt := `
		SELECT id, owner, game_id, events, crossed_off, no_crossed_off, no_rows, no_columns,
			no_crosses, total, created_at, version
		FROM tickets
		WHERE owner = $1
		ORDER BY created_at DESC, id DESC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// UpdateResult overwrites a ticket's crossed-off grid and score. Events are
// never updated; they are fixed at creation.
func (m *TicketModel) UpdateResult(ticket *Ticket) error {
	if len(ticket.CrossedOff) != bingo.GridSize {
		return NewModelValidationErr("crossed_off",
			fmt.Sprintf("must contain exactly %d entries", bingo.GridSize))
	}

	stmt := `
		UPDATE tickets
		SET crossed_off = $1, no_crossed_off = $2, no_rows = $3, no_columns = $4,
			no_crosses = $5, total = $6, version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version`

	args := []any{
		pq.Array(ticket.CrossedOff),
		ticket.Score.NoCrossedOff,
		ticket.Score.NoRows,
		ticket.Score.NoColumns,
		ticket.Score.NoCrosses,
		ticket.Score.Total,
		ticket.ID,
		ticket.Version,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, args...).Scan(&ticket.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}

	return nil
}

func (m *TicketModel) Delete(id int64) error {
	stmt := `
		DELETE FROM tickets
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	result, err := m.db.ExecContext(ctx, stmt, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*Ticket, error) {
	var ticket Ticket
	var events []byte
	var crossedOff pq.BoolArray

	err := row.Scan(
		&ticket.ID,
		&ticket.Owner,
		&ticket.GameID,
		&events,
		&crossedOff,
		&ticket.Score.NoCrossedOff,
		&ticket.Score.NoRows,
		&ticket.Score.NoColumns,
		&ticket.Score.NoCrosses,
		&ticket.Score.Total,
		&ticket.CreatedAt,
		&ticket.Version,
	)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(events, &ticket.Events)
	if err != nil {
		return nil, err
	}
	ticket.CrossedOff = []bool(crossedOff)

	return &ticket, nil
}
