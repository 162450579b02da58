package data

import (
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrEditConflict = errors.New("edit conflict")

type Models struct {
	Tickets TicketModel
}

func NewModels(initDb *sql.DB) Models {
	return Models{
		Tickets: TicketModel{db: initDb},
	}
}
