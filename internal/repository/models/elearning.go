package models

import (
	"database/sql"
	"time"
)

// Elearning is the elearnings row.
type Elearning struct {
	ID               string         `db:"id"`
	Titel            string         `db:"titel"`
	Niveau           int            `db:"niveau"`
	Onderwerp        sql.NullString `db:"onderwerp"`
	ItemType         sql.NullString `db:"item_type"`
	Tijdsinvestering float64        `db:"tijdsinvestering"`
	Taal             sql.NullString `db:"taal"`
	Organisatie      sql.NullString `db:"organisatie"`
	Beschrijving     sql.NullString `db:"beschrijving"`
	Link             sql.NullString `db:"link"`
	Status           string         `db:"status"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
