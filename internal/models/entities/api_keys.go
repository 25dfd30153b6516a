package entities

import "time"

type ApiKey struct {
	ApiKey    string    `db:"id" json:"id"`
	Label     string    `db:"label" json:"label"`
	Status    bool      `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
