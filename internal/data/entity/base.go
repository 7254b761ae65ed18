package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is the identity of append-only rows.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"booking_date"`
}
