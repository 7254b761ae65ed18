package entity

import "time"

// BookingPeriod is the window in which a show accepts bookings.
type BookingPeriod struct {
	ShowID   string    `db:"show_id"`
	OpensAt  time.Time `db:"opens_at"`
	ClosesAt time.Time `db:"closes_at"`
}

// Contains reports whether t is inside [OpensAt, ClosesAt).
func (p *BookingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.OpensAt) && t.Before(p.ClosesAt)
}
