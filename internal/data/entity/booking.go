package entity

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is append-only: once confirmed its seat list never changes.
type Booking struct {
	BaseSimple
	ShowID         string        `db:"show_id"`
	Name           string        `db:"name"`
	StudentID      string        `db:"student_id"`
	SeatGrade      string        `db:"seat_grade"`
	Seats          []string      `db:"selected_seats"`
	SpecialRequest *string       `db:"special_request"`
	Status         BookingStatus `db:"status"`
}

// ReserveResult is the outcome of one atomic reserve call. Exactly one of
// Booking and ConflictSeats is set.
type ReserveResult struct {
	Booking       *Booking
	ConflictSeats []string
}

func (r *ReserveResult) Conflicted() bool {
	return len(r.ConflictSeats) > 0
}
