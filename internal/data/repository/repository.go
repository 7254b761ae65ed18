package repository

import (
	"arte-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Show    ShowRepository
	Booking BookingRepository
	Period  PeriodRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Show:    NewShowRepository(log),
		Booking: NewBookingRepository(db, log),
		Period:  NewPeriodRepository(db, log),
	}
}

// NewMemoryRepository backs every repository with process memory. Bookings
// are lost on restart.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Show:    NewShowRepository(log),
		Booking: NewMemoryBookingRepository(log),
		Period:  NewMemoryPeriodRepository(),
	}
}
