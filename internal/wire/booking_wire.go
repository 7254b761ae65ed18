package wire

import (
	"arte-booking/internal/adaptor"
	"arte-booking/pkg/middleware"
	"arte-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	rdb *redis.Client,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== RATE LIMITED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rdb, config.RateLimit, "booking", log))

		// POST /api/bookings/verify - look up own bookings by name and student ID
		r.Post("/api/bookings/verify", bookingHandler.VerifyBooking)

		// POST /api/bookings/{showId} - reserve seats
		r.Post("/api/bookings/{showId}", bookingHandler.CreateBooking)
	})

	// GET /api/bookings/{showId} - confirmed bookings of a show
	r.Get("/api/bookings/{showId}", bookingHandler.ListBookings)

	// GET /api/bookings/{showId}/{bookingId} - one booking, for confirmation pages
	r.Get("/api/bookings/{showId}/{bookingId}", bookingHandler.GetBooking)
}
