package wire

import (
	"arte-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	// GET /api/seats/{showId} - held seats per grade, never cached
	r.Get("/api/seats/{showId}", seatHandler.GetAvailability)
}
