package adaptor

import (
	"arte-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Show    *ShowHandler
	Seat    *SeatHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Show:    NewShowHandler(service.Show, log),
		Seat:    NewSeatHandler(service.Seat, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
