package usecase

import (
	"arte-booking/internal/data/repository"
	"arte-booking/internal/queue"
	"arte-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Show    ShowService
	Seat    SeatService
	Booking BookingService
}

func NewService(repo *repository.Repository, publisher queue.Publisher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Show:    NewShowService(repo.Show, log),
		Seat:    NewSeatService(repo, log),
		Booking: NewBookingService(repo, publisher, config.Booking, log),
	}
}
