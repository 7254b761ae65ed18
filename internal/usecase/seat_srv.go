package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"arte-booking/internal/data/entity"
	"arte-booking/internal/data/repository"
	"arte-booking/internal/dto/response"
	"arte-booking/internal/metrics"

	"go.uber.org/zap"
)

// SeatService answers which seats of a show are held. It never writes and
// never fails because of the store: an unreadable store yields an empty,
// degraded availability.
type SeatService interface {
	GetAvailability(ctx context.Context, showID string) (*response.SeatAvailabilityResponse, error)
}

type seatService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetAvailability(ctx context.Context, showID string) (*response.SeatAvailabilityResponse, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("find show %s: %w", showID, err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	resp := &response.SeatAvailabilityResponse{
		ShowID:           show.ID,
		UnavailableSeats: emptyGradeMap(show),
		Timestamp:        s.now().UTC(),
	}

	bookings, err := s.repo.Booking.FindConfirmedByShow(ctx, show.ID)
	if err != nil {
		resp.Degraded = true
		if errors.Is(err, repository.ErrSchemaMissing) {
			resp.NeedsSetup = true
			resp.Message = "Booking tables are not set up; every seat is shown as available."
		} else {
			resp.Message = "Booking store unavailable; every seat is shown as available."
		}
		s.log.Warn("Serving degraded availability",
			zap.Error(err),
			zap.String("show_id", show.ID),
			zap.Bool("needs_setup", resp.NeedsSetup),
		)
		metrics.IncAvailability(show.ID, true)
		return resp, nil
	}

	held := make(map[string]map[string]struct{})
	attendees := make(map[string]struct{})
	for _, b := range bookings {
		attendees[b.StudentID] = struct{}{}
		resp.Statistics.TotalSeatsBooked += len(b.Seats)

		for _, seat := range b.Seats {
			grade, ok := show.GradeOf(seat)
			if !ok {
				// written before the current layout; trust the stored grade
				grade = b.SeatGrade
			}
			if held[grade] == nil {
				held[grade] = make(map[string]struct{})
			}
			held[grade][seat] = struct{}{}
		}
	}

	for grade, seats := range held {
		list := make([]string, 0, len(seats))
		for seat := range seats {
			list = append(list, seat)
		}
		sort.Strings(list)
		resp.UnavailableSeats[grade] = list
	}

	resp.Statistics.TotalBookings = len(bookings)
	resp.Statistics.UniqueAttendees = len(attendees)
	if len(bookings) == 0 {
		resp.Message = "No bookings yet; every seat is available."
	} else {
		resp.Message = fmt.Sprintf("Loaded %d bookings.", len(bookings))
	}

	metrics.IncAvailability(show.ID, false)
	return resp, nil
}

// emptyGradeMap has one empty list per grade of the show, so clients always
// see every grade key.
func emptyGradeMap(show *entity.Show) map[string][]string {
	m := make(map[string][]string, len(show.SeatGrades))
	for _, g := range show.SeatGrades {
		m[g.Grade] = []string{}
	}
	return m
}
