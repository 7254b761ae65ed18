package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arte-booking/internal/data/entity"
	"arte-booking/internal/data/repository"
	"arte-booking/internal/dto/request"
	"arte-booking/internal/dto/response"
	"arte-booking/internal/metrics"
	"arte-booking/internal/queue"
	"arte-booking/pkg/utils"

	"go.uber.org/zap"
)

const eventPublishTimeout = 3 * time.Second

type BookingService interface {
	// CreateBooking validates the request, checks the booking window and
	// reserves the seats in one atomic store call.
	CreateBooking(ctx context.Context, showID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)

	// GetBooking returns one booking of the show, for confirmation pages.
	GetBooking(ctx context.Context, showID, bookingID string) (*response.BookingResponse, error)

	ListBookings(ctx context.Context, showID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	VerifyBooking(ctx context.Context, req *request.VerifyBookingRequest) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo          *repository.Repository
	publisher     queue.Publisher
	commitTimeout time.Duration
	now           func() time.Time
	log           *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher queue.Publisher, config utils.BookingConfig, log *zap.Logger) BookingService {
	return newBookingService(repo, publisher, config, log)
}

func newBookingService(repo *repository.Repository, publisher queue.Publisher, config utils.BookingConfig, log *zap.Logger) *bookingService {
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}
	return &bookingService{
		repo:          repo,
		publisher:     publisher,
		commitTimeout: config.CommitTimeout,
		now:           time.Now,
		log:           log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, showID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("find show %s: %w", showID, err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	// Validating: nothing below touches the booking store until this passes
	normalizeCreateRequest(req)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed",
			zap.String("show_id", show.ID),
			zap.Any("errors", errs),
		)
		metrics.IncBooking(show.ID, metrics.OutcomeRejected)
		return nil, &ValidationError{Fields: errs}
	}

	seats := utils.UniqueStrings(req.SelectedSeats)
	if errs := validateSeats(show, req.SeatGrade, seats); len(errs) > 0 {
		s.log.Warn("Create booking seat validation failed",
			zap.String("show_id", show.ID),
			zap.Any("errors", errs),
		)
		metrics.IncBooking(show.ID, metrics.OutcomeRejected)
		return nil, &ValidationError{Fields: errs}
	}

	// PeriodCheck
	period, err := s.repo.Period.FindByShowID(ctx, show.ID)
	if err != nil {
		metrics.IncBooking(show.ID, metrics.OutcomeError)
		return nil, fmt.Errorf("check booking period for show %s: %w", show.ID, err)
	}
	if period != nil && !period.Contains(s.now()) {
		s.log.Info("Booking outside booking period",
			zap.String("show_id", show.ID),
			zap.Time("opens_at", period.OpensAt),
			zap.Time("closes_at", period.ClosesAt),
		)
		metrics.IncBooking(show.ID, metrics.OutcomePeriodClosed)
		return nil, &PeriodClosedError{OpensAt: period.OpensAt, ClosesAt: period.ClosesAt}
	}

	// AtomicReserve
	booking := &entity.Booking{
		ShowID:         show.ID,
		Name:           req.Name,
		StudentID:      req.StudentID,
		SeatGrade:      req.SeatGrade,
		Seats:          seats,
		SpecialRequest: req.SpecialRequest,
		Status:         entity.BookingStatusConfirmed,
	}

	result, err := s.reserve(ctx, booking)
	if err != nil {
		return nil, err
	}

	if result.Conflicted() {
		conflicts := inRequestOrder(seats, result.ConflictSeats)
		s.log.Info("Seats already booked",
			zap.String("show_id", show.ID),
			zap.Strings("conflict_seats", conflicts),
		)
		metrics.IncBooking(show.ID, metrics.OutcomeConflict)
		return nil, &ConflictError{Seats: conflicts}
	}

	// Committed
	created := result.Booking
	metrics.IncBooking(show.ID, metrics.OutcomeCommitted)
	metrics.AddSeatsBooked(show.ID, len(created.Seats))

	s.log.Info("Booking confirmed",
		zap.String("booking_id", created.ID.String()),
		zap.String("show_id", show.ID),
		zap.String("student_id", created.StudentID),
		zap.String("seat_grade", created.SeatGrade),
		zap.Int("seats", len(created.Seats)),
	)

	s.publishConfirmed(ctx, show, created)

	return &response.CreateBookingResponse{
		BookingID:   created.ID.String(),
		BookingDate: created.CreatedAt,
	}, nil
}

// reserve runs the atomic store call under the commit timeout and turns a
// uniqueness violation into a conflict.
func (s *bookingService) reserve(ctx context.Context, booking *entity.Booking) (*entity.ReserveResult, error) {
	commitCtx := ctx
	if s.commitTimeout > 0 {
		var cancel context.CancelFunc
		commitCtx, cancel = context.WithTimeout(ctx, s.commitTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := s.repo.Booking.Reserve(commitCtx, booking)
	metrics.ObserveCommit(booking.ShowID, time.Since(start))

	switch {
	case err == nil:
		return result, nil

	case errors.Is(err, repository.ErrSeatTaken):
		// only the exact held subset is reported; never guess
		held, lookupErr := s.heldSeats(ctx, booking.ShowID, booking.Seats)
		if lookupErr != nil {
			metrics.IncBooking(booking.ShowID, metrics.OutcomeError)
			return nil, fmt.Errorf("find held seats for show %s: %w", booking.ShowID, lookupErr)
		}
		if len(held) == 0 {
			s.log.Error("Seat taken but no holder found",
				zap.String("show_id", booking.ShowID),
				zap.Strings("seats", booking.Seats),
			)
			metrics.IncBooking(booking.ShowID, metrics.OutcomeError)
			return nil, fmt.Errorf("reserve seats for show %s: holder of taken seat not found: %w",
				booking.ShowID, repository.ErrStoreUnavailable)
		}
		return &entity.ReserveResult{ConflictSeats: held}, nil

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		s.log.Error("Reserve did not finish, outcome unknown",
			zap.Error(err),
			zap.String("show_id", booking.ShowID),
			zap.String("student_id", booking.StudentID),
			zap.Duration("timeout", s.commitTimeout),
		)
		metrics.IncBooking(booking.ShowID, metrics.OutcomeUnknown)
		return nil, fmt.Errorf("reserve seats for show %s: %w", booking.ShowID, ErrOutcomeUnknown)

	default:
		metrics.IncBooking(booking.ShowID, metrics.OutcomeError)
		return nil, fmt.Errorf("reserve seats for show %s: %w", booking.ShowID, err)
	}
}

// heldSeats returns the subset of seats held by confirmed bookings.
func (s *bookingService) heldSeats(ctx context.Context, showID string, seats []string) ([]string, error) {
	bookings, err := s.repo.Booking.FindConfirmedByShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	var held []string
	for _, b := range bookings {
		held = append(held, b.Seats...)
	}
	return inRequestOrder(seats, held), nil
}

func (s *bookingService) publishConfirmed(ctx context.Context, show *entity.Show, b *entity.Booking) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	err := s.publisher.PublishBookingConfirmed(pubCtx, queue.BookingConfirmedEvent{
		BookingID:   b.ID.String(),
		ShowID:      show.ID,
		ShowTitle:   show.Title,
		Name:        b.Name,
		StudentID:   b.StudentID,
		SeatGrade:   b.SeatGrade,
		Seats:       b.Seats,
		BookingDate: b.CreatedAt,
	})
	if err != nil {
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("booking_id", b.ID.String()),
		)
	}
}

func (s *bookingService) GetBooking(ctx context.Context, showID, bookingID string) (*response.BookingResponse, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("find show %s: %w", showID, err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	id, err := utils.ParseUUID(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	// ids from another show are not leaked
	if booking == nil || booking.ShowID != show.ID {
		return nil, ErrBookingNotFound
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, showID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("find show %s: %w", showID, err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	bookings, err := s.repo.Booking.FindConfirmedByShow(ctx, show.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for show %s: %w", show.ID, err)
	}

	total := len(bookings)
	start := min(page.Offset(), total)
	end := min(start+page.Limit(), total)

	return response.NewPaginatedResponse(
		response.BookingsToResponse(bookings[start:end]),
		page.Page,
		page.Limit(),
		int64(total),
	), nil
}

func (s *bookingService) VerifyBooking(ctx context.Context, req *request.VerifyBookingRequest) ([]response.BookingResponse, error) {
	req.ShowID = strings.TrimSpace(req.ShowID)
	req.Name = strings.TrimSpace(req.Name)
	req.StudentID = strings.TrimSpace(req.StudentID)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	show, err := s.repo.Show.FindByID(ctx, req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("find show %s: %w", req.ShowID, err)
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	bookings, err := s.repo.Booking.FindConfirmedByAttendee(ctx, show.ID, req.Name, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("verify booking for show %s: %w", show.ID, err)
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return response.BookingsToResponse(bookings), nil
}

func normalizeCreateRequest(req *request.CreateBookingRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.SeatGrade = strings.TrimSpace(req.SeatGrade)
	for i, seat := range req.SelectedSeats {
		req.SelectedSeats[i] = strings.TrimSpace(seat)
	}
	if req.SpecialRequest != nil {
		trimmed := strings.TrimSpace(*req.SpecialRequest)
		if trimmed == "" {
			req.SpecialRequest = nil
		} else {
			req.SpecialRequest = &trimmed
		}
	}
}

// validateSeats checks the grade belongs to the show and every seat exists
// in the show's layout under that grade.
func validateSeats(show *entity.Show, grade string, seats []string) map[string]string {
	if !show.HasGrade(grade) {
		return map[string]string{
			"seatGrade": "Must be one of: " + strings.Join(show.GradeNames(), ", "),
		}
	}

	var unknown, mismatched []string
	for _, seat := range seats {
		seatGrade, ok := show.GradeOf(seat)
		switch {
		case !ok:
			unknown = append(unknown, seat)
		case seatGrade != grade:
			mismatched = append(mismatched, seat)
		}
	}

	var problems []string
	if len(unknown) > 0 {
		problems = append(problems, "Unknown seats: "+strings.Join(unknown, ", "))
	}
	if len(mismatched) > 0 {
		problems = append(problems, fmt.Sprintf("Not %s seats: %s", grade, strings.Join(mismatched, ", ")))
	}
	if len(problems) == 0 {
		return nil
	}
	return map[string]string{"selectedSeats": strings.Join(problems, "; ")}
}

// inRequestOrder returns the seats of requested that appear in held,
// keeping the order of requested.
func inRequestOrder(requested, held []string) []string {
	set := make(map[string]struct{}, len(held))
	for _, seat := range held {
		set[seat] = struct{}{}
	}

	out := make([]string, 0, len(held))
	for _, seat := range requested {
		if _, ok := set[seat]; ok {
			out = append(out, seat)
			delete(set, seat)
		}
	}
	return out
}
