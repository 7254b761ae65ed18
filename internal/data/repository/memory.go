package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"arte-booking/internal/data/entity"
	"arte-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memoryBookingRepository keeps bookings in process. One mutex covers the
// check and the insert of Reserve, so it gives the same guarantee as the
// reserve_seats function for a single instance.
type memoryBookingRepository struct {
	mu       sync.Mutex
	bookings []*entity.Booking
	held     map[string]map[string]uuid.UUID // show -> seat -> booking
	now      func() time.Time
	log      *zap.Logger
}

func NewMemoryBookingRepository(log *zap.Logger) BookingRepository {
	return &memoryBookingRepository{
		held: make(map[string]map[string]uuid.UUID),
		now:  time.Now,
		log:  log.With(zap.String("repository", "booking_memory")),
	}
}

func (r *memoryBookingRepository) Reserve(ctx context.Context, booking *entity.Booking) (*entity.ReserveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify("reserve seats for show "+booking.ShowID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seats := r.held[booking.ShowID]

	var conflicts []string
	for _, seat := range booking.Seats {
		if _, taken := seats[seat]; taken {
			conflicts = append(conflicts, seat)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return &entity.ReserveResult{ConflictSeats: conflicts}, nil
	}

	created := cloneBooking(booking)
	created.ID = utils.GenerateUUID()
	created.CreatedAt = r.now()
	created.Status = entity.BookingStatusConfirmed

	if seats == nil {
		seats = make(map[string]uuid.UUID)
		r.held[booking.ShowID] = seats
	}
	for _, seat := range created.Seats {
		seats[seat] = created.ID
	}
	r.bookings = append(r.bookings, created)

	r.log.Debug("Seats reserved",
		zap.String("show_id", created.ShowID),
		zap.String("booking_id", created.ID.String()),
		zap.Int("seats", len(created.Seats)),
	)

	return &entity.ReserveResult{Booking: cloneBooking(created)}, nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			return cloneBooking(b), nil
		}
	}
	return nil, nil
}

func (r *memoryBookingRepository) FindConfirmedByShow(ctx context.Context, showID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool {
		return b.ShowID == showID
	}), nil
}

func (r *memoryBookingRepository) FindConfirmedByAttendee(ctx context.Context, showID, name, studentID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool {
		return b.ShowID == showID && b.Name == name && b.StudentID == studentID
	}), nil
}

// filter returns matching confirmed bookings, newest first.
func (r *memoryBookingRepository) filter(match func(*entity.Booking) bool) []*entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		b := r.bookings[i]
		if b.Status == entity.BookingStatusConfirmed && match(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}

func cloneBooking(b *entity.Booking) *entity.Booking {
	c := *b
	c.Seats = append([]string(nil), b.Seats...)
	if b.SpecialRequest != nil {
		req := *b.SpecialRequest
		c.SpecialRequest = &req
	}
	return &c
}

// MemoryPeriodRepository holds booking windows in process. Set is used to
// seed it.
type MemoryPeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]entity.BookingPeriod
}

func NewMemoryPeriodRepository() *MemoryPeriodRepository {
	return &MemoryPeriodRepository{periods: make(map[string]entity.BookingPeriod)}
}

func (r *MemoryPeriodRepository) Set(period entity.BookingPeriod) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods[period.ShowID] = period
}

func (r *MemoryPeriodRepository) FindByShowID(ctx context.Context, showID string) (*entity.BookingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	period, ok := r.periods[showID]
	if !ok {
		return nil, nil
	}
	return &period, nil
}
