package repository

import (
	"context"
	"errors"
	"time"

	"arte-booking/internal/data/entity"
	"arte-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository owns the bookings of every show. Reserve is the only
// write path.
type BookingRepository interface {
	// Reserve atomically checks that no seat of booking is held for its
	// show and inserts it. On overlap nothing is written and the result
	// carries the held subset.
	Reserve(ctx context.Context, booking *entity.Booking) (*entity.ReserveResult, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindConfirmedByShow(ctx context.Context, showID string) ([]*entity.Booking, error)
	FindConfirmedByAttendee(ctx context.Context, showID, name, studentID string) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, show_id, name, student_id, seat_grade, selected_seats, special_request, status, booking_date`

func (r *bookingRepository) Reserve(ctx context.Context, booking *entity.Booking) (*entity.ReserveResult, error) {
	query := `
		SELECT booking_id, booking_date, conflict_seats
		FROM reserve_seats($1, $2, $3, $4, $5, $6)
	`

	var (
		id        *uuid.UUID
		createdAt *time.Time
		conflicts []string
	)
	err := r.db.QueryRow(ctx, query,
		booking.ShowID,
		booking.Name,
		booking.StudentID,
		booking.SeatGrade,
		booking.Seats,
		booking.SpecialRequest,
	).Scan(&id, &createdAt, &conflicts)

	if err != nil {
		err = classify("reserve seats for show "+booking.ShowID, err)
		if errors.Is(err, ErrSeatTaken) {
			// the advisory lock makes this unreachable in practice; the primary
			// key still has the final word
			r.log.Warn("Seat uniqueness constraint rejected reserve",
				zap.Error(err),
				zap.String("show_id", booking.ShowID),
				zap.Strings("seats", booking.Seats),
			)
			return nil, err
		}
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.String("show_id", booking.ShowID),
			zap.String("student_id", booking.StudentID),
		)
		return nil, err
	}

	if len(conflicts) > 0 {
		return &entity.ReserveResult{ConflictSeats: conflicts}, nil
	}

	if id == nil || createdAt == nil {
		r.log.Error("reserve_seats returned neither booking nor conflict",
			zap.String("show_id", booking.ShowID),
		)
		return nil, classify("reserve seats for show "+booking.ShowID, errors.New("empty reserve result"))
	}

	created := *booking
	created.ID = *id
	created.CreatedAt = *createdAt
	created.Status = entity.BookingStatusConfirmed

	return &entity.ReserveResult{Booking: &created}, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, classify("find booking by ID "+id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindConfirmedByShow(ctx context.Context, showID string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE show_id = $1 AND status = 'confirmed'
		ORDER BY booking_date DESC
	`

	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		r.log.Error("Failed to find confirmed bookings by show",
			zap.Error(err),
			zap.String("show_id", showID),
		)
		return nil, classify("find confirmed bookings by show "+showID, err)
	}

	return r.collect(rows, "find confirmed bookings by show "+showID)
}

func (r *bookingRepository) FindConfirmedByAttendee(ctx context.Context, showID, name, studentID string) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE show_id = $1 AND student_id = $2 AND name = $3 AND status = 'confirmed'
		ORDER BY booking_date DESC
	`

	rows, err := r.db.Query(ctx, query, showID, studentID, name)
	if err != nil {
		r.log.Error("Failed to find bookings by attendee",
			zap.Error(err),
			zap.String("show_id", showID),
			zap.String("student_id", studentID),
		)
		return nil, classify("find bookings by attendee "+studentID, err)
	}

	return r.collect(rows, "find bookings by attendee "+studentID)
}

func (r *bookingRepository) collect(rows pgx.Rows, op string) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, classify("scan booking row", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, classify(op, err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking entity.Booking
		status  string
	)
	err := row.Scan(
		&booking.ID,
		&booking.ShowID,
		&booking.Name,
		&booking.StudentID,
		&booking.SeatGrade,
		&booking.Seats,
		&booking.SpecialRequest,
		&status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	booking.Status = entity.BookingStatus(status)
	return &booking, nil
}
