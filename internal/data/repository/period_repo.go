package repository

import (
	"context"

	"arte-booking/internal/data/entity"
	"arte-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PeriodRepository interface {
	// FindByShowID returns nil, nil when the show has no booking window,
	// meaning it is always open.
	FindByShowID(ctx context.Context, showID string) (*entity.BookingPeriod, error)
}

type periodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPeriodRepository(db database.PgxIface, log *zap.Logger) PeriodRepository {
	return &periodRepository{
		db:  db,
		log: log.With(zap.String("repository", "period")),
	}
}

func (r *periodRepository) FindByShowID(ctx context.Context, showID string) (*entity.BookingPeriod, error) {
	query := `
		SELECT show_id, opens_at, closes_at
		FROM booking_periods
		WHERE show_id = $1
	`

	var period entity.BookingPeriod
	err := r.db.QueryRow(ctx, query, showID).Scan(
		&period.ShowID,
		&period.OpensAt,
		&period.ClosesAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking period",
			zap.Error(err),
			zap.String("show_id", showID),
		)
		return nil, classify("find booking period for show "+showID, err)
	}

	return &period, nil
}
