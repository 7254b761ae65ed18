package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"arte-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryBookingRepository(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	first, err := repo.Reserve(ctx, sampleBooking())
	require.NoError(t, err)
	require.NotNil(t, first.Booking)

	t.Run("OverlapIsRejected", func(t *testing.T) {
		b := sampleBooking()
		b.Seats = []string{"1층-앞-1줄-중앙-3번", "1층-앞-1줄-중앙-2번"}

		res, err := repo.Reserve(ctx, b)
		require.NoError(t, err)
		assert.True(t, res.Conflicted())
		assert.Equal(t, []string{"1층-앞-1줄-중앙-2번"}, res.ConflictSeats)

		// nothing from the rejected attempt is held
		res, err = repo.Reserve(ctx, &entity.Booking{ShowID: "rent", Name: "a", StudentID: "1", SeatGrade: "VIP", Seats: []string{"1층-앞-1줄-중앙-3번"}})
		require.NoError(t, err)
		assert.False(t, res.Conflicted())
	})

	t.Run("ShowsAreIndependent", func(t *testing.T) {
		b := sampleBooking()
		b.ShowID = "dead-poets-society"

		res, err := repo.Reserve(ctx, b)
		require.NoError(t, err)
		assert.False(t, res.Conflicted())
	})

	t.Run("Lookups", func(t *testing.T) {
		got, err := repo.FindByID(ctx, first.Booking.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.Booking.Seats, got.Seats)

		byShow, err := repo.FindConfirmedByShow(ctx, "rent")
		require.NoError(t, err)
		require.Len(t, byShow, 2)
		assert.Equal(t, first.Booking.ID, byShow[1].ID, "newest first")

		mine, err := repo.FindConfirmedByAttendee(ctx, "rent", "홍길동", "2401")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, first.Booking.ID, mine[0].ID)
	})

	t.Run("ReturnedBookingIsACopy", func(t *testing.T) {
		first.Booking.Seats[0] = "mutated"

		got, err := repo.FindByID(ctx, first.Booking.ID)
		require.NoError(t, err)
		assert.Equal(t, "1층-앞-1줄-중앙-1번", got.Seats[0])
	})
}

func TestMemoryBookingRepositoryConcurrentReserve(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx := context.Background()

	const workers = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		committed int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := repo.Reserve(ctx, &entity.Booking{
				ShowID:    "rent",
				Name:      fmt.Sprintf("user-%d", i),
				StudentID: fmt.Sprintf("%04d", i),
				SeatGrade: "S석",
				Seats:     []string{"2층-1줄-중앙-1번", fmt.Sprintf("2층-2줄-중앙-%d번", i%12+1)},
			})
			assert.NoError(t, err)
			if err == nil && !res.Conflicted() {
				mu.Lock()
				committed++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, committed, "only one booking may hold the shared seat")

	bookings, err := repo.FindConfirmedByShow(ctx, "rent")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestMemoryBookingRepositoryCanceledContext(t *testing.T) {
	repo := NewMemoryBookingRepository(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Reserve(ctx, sampleBooking())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryPeriodRepository(t *testing.T) {
	repo := NewMemoryPeriodRepository()
	ctx := context.Background()

	period, err := repo.FindByShowID(ctx, "rent")
	require.NoError(t, err)
	assert.Nil(t, period)

	opens := time.Now()
	repo.Set(entity.BookingPeriod{ShowID: "rent", OpensAt: opens, ClosesAt: opens.Add(time.Hour)})

	period, err = repo.FindByShowID(ctx, "rent")
	require.NoError(t, err)
	require.NotNil(t, period)
	assert.True(t, period.Contains(opens))
}

func TestShowRepository(t *testing.T) {
	repo := NewShowRepository(zap.NewNop())
	ctx := context.Background()

	shows, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 3)
	assert.Equal(t, "dead-poets-society", shows[0].ID)

	show, err := repo.FindByID(ctx, "rent")
	require.NoError(t, err)
	require.NotNil(t, show)
	assert.Equal(t, []string{"VIP", "R석", "S석"}, show.GradeNames())
	assert.Equal(t, 216, show.SeatGrades[0].TotalSeats)

	missing, err := repo.FindByID(ctx, "cats")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
