package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"arte-booking/pkg/utils"
)

var (
	ErrShowNotFound    = errors.New("show not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrOutcomeUnknown means the reserve call did not answer in time. The
	// booking may or may not exist; clients must re-read availability before
	// submitting again.
	ErrOutcomeUnknown = errors.New("booking outcome unknown")
)

// ValidationError lists problems per request field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

// PeriodClosedError rejects a booking made outside the show's booking window.
type PeriodClosedError struct {
	OpensAt  time.Time
	ClosesAt time.Time
}

func (e *PeriodClosedError) Error() string {
	return fmt.Sprintf("booking period closed: open from %s until %s",
		e.OpensAt.Format(time.RFC3339), e.ClosesAt.Format(time.RFC3339))
}

// ConflictError carries the requested seats that are already held.
type ConflictError struct {
	Seats []string
}

func (e *ConflictError) Error() string {
	return "seats already booked: " + strings.Join(e.Seats, ", ")
}
