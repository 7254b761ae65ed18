package response

import (
	"time"

	"arte-booking/internal/data/entity"
)

type CreateBookingResponse struct {
	BookingID   string    `json:"bookingId"`
	BookingDate time.Time `json:"bookingDate"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	ShowID         string               `json:"showId"`
	Name           string               `json:"name"`
	StudentID      string               `json:"studentId"`
	SeatGrade      string               `json:"seatGrade"`
	SelectedSeats  []string             `json:"selectedSeats"`
	SpecialRequest *string              `json:"specialRequest,omitempty"`
	Status         entity.BookingStatus `json:"status"`
	BookingDate    time.Time            `json:"bookingDate"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID.String(),
		ShowID:         b.ShowID,
		Name:           b.Name,
		StudentID:      b.StudentID,
		SeatGrade:      b.SeatGrade,
		SelectedSeats:  b.Seats,
		SpecialRequest: b.SpecialRequest,
		Status:         b.Status,
		BookingDate:    b.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
