package queue

import "time"

const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published once per committed booking.
type BookingConfirmedEvent struct {
	BookingID   string    `json:"bookingId"`
	ShowID      string    `json:"showId"`
	ShowTitle   string    `json:"showTitle"`
	Name        string    `json:"name"`
	StudentID   string    `json:"studentId"`
	SeatGrade   string    `json:"seatGrade"`
	Seats       []string  `json:"seats"`
	BookingDate time.Time `json:"bookingDate"`
}
