package response

import "time"

type SeatStatistics struct {
	TotalBookings    int `json:"totalBookings"`
	TotalSeatsBooked int `json:"totalSeatsBooked"`
	UniqueAttendees  int `json:"uniqueAttendees"`
}

// SeatAvailabilityResponse lists held seats per grade. Degraded is set when
// the store could not be read and every seat is shown as free.
type SeatAvailabilityResponse struct {
	ShowID           string              `json:"showId"`
	UnavailableSeats map[string][]string `json:"unavailableSeats"`
	Statistics       SeatStatistics      `json:"statistics"`
	Degraded         bool                `json:"degraded"`
	NeedsSetup       bool                `json:"needsSetup"`
	Message          string              `json:"message"`
	Timestamp        time.Time           `json:"timestamp"`
}
