package request

type CreateBookingRequest struct {
	Name           string   `json:"name" validate:"notblank"`
	StudentID      string   `json:"studentId" validate:"notblank"`
	SeatGrade      string   `json:"seatGrade" validate:"notblank"`
	SelectedSeats  []string `json:"selectedSeats" validate:"required,min=1,dive,notblank"`
	SpecialRequest *string  `json:"specialRequest,omitempty" validate:"omitempty,max=500"`
}

type VerifyBookingRequest struct {
	ShowID    string `json:"showId" validate:"notblank"`
	Name      string `json:"name" validate:"notblank"`
	StudentID string `json:"studentId" validate:"notblank"`
}
