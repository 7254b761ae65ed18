package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"arte-booking/internal/data/repository"
	"arte-booking/internal/dto/request"
	"arte-booking/internal/usecase"
	"arte-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; the largest legal booking is far below.
const maxBodyBytes = 64 << 10

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings/{showId}
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")

	var req request.CreateBookingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), showID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// GetBooking handles GET /api/bookings/{showId}/{bookingId}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	utils.NoStore(w)

	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "showId"), chi.URLParam(r, "bookingId"))
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookings handles GET /api/bookings/{showId}
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")
	utils.NoStore(w)

	page := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("perPage"), request.DefaultPerPage),
	}
	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Invalid pagination", errs)
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), showID, &page)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// VerifyBooking handles POST /api/bookings/verify
func (h *BookingHandler) VerifyBooking(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyBookingRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bookings, err := h.service.VerifyBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify booking")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// handleServiceError maps service errors to HTTP responses
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var (
		validationErr *usecase.ValidationError
		conflictErr   *usecase.ConflictError
		periodErr     *usecase.PeriodClosedError
	)

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &conflictErr):
		h.log.Info(operation+" failed - seats already booked",
			zap.Strings("conflict_seats", conflictErr.Seats),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "Some of the selected seats are already booked",
			map[string]any{"conflictSeats": conflictErr.Seats})

	case errors.As(err, &periodErr):
		utils.ResponseForbidden(w, "Booking is not open", map[string]any{
			"opensAt":  periodErr.OpensAt.Format(time.RFC3339),
			"closesAt": periodErr.ClosesAt.Format(time.RFC3339),
		})

	case errors.Is(err, usecase.ErrShowNotFound):
		utils.ResponseNotFound(w, "Show not found")

	case errors.Is(err, usecase.ErrBookingNotFound):
		utils.ResponseNotFound(w, "No matching booking found")

	case errors.Is(err, usecase.ErrOutcomeUnknown):
		h.log.Error(operation+" outcome unknown",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Booking result is unknown, check seat availability before trying again")

	case errors.Is(err, repository.ErrSchemaMissing):
		h.log.Error(operation+" failed - schema missing",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Booking storage is not set up")

	default:
		h.log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
