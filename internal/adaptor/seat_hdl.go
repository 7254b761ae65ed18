package adaptor

import (
	"errors"
	"net/http"

	"arte-booking/internal/usecase"
	"arte-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetAvailability handles GET /api/seats/{showId}. A degraded payload is
// still a 200.
func (h *SeatHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")
	utils.NoStore(w)

	availability, err := h.service.GetAvailability(r.Context(), showID)
	if err != nil {
		if errors.Is(err, usecase.ErrShowNotFound) {
			utils.ResponseNotFound(w, "Show not found")
			return
		}
		h.log.Error("Failed to get seat availability", zap.Error(err), zap.String("show_id", showID))
		utils.ResponseInternalError(w, "Failed to get seat availability")
		return
	}

	utils.ResponseSuccess(w, availability.Message, availability)
}
