package adaptor

import (
	"errors"
	"net/http"

	"arte-booking/internal/usecase"
	"arte-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.ShowService
	log     *zap.Logger
}

func NewShowHandler(service usecase.ShowService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// GetShows handles GET /api/shows
func (h *ShowHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.GetShows(r.Context())
	if err != nil {
		h.log.Error("Failed to get shows", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to get shows")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// GetShowByID handles GET /api/shows/{showId}
func (h *ShowHandler) GetShowByID(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "showId")

	show, err := h.service.GetShowByID(r.Context(), showID)
	if err != nil {
		if errors.Is(err, usecase.ErrShowNotFound) {
			utils.ResponseNotFound(w, "Show not found")
			return
		}
		h.log.Error("Failed to get show", zap.Error(err), zap.String("show_id", showID))
		utils.ResponseInternalError(w, "Failed to get show")
		return
	}

	utils.ResponseSuccess(w, "success", show)
}
