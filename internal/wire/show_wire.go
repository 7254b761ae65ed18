package wire

import (
	"arte-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler) {
	r.Get("/api/shows", showHandler.GetShows)
	r.Get("/api/shows/{showId}", showHandler.GetShowByID)
}
