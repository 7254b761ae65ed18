// internal/wire/wire.go
package wire

import (
	"net/http"

	"arte-booking/internal/adaptor"
	"arte-booking/internal/data/repository"
	"arte-booking/internal/metrics"
	"arte-booking/internal/queue"
	"arte-booking/internal/usecase"
	"arte-booking/pkg/middleware"
	"arte-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Deps are the external resources the app runs on. Redis and Publisher may
// be nil.
type Deps struct {
	Repo      *repository.Repository
	Redis     *redis.Client
	Publisher queue.Publisher
}

// Wiring builds services, handlers and routes
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}

	service := usecase.NewService(deps.Repo, publisher, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	deps Deps,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	metrics.Register()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins...))
	r.Use(metrics.Middleware)

	// Apply routes
	wireShow(r, handler.Show)
	wireSeat(r, handler.Seat)
	wireBooking(r, handler.Booking, deps.Redis, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	return r
}
