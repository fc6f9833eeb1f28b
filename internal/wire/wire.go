package wire

import (
	"net/http"

	"bite-reviews/internal/adaptor"
	"bite-reviews/internal/data/repository"
	"bite-reviews/internal/usecase"
	"bite-reviews/pkg/mailer"
	"bite-reviews/pkg/middleware"
	"bite-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, notifier mailer.Notifier, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, service, logger)
	wireReview(r, handler, service, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
