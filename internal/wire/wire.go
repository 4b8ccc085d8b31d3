package wire

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"seedco-api/internal/adaptor"
	"seedco-api/internal/data/repository"
	"seedco-api/internal/graph"
	"seedco-api/internal/usecase"
	"seedco-api/pkg/middleware"
	"seedco-api/pkg/utils"
)

// App holds the assembled application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, config, logger)

	schema, err := graph.NewSchema(service, logger)
	if err != nil {
		return nil, err
	}

	handler := adaptor.NewHandler(service, schema, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))

	limiter := httprate.Limit(
		config.RateLimit.MaxRequests,
		config.RateLimit.Window(),
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseTooManyRequests(w, "Too many requests from this IP, please try again later.")
		}),
	)

	authenticate := middleware.Authenticate(repo.User, config.JWT.Secret, logger)

	r.Group(func(r chi.Router) {
		r.Use(limiter)
		r.Use(authenticate)

		wireAuth(r, handler.Auth, logger)
		wireUser(r, handler.User, logger)
		wireGraphQL(r, handler.GraphQL)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Server is running", map[string]any{
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	return r
}
