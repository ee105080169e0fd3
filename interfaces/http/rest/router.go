package rest

import (
	"net/http"

	"portfolio-backend/application/services"
	"portfolio-backend/interfaces/http/rest/handlers"
	"portfolio-backend/interfaces/http/rest/middleware"
	apperrors "portfolio-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	subscriptions  *services.SubscriptionService
	allowedOrigins []string
	logger         *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	subscriptions *services.SubscriptionService,
	allowedOrigins []string,
	logger *zap.Logger,
) *Router {
	return &Router{
		subscriptions:  subscriptions,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	}))
	router.Use(apperrors.NewErrorHandler(rt.logger).Middleware)

	// The proxy answers on any path. Methods chi does not know still get
	// the JSON 405.
	newsletterHandler := handlers.NewNewsletterHandler(rt.subscriptions, rt.logger)
	router.HandleFunc("/", newsletterHandler.Subscribe)
	router.HandleFunc("/*", newsletterHandler.Subscribe)
	router.MethodNotAllowed(newsletterHandler.Subscribe)

	return router
}
