package http

import (
	"net/http"

	"github.com/atinyakov/oceanview/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RequestObserver instruments every request. *metrics.Metrics implements it.
type RequestObserver interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

// NewRouter constructs and returns an HTTP handler that serves the
// reservation API, the metrics endpoint and the static web client.
//
// Routes:
//
//	POST /api/login                     → authHandler.Login
//	POST /api/logout                    → authHandler.Logout
//	GET  /api/me                        → authHandler.Me (session)
//	GET  /api/rates                     → Rates
//	GET  /api/help                      → Help
//	POST /api/reservations              → reservationHandler.Create (session)
//	GET  /api/reservations              → reservationHandler.List (session)
//	GET  /api/reservations/{number}     → reservationHandler.Get (session)
//	GET  /api/bill/{number}             → reservationHandler.Bill (session)
//	GET  /healthz                       → Health
//	GET  /metrics                       → observer.Handler
//	GET  /*                             → files under publicDir
//
// Middleware chain (applied in order): CORS, request logging, metrics and,
// on /api only, JSON content-type enforcement.
func NewRouter(
	authHandler *AuthHandler,
	reservationHandler *ReservationHandler,
	observer RequestObserver,
	publicDir string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(middleware.WithRequestLogging(logger))
	if observer != nil {
		r.Use(observer.Middleware)
	}

	r.MethodNotAllowed(MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.NotFound(NotFound)
		r.MethodNotAllowed(MethodNotAllowed)

		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/rates", Rates)
		r.Get("/help", Help)

		// Protected group: requires a live session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(authHandler.AuthService))
			r.Get("/me", authHandler.Me)
			r.Post("/reservations", reservationHandler.Create)
			r.Get("/reservations", reservationHandler.List)
			r.Get("/reservations/{number}", reservationHandler.Get)
			r.Get("/bill/{number}", reservationHandler.Bill)
		})
	})

	r.Get("/healthz", Health)
	if observer != nil {
		r.Method(http.MethodGet, "/metrics", observer.Handler())
	}
	r.Handle("/*", Static(publicDir))

	return r
}
