package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/learnnect/otp-backend/internal/config"
	"github.com/learnnect/otp-backend/internal/transport/http/handler"
	appmiddleware "github.com/learnnect/otp-backend/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger)
	r.Use(appmiddleware.Recover(cfg.Production()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	healthH := handler.NewHealthHandler(deps.StartedAt, cfg.AppEnv, deps.EmailConfigured)
	otpH := handler.NewOTPHandler(deps.OTP, cfg.Production())
	confirmH := handler.NewConfirmationHandler(deps.Confirmation, cfg.Production())

	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/send-otp", otpH.Send)
		r.Post("/verify-otp", otpH.Verify)
		r.Post("/send-confirmation", confirmH.Send)
	})

	return r
}
