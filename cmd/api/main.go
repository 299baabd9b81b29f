package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/learnnect/otp-backend/internal/application/confirmation"
	"github.com/learnnect/otp-backend/internal/application/otp"
	"github.com/learnnect/otp-backend/internal/config"
	emailinfra "github.com/learnnect/otp-backend/internal/infrastructure/email"
	"github.com/learnnect/otp-backend/internal/infrastructure/otpstore"
	resendinfra "github.com/learnnect/otp-backend/internal/infrastructure/resend"
	smtpinfra "github.com/learnnect/otp-backend/internal/infrastructure/smtp"
	transporthttp "github.com/learnnect/otp-backend/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Email dispatch gateway. With no Resend key the service degrades to
	// development mode: sends are logged and reported as skipped.
	var gateway emailinfra.Gateway
	emailConfigured := true
	switch cfg.EmailProvider {
	case "smtp":
		gateway = smtpinfra.NewGateway(cfg)
	default:
		if cfg.ResendAPIKey == "" {
			log.Println("WARN: RESEND_API_KEY not set, running in development mode")
			gateway = emailinfra.NewDevGateway()
			emailConfigured = false
		} else {
			gateway = resendinfra.NewGateway(cfg)
		}
	}

	// OTP store and its expiry sweep; the sweep stops with the process.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	store := otpstore.New()
	store.StartSweep(sweepCtx, otpstore.SweepInterval)

	deps := &transporthttp.Deps{
		OTP:             otp.NewService(store, gateway, cfg.EmailFrom),
		Confirmation:    confirmation.NewService(gateway, cfg.EmailFrom),
		StartedAt:       time.Now(),
		EmailConfigured: emailConfigured,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, provider=%s)", cfg.AppPort, cfg.AppEnv, cfg.EmailProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	stopSweep()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
