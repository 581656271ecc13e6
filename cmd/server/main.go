package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	_ "github.com/cf-northwind/admin-dashboard/docs"
	"github.com/cf-northwind/admin-dashboard/internal/api"
	"github.com/cf-northwind/admin-dashboard/internal/core/domain"
	"github.com/cf-northwind/admin-dashboard/internal/infrastructure/config"
	"github.com/cf-northwind/admin-dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	logRoleTokens(log, cfg.Auth.RoleTokens())

	e, dispatcher := api.NewRouter(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher.Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("dashboard listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// logRoleTokens logs the unverified claims of each configured role token so
// misdeployed secrets show up at startup instead of as page-level errors.
// Signatures are deliberately not checked: the backend owns verification.
func logRoleTokens(log zerolog.Logger, tokens map[domain.Role]string) {
	parser := jwt.NewParser()
	for role, token := range tokens {
		if token == "" {
			log.Warn().Str("role", string(role)).Msg("role token not configured")
			continue
		}
		claims := jwt.MapClaims{}
		if _, _, err := parser.ParseUnverified(token, claims); err != nil {
			log.Warn().Err(err).Str("role", string(role)).Msg("role token is not a parsable JWT")
			continue
		}
		log.Info().Str("role", string(role)).Interface("claims", claims).Msg("role token configured")
	}
}
