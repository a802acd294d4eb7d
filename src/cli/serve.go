package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/khabaroff/thesis-management/src/database"
	"github.com/khabaroff/thesis-management/src/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Int("port", cfg.Port).
		Str("env", cfg.Environment).
		Str("registration_mode", cfg.RegistrationMode).
		Str("version", appVersion).
		Msg("starting server")

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	db, err := database.New(connectCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info().Msg("database connected")

	srv := server.New(cfg, db, appVersion)
	srv.SeedAdmin(ctx)

	return srv.Run(ctx)
}
