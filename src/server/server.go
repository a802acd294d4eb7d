package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/khabaroff/thesis-management/src/config"
	"github.com/khabaroff/thesis-management/src/database"
	"github.com/khabaroff/thesis-management/src/models"
)

// Server owns the HTTP listener and its dependencies
type Server struct {
	cfg      *config.Config
	db       *database.Database
	services *Services
	http     *http.Server
}

// New wires services on db and builds the HTTP server
func New(cfg *config.Config, db *database.Database, version string) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := NewServices(db.GetPool(), cfg)
	router := NewRouter(cfg, svc, db, version)

	return &Server{
		cfg:      cfg,
		db:       db,
		services: svc,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}
}

// SeedAdmin creates the configured first admin when none exists
func (s *Server) SeedAdmin(ctx context.Context) {
	created, err := s.services.Admins.SeedIfEmpty(ctx, models.AdminInput{
		Username: s.cfg.AdminUsername,
		Email:    s.cfg.AdminEmail,
		Password: s.cfg.AdminPassword,
	})
	switch {
	case err != nil:
		log.Error().Err(err).Msg("failed to create initial admin user")
	case created:
		log.Info().Str("username", s.cfg.AdminUsername).Msg("initial admin user created")
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.http.Addr).Msg("server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server shut down successfully")
	return nil
}
