// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stats

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/multipool/internal/logger"
)

// Server wraps the stats HTTP server with graceful shutdown.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer builds the stats server listening on address.
func NewServer(handler http.Handler, address string, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: log,
	}
}

// Run serves until Shutdown is called. A closed-server error is normal
// termination and reported as nil.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("launching stats server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error shutting down stats server")
	}
}
