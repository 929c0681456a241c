package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sorotlabs/sorot/internal/logging"
)

// Server wraps the HTTP engine with graceful shutdown.
type Server struct {
	srv *http.Server
	log *logging.Logger
}

func New(addr string, cfg RouterConfig, log *logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(cfg),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Infow("HTTP server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.log.Infow("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
