package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/vision-demos/internal/config"
)

// shutdownTimeout bounds how long in-flight requests may take to finish.
const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server of the web front-end.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a server for handler with the configured timeouts.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *logrus.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			MaxHeaderBytes:    1 << 20,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			ErrorLog:          log.New(logger.WriterLevel(logrus.ErrorLevel), "", 0),
		},
	}
}

// Run listens on the configured address until the server is shut down.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ListenAndServe runs the web front-end until ctx is cancelled, then shuts
// it down gracefully.
func ListenAndServe(ctx context.Context, cfg *config.Config, h *Handler, logger *logrus.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	srv := NewServer(cfg.Server, InitRoutes(h, logger), logger)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	logger.WithField("addr", cfg.Server.Addr()).Info("Web server started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Web server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
