// Package server assembles the gin engine and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jarredbaird/express-jobly/config"
	"github.com/jarredbaird/express-jobly/ctxutil"
	"github.com/jarredbaird/express-jobly/handler"
	"github.com/jarredbaird/express-jobly/logging/logger"
	"github.com/jarredbaird/express-jobly/logging/observes"
	"github.com/jarredbaird/express-jobly/middleware"
	"github.com/jarredbaird/express-jobly/net/resp"
	"github.com/jarredbaird/express-jobly/security/jwt"
	"github.com/jarredbaird/express-jobly/validator"
)

// Server is the jobly HTTP server.
type Server struct {
	cfg    *config.Config
	logger *logger.Logger
	engine *gin.Engine
	srv    *http.Server
}

// New builds the engine with the shared middleware chain and all routes.
func New(cfg *config.Config, l *logger.Logger, h *handler.Handler, decoder jwt.TokenDecoder, _ *observes.Observes) (*Server, error) {
	if err := validator.RegisterGin(); err != nil {
		return nil, err
	}

	switch cfg.RunMode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Trace,
		middleware.Logger(l),
		gin.CustomRecovery(recovered(l)),
		middleware.Authenticate(decoder),
	)
	engine.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound("Not Found"))
	})
	h.RegisterRoutes(engine)

	return &Server{
		cfg:    cfg,
		logger: l,
		engine: engine,
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

func recovered(l *logger.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, v any) {
		ctx := ctxutil.FromGinContext(c)
		err := fmt.Errorf("panic: %v", v)
		l.Errorf(ctx, "recovered from %v", err)
		observes.CaptureError(ctx, err)
		resp.Fail(c.Writer, resp.InternalServer("Internal server error"))
		c.Abort()
	}
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(context.Background(), "listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(context.Background(), "shutting down server")

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return <-errCh
}
