// Package server exposes the translation client over HTTP.
//
// The only route is POST /translate/. Every translation failure is answered
// with 500 and the error text in "detail"; bodies that do not match the
// request schema are rejected with 422 before the translator is called.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/valpere/llm-api/internal/config"
	"github.com/valpere/llm-api/internal/translator"
)

type Server struct {
	cfg        config.ServerConfig
	translator translator.Translator
	engine     *gin.Engine
}

// New builds the router. tr is shared by all requests and must be safe for
// concurrent use.
func New(cfg config.ServerConfig, tr translator.Translator) *Server {
	s := &Server{
		cfg:        cfg,
		translator: tr,
		engine:     gin.New(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.engine

	r.HandleMethodNotAllowed = true
	r.Use(requestID(), accessLog(), recovery())

	if len(s.cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		if len(s.cfg.CORSOrigins) == 1 && s.cfg.CORSOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = s.cfg.CORSOrigins
		}
		corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", RequestIDHeader}
		corsCfg.ExposeHeaders = []string{RequestIDHeader}
		r.Use(cors.New(corsCfg))
	}

	r.POST("/translate/", s.handleTranslate)

	r.NoRoute(func(c *gin.Context) {
		abortWithDetail(c, http.StatusNotFound, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		abortWithDetail(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}

// Handler returns the router, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}
	fmt.Fprintf(os.Stderr, "Listening on %s (translator: %s)\n", ln.Addr(), s.translator.Name())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Shutting down...\n")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
