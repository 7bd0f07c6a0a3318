package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPApp struct {
	log             *zap.Logger
	server          *http.Server
	addr            string
	shutdownTimeout time.Duration
}

type Options struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func New(log *zap.Logger, addr string, handler http.Handler, opts Options) *HTTPApp {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	return &HTTPApp{
		log: log,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       opts.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      opts.WriteTimeout,
		},
		addr:            addr,
		shutdownTimeout: opts.ShutdownTimeout,
	}
}

func (a *HTTPApp) Run() error {
	const op = "httpapp.Run"

	l, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return a.Serve(l)
}

// Serve runs the server on an existing listener.
func (a *HTTPApp) Serve(l net.Listener) error {
	const op = "httpapp.Serve"

	a.log.Info("HTTP server started", zap.String("addr", l.Addr().String()))

	if err := a.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *HTTPApp) Stop() {
	a.log.Info("stopping HTTP server", zap.String("addr", a.addr))

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Warn("graceful shutdown failed", zap.Error(err))
		_ = a.server.Close()
	}
}
