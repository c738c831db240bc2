package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"jest/internal/engine"
	"jest/internal/store"
)

// Options configures every game the server hosts.
type Options struct {
	Port          int
	Variant       engine.Variant
	Extension     bool
	PromptTimeout time.Duration // 0 waits for humans forever
	Store         store.Store
	Logger        *zap.Logger
	Dev           bool // routes /api/snapshot
}

func (o Options) withDefaults() Options {
	if o.Variant == nil {
		o.Variant = engine.Standard{}
	}
	if o.Store == nil {
		o.Store = store.NewMemoryStore()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	opts     Options
}

func New(opts Options) *Server {
	opts = opts.withDefaults()
	return &Server{
		handlers: NewHandlers(opts),
		opts:     opts,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/create", s.handlers.HandleCreateGame)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/player-id", s.handlers.HandlePlayerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)
	if s.opts.Dev {
		mux.HandleFunc("/api/snapshot", s.handlers.HandleSnapshot)
	}
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.opts.Port)
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("jest server starting",
			zap.String("addr", addr),
			zap.String("variant", s.opts.Variant.Name()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.handlers.Close()
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
