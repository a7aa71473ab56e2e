package status

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 2 * time.Second

// Service serves the registry over HTTP at /metrics
// An empty address disables the listener
type Service struct {
	registry *Registry
	addr     string
	logger   *zap.Logger

	srv      *http.Server
	listener net.Listener
}

// NewService creates a metrics service bound to addr once started
func NewService(registry *Registry, addr string, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		addr:     addr,
		logger:   logger.Named("status"),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "status"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *Service) Init(args ...any) error {
	if s.addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.registry.Handler())
	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.srv == nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("metrics listen %s: %w", s.addr, err)
	}
	s.listener = ln
	s.logger.Info("metrics endpoint started", zap.String("addr", ln.Addr().String()))

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return nil
}

// Stop implements service.Service, idempotent
func (s *Service) Stop() error {
	if s.srv == nil || s.listener == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	s.listener = nil
	s.logger.Info("metrics endpoint stopped")
	return err
}

// Addr returns the bound address, empty before Start
func (s *Service) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Registry returns the underlying metrics registry
func (s *Service) Registry() *Registry {
	return s.registry
}
