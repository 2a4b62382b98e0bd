// Package api provides the HTTP server for the fulfillment webhook.
//
// It exposes the webhook endpoint consumed by the intent-recognition platform
// and a liveness endpoint for infrastructure monitoring. All conversational
// logic lives in the fulfill module.
package api

import (
	"log/slog"
	"net/http"

	"github.com/plantycompare/fulfillment/internal/fulfill"
	"github.com/plantycompare/fulfillment/internal/pricing"
)

// DefaultAddr is the default API server listen address.
const DefaultAddr = ":8080"

// Opts holds configuration options for the API server.
type Opts struct {
	Addr string // server listen address
}

// Option defines a configuration option for the API server.
type Option func(*Opts)

// WithAddr sets the API server listen address.
func WithAddr(addr string) Option {
	return func(o *Opts) {
		o.Addr = addr
	}
}

// Server routes webhook traffic to the turn-processing service.
type Server struct {
	addr string
	svc  *fulfill.Service
}

// NewServer creates an API server around the given turn-processing service,
// applying any provided options.
func NewServer(svc *fulfill.Service, opts ...Option) *Server {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
		slog.Debug("api.NewServer: no listen address provided, using default", "addr", cfg.Addr)
	}
	return &Server{addr: cfg.Addr, svc: svc}
}

// Handler returns the server's HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.webhookHandler)
	mux.HandleFunc("/healthz", s.healthHandler)
	return mux
}

// Run builds the pricing client and turn service from the given options and
// serves the webhook until the listener fails.
func Run(pricingOpts []pricing.Option, apiOpts []Option) error {
	pricingClient := pricing.NewClient(pricingOpts...)
	svc := fulfill.NewService(pricingClient)
	server := NewServer(svc, apiOpts...)

	slog.Info("api.Run: fulfillment webhook listening", "addr", server.addr)
	return http.ListenAndServe(server.addr, server.Handler())
}
