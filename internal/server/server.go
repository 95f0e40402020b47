// Package server exposes the Fibonacci and abbreviation algorithms over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/agbru/algodemo/internal/abbreviation"
	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	defaultRequestTimeout = time.Minute
)

// Config holds the server settings.
type Config struct {
	Port        string
	DefaultAlgo string
	// Timeout bounds each request's computation.
	Timeout  time.Duration
	Security SecurityConfig
}

// Server serves /fib, /abbr, /health and /metrics.
type Server struct {
	factory    fibonacci.CalculatorFactory
	cfg        Config
	logger     logging.Logger
	metrics    *Metrics
	httpServer *http.Server
}

// NewServer builds a server. Zero-valued settings take defaults and a nil
// logger falls back to the default zerolog logger.
func NewServer(factory fibonacci.CalculatorFactory, cfg Config, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}
	if cfg.DefaultAlgo == "" {
		cfg.DefaultAlgo = "fast"
	}
	if cfg.Security.MaxNValue == 0 {
		cfg.Security = DefaultSecurityConfig()
	}
	s := &Server{
		factory: factory,
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
	}
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return SecurityMiddleware(s.cfg.Security, s.metricsMiddleware(h))
	}
	mux.HandleFunc("/fib", wrap(s.handleFib))
	mux.HandleFunc("/abbr", wrap(s.handleAbbr))
	mux.HandleFunc("/health", wrap(s.handleHealth))
	mux.HandleFunc("/metrics", SecurityMiddleware(s.cfg.Security, s.handleMetrics))
	return mux
}

// Start listens until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type fibResponse struct {
	N          int64  `json:"n"`
	Algorithm  string `json:"algorithm"`
	Result     string `json:"result"`
	Bits       int    `json:"bits,omitempty"`
	LastDigits int    `json:"last_digits,omitempty"`
	Duration   string `json:"duration"`
}

type planStep struct {
	Index  int    `json:"index"`
	Rune   string `json:"rune"`
	Op     string `json:"op"`
	Target *int   `json:"target,omitempty"`
}

type abbrResponse struct {
	A        string     `json:"a"`
	B        string     `json:"b"`
	Possible bool       `json:"possible"`
	Plan     []planStep `json:"plan,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleFib(w http.ResponseWriter, r *http.Request) {
	if !s.requireGET(w, r) {
		return
	}
	q := r.URL.Query()

	n, err := strconv.ParseInt(q.Get("n"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid n: %q", q.Get("n")))
		return
	}
	if n > s.cfg.Security.MaxNValue {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("n must not exceed %d", s.cfg.Security.MaxNValue))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Timeout)
	defer cancel()
	start := time.Now()

	if raw := q.Get("last_digits"); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid last_digits: %q", raw))
			return
		}
		digits, err := fibonacci.LastDigits(n, k)
		if err != nil {
			s.writeCalcError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, fibResponse{
			N: n, Algorithm: "modular", Result: digits, LastDigits: k,
			Duration: time.Since(start).String(),
		})
		return
	}

	algo := q.Get("algo")
	if algo == "" {
		algo = s.cfg.DefaultAlgo
	}
	calc, err := s.factory.Get(algo)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := calc.Calculate(ctx, nil, 0, n)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	s.logger.Debug("fib computed",
		logging.Int64("n", n), logging.String("algo", algo), logging.Duration("elapsed", time.Since(start)))
	s.writeJSON(w, http.StatusOK, fibResponse{
		N: n, Algorithm: algo, Result: result.String(), Bits: result.BitLen(),
		Duration: time.Since(start).String(),
	})
}

func (s *Server) handleAbbr(w http.ResponseWriter, r *http.Request) {
	if !s.requireGET(w, r) {
		return
	}
	q := r.URL.Query()
	if !q.Has("a") {
		s.writeError(w, http.StatusBadRequest, "missing parameter: a")
		return
	}
	a, b := q.Get("a"), q.Get("b")
	limit := s.cfg.Security.MaxAbbrLength
	if utf8.RuneCountInString(a) > limit || utf8.RuneCountInString(b) > limit {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("a and b must not exceed %d characters", limit))
		return
	}

	table := abbreviation.NewTable(a, b)
	resp := abbrResponse{A: a, B: b, Possible: table.Possible()}
	if plan, ok := table.Plan(); ok {
		resp.Plan = make([]planStep, 0, len(plan))
		for _, st := range plan {
			ps := planStep{Index: st.Index, Rune: string(st.Rune), Op: st.Op.String()}
			if st.Op != abbreviation.OpDelete {
				ps.Target = &st.Target
			}
			resp.Plan = append(resp.Plan, ps)
		}
	}
	s.metrics.ObserveAnswer(resp.Possible)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.requireGET(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !s.requireGET(w, r) {
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) requireGET(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// writeCalcError maps calculation errors to HTTP status codes.
func (s *Server) writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsInvalidArgument(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, "calculation timed out")
	case errors.Is(err, context.Canceled):
		s.writeError(w, http.StatusServiceUnavailable, "request canceled")
	default:
		s.logger.Error("calculation failed", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", err)
	}
}
