package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Sternrassler/solvecache/pkg/logging"
	"github.com/Sternrassler/solvecache/pkg/matrix"
	"github.com/Sternrassler/solvecache/pkg/memo"
)

// server owns the single current matrix. memo.CachedValue performs no
// locking, so every container access runs under mu; the whole
// check-compute-store sequence in Compute is one critical section.
type server struct {
	mu        sync.Mutex
	container *memo.CachedValue[*matrix.Dense]
	memoizer  *memo.Memoizer[*matrix.Dense, matrix.SolveOptions]
	logger    zerolog.Logger
}

func newServer(logger zerolog.Logger) *server {
	return &server{
		memoizer: memo.NewMemoizer[*matrix.Dense, matrix.SolveOptions]("inverse"),
		logger:   logger,
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/matrix", s.matrixHandler)
	mux.HandleFunc("/inverse", s.inverseHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func main() {
	// Configuration from environment
	port := getEnv("PORT", "8080")
	logLevel := getEnv("LOG_LEVEL", "info")

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(logLevel),
		Output: os.Stderr,
	})

	srv := newServer(logger)

	addr := ":" + port
	logger.Info().Str("addr", addr).Msg("starting solve-server")

	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// matrixHandler replaces the current matrix and thereby invalidates any
// cached inverse. Body: JSON array of rows, e.g. [[4,7],[2,6]].
func (s *server) matrixHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var rows [][]float64
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, fmt.Sprintf("invalid body: %v", err), http.StatusBadRequest)
		return
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rejected matrix upload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.container == nil {
		s.container = memo.New(m)
	} else {
		s.container.Set(m)
	}
	s.mu.Unlock()

	s.logger.Info().
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Msg("matrix replaced")
	w.WriteHeader(http.StatusNoContent)
}

// inverseHandler returns the inverse of the current matrix, served from
// cache when the requested options match the last computation. Query
// parameters: tolerance (float), refine (bool).
func (s *server) inverseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	opts := matrix.DefaultSolveOptions()
	if v := r.URL.Query().Get("tolerance"); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid tolerance: %v", err), http.StatusBadRequest)
			return
		}
		opts.Tolerance = tol
	}
	if v := r.URL.Query().Get("refine"); v != "" {
		refine, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid refine flag: %v", err), http.StatusBadRequest)
			return
		}
		opts.Refine = refine
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.container == nil {
		http.Error(w, "no matrix loaded", http.StatusNotFound)
		return
	}

	inv, err := s.memoizer.Compute(s.container, opts, matrix.Inverse)
	if err != nil {
		s.logger.Error().Err(err).Float64("tolerance", opts.Tolerance).Msg("inversion failed")
		status := http.StatusInternalServerError
		if errors.Is(err, matrix.ErrSingular) ||
			errors.Is(err, matrix.ErrNotSquare) ||
			errors.Is(err, matrix.ErrInvalidTolerance) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(inv.RowSlices()); err != nil {
		s.logger.Error().Err(err).Msg("failed to write response")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
