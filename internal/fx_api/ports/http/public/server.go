package public

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/androx6/wsj-fx-api/deploy/config"
	"github.com/androx6/wsj-fx-api/internal/entities"
	mwLogger "github.com/androx6/wsj-fx-api/internal/fx_api/ports/http/public/middleware/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	maxBodyBytes = 1 << 20
	// writeMargin covers sorting, encoding and the network after the last fetch wave.
	writeMargin = 10 * time.Second
)

type Server struct {
	Server       *http.Server
	service      Service
	cacheTTL     time.Duration
	writeTimeout time.Duration
	fetchTimeout time.Duration
	concurrency  int
}

type Option func(s *Server)

// WithBatchBudget lets /fx extend the write deadline to fit the slowest
// possible batch: one fetch timeout per wave of concurrency fetches.
func WithBatchBudget(fetchTimeout time.Duration, concurrency int) Option {
	return func(s *Server) {
		s.fetchTimeout = fetchTimeout
		s.concurrency = concurrency
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(service Service, cacheTTL time.Duration, opts ...Option) *Server {
	s := &Server{
		service:  service,
		cacheTTL: cacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New())
	r.Use(recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/fx", s.GetCloses)
	r.With(limitBody).Post("/fx", s.PostCloses)
	r.MethodNotAllowed(methodNotAllowed)

	return r
}

func StartServer(ctx context.Context, service Service, cfg *config.Config, opts ...Option) <-chan struct{} {
	server := NewServer(service, cfg.HTTPServer.CacheTTL, opts...)
	server.writeTimeout = cfg.HTTPServer.Timeout

	fullBatch := len(entities.CoverageSymbols(entities.CoverageFull))
	if budget := server.batchBudget(fullBatch); budget > cfg.HTTPServer.Timeout {
		slog.Warn("HTTP_TIMEOUT is shorter than a full batch, /fx extends it per request",
			"http_timeout", cfg.HTTPServer.Timeout,
			"full_batch_budget", budget,
		)
	}

	server.Server = &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      server.Router(),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	doneChan := make(chan struct{})

	go func() {
		if err := server.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

func (s *Server) GetCloses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := entities.ClosesRequest{
		Date:     query.Get("date"),
		Coverage: query.Get("coverage"),
		Symbols:  splitSymbols(query.Get("symbols")),
	}

	s.respondCloses(w, r, req)
}

func (s *Server) PostCloses(w http.ResponseWriter, r *http.Request) {
	var req entities.ClosesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, entities.ErrInvalidBody.Error())
		return
	}

	s.respondCloses(w, r, req)
}

func (s *Server) respondCloses(w http.ResponseWriter, r *http.Request, req entities.ClosesRequest) {
	s.extendWriteDeadline(w, r, len(req.NormalizedSymbols()))

	resp, err := s.service.FetchCloses(r.Context(), req)
	switch {
	case errors.Is(err, entities.ErrDateRequired), errors.Is(err, entities.ErrInvalidDate):
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to fetch closes", "request_id", middleware.GetReqID(r.Context()), "error", err)
		RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Cache-Control", s.cacheControl())
	RespondWithJSON(w, http.StatusOK, resp)
}

// batchBudget is the longest a batch of n symbols can take, zero when
// no fetch timeout is known.
func (s *Server) batchBudget(n int) time.Duration {
	if s.fetchTimeout <= 0 || n == 0 {
		return 0
	}
	concurrency := s.concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	waves := (n + concurrency - 1) / concurrency

	return time.Duration(waves)*s.fetchTimeout + writeMargin
}

// extendWriteDeadline keeps the server WriteTimeout from cutting off a
// batch that is still within its fetch budget.
func (s *Server) extendWriteDeadline(w http.ResponseWriter, r *http.Request, n int) {
	budget := s.batchBudget(n)
	if budget == 0 || budget <= s.writeTimeout {
		return
	}

	err := http.NewResponseController(w).SetWriteDeadline(time.Now().Add(budget))
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		slog.Warn("failed to extend write deadline", "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
}

// cacheControl allows shared caches to keep historical closes briefly.
func (s *Server) cacheControl() string {
	ttl := int(s.cacheTTL.Seconds())
	if ttl <= 0 {
		return "no-store"
	}
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d", ttl, ttl)
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Cache-Control", "no-store")
	RespondWithJSON(w, code, errorResponse{Error: message})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, POST")
	RespondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// recoverer turns panics into a JSON 500.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic recovered",
					"request_id", middleware.GetReqID(r.Context()),
					"path", r.URL.Path,
					"panic", rec,
				)
				RespondWithError(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func splitSymbols(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
