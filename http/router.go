package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Rate limit scopes. Each has its own quota per client.
const (
	scopeAnalysis    = "analysis"
	scopeCalculators = "calculators"
)

type Handlers struct {
	Analysis   *AnalysisHandler
	Financing  *FinancingHandler
	Consortium *ConsortiumHandler
	Scenarios  *ScenarioHandler
	Strategies *StrategyHandler
	Rates      *RateHandler
}

// NewRouter mounts every endpoint. POST endpoints sit behind the rate limiter,
// the full analysis in its own scope; metrics may be nil.
func NewRouter(h Handlers, limiter *RateLimiter, metrics *Metrics, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/analysis/last", h.Analysis.Last)
	r.Get("/rates/selic", h.Rates.Selic)

	r.With(limiter.Middleware(scopeAnalysis, log)).Post("/analysis", h.Analysis.Analyze)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware(scopeCalculators, log))
		r.Post("/financing/schedule", h.Financing.Schedule)
		r.Post("/consortium/installment", h.Consortium.Installment)
		r.Post("/scenarios", h.Scenarios.Run)
		r.Post("/strategies/bid", h.Strategies.Bid)
		r.Post("/strategies/resale", h.Strategies.Resale)
		r.Post("/strategies/rental", h.Strategies.Rental)
	})

	return r
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration_ms", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP request")
		})
	}
}
