package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/repository"
)

const selicSource = "bcb-sgs-432"

// RateSource provides the annual opportunity rate used as discount rate.
// Implementations never fail: they fall back to a documented default.
type RateSource interface {
	CurrentRate(ctx context.Context) domain.RateQuote
}

type SelicConfig struct {
	URL      string
	Timeout  time.Duration
	CacheTTL time.Duration
	// FallbackCounter is incremented whenever the fallback rate is served. Optional.
	FallbackCounter prometheus.Counter
}

// SelicService fetches the Selic target rate from the Banco Central SGS API,
// caching the last good quote.
type SelicService struct {
	client    *resty.Client
	url       string
	ttl       time.Duration
	cache     repository.CacheRepository
	log       zerolog.Logger
	fallbacks prometheus.Counter
	now       func() time.Time
}

// sgsPoint is one observation of an SGS series: {"data":"17/10/2026","valor":"10.50"}.
type sgsPoint struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

func NewSelicService(cfg SelicConfig, cache repository.CacheRepository, log zerolog.Logger) *SelicService {
	if cfg.URL == "" {
		cfg.URL = SelicURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = SelicTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = SelicCacheTTL
	}

	return &SelicService{
		client:    resty.New().SetTimeout(cfg.Timeout).SetHeader("Accept", "application/json"),
		url:       cfg.URL,
		ttl:       cfg.CacheTTL,
		cache:     cache,
		log:       log.With().Str("component", "selic").Logger(),
		fallbacks: cfg.FallbackCounter,
		now:       time.Now,
	}
}

// CurrentRate returns the cached quote when fresh, otherwise fetches a new
// one. Any failure yields FallbackSelicRate with a warning.
func (s *SelicService) CurrentRate(ctx context.Context) domain.RateQuote {
	if quote, ok := s.cached(ctx); ok {
		s.log.Debug().Float64("rate", quote.Rate).Msg("Cache hit")
		return quote
	}

	rate, err := s.fetch(ctx)
	if err != nil {
		warning := fmt.Sprintf("could not fetch the Selic rate (%v); using default of %.2f%%", err, FallbackSelicRate*100)
		s.log.Warn().Err(err).Float64("fallback", FallbackSelicRate).Msg("Selic fetch failed, using fallback rate")
		if s.fallbacks != nil {
			s.fallbacks.Inc()
		}
		return domain.RateQuote{
			Rate:      FallbackSelicRate,
			Source:    "fallback",
			Fallback:  true,
			Warning:   warning,
			FetchedAt: s.now(),
		}
	}

	quote := domain.RateQuote{
		Rate:      rate,
		Source:    selicSource,
		FetchedAt: s.now(),
	}
	s.store(ctx, quote)

	s.log.Info().Float64("rate", rate).Msg("Fetched Selic rate")
	return quote
}

func (s *SelicService) fetch(ctx context.Context) (float64, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("status %d", resp.StatusCode())
	}
	return parseSelic(resp.Body())
}

// parseSelic reads the latest observation of an SGS payload and converts the
// percentage into a decimal fraction.
func parseSelic(body []byte) (float64, error) {
	var points []sgsPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(points) == 0 {
		return 0, errors.New("empty series")
	}

	raw := strings.Replace(strings.TrimSpace(points[len(points)-1].Value), ",", ".", 1)
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", points[len(points)-1].Value, err)
	}
	if pct < 0 {
		return 0, fmt.Errorf("negative rate %q", points[len(points)-1].Value)
	}
	return pct / 100, nil
}

func (s *SelicService) cached(ctx context.Context) (domain.RateQuote, bool) {
	if s.cache == nil {
		return domain.RateQuote{}, false
	}
	raw, ok := s.cache.Get(ctx, SelicCacheKey)
	if !ok {
		return domain.RateQuote{}, false
	}
	var quote domain.RateQuote
	if err := json.Unmarshal([]byte(raw), &quote); err != nil {
		return domain.RateQuote{}, false
	}
	return quote, true
}

func (s *SelicService) store(ctx context.Context, quote domain.RateQuote) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(quote)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, SelicCacheKey, string(data), s.ttl); err != nil {
		s.log.Warn().Err(err).Msg("Failed to cache Selic rate")
	}
}
