package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"credit-compare/config"
	"credit-compare/domain"
	httpLayer "credit-compare/http"
	"credit-compare/logger"
	"credit-compare/repository"
	"credit-compare/service"
)

type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "credit-compare",
		Short:         "Compare financing and consortium costs in present value",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
			logger.SetGlobalLogger(a.log)
			return nil
		},
	}

	root.AddCommand(a.serveCmd(), a.analyzeCmd(), a.selicCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newCache picks Redis when REDIS_ADDR is set, the in-memory cache otherwise.
// The returned func releases the cache.
func (a *app) newCache() (repository.CacheRepository, func()) {
	if a.cfg.RedisAddr != "" {
		a.log.Info().Str("addr", a.cfg.RedisAddr).Msg("Using Redis rate cache")
		cache := repository.NewRedisCache(a.cfg.RedisAddr)
		return cache, func() {
			if err := cache.Close(); err != nil {
				a.log.Warn().Err(err).Msg("Error closing Redis cache")
			}
		}
	}
	return repository.NewMemoryCache(), func() {}
}

func (a *app) newSelic(fallbacks prometheus.Counter) (*service.SelicService, func()) {
	cache, closeCache := a.newCache()
	return service.NewSelicService(service.SelicConfig{
		URL:             a.cfg.SelicURL,
		Timeout:         a.cfg.SelicTimeout,
		CacheTTL:        a.cfg.SelicCacheTTL,
		FallbackCounter: fallbacks,
	}, cache, a.log), closeCache
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve()
		},
	}
}

func (a *app) serve() error {
	metrics := httpLayer.NewMetrics()
	selic, closeCache := a.newSelic(metrics.RateFallbacks)
	defer closeCache()

	analysisRepo := repository.NewAnalysisRepositoryMemory()
	analysisService := service.NewAnalysisService(analysisRepo, selic, a.log)

	rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimitCapacity, a.cfg.RateLimitRefill)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Analysis:   httpLayer.NewAnalysisHandler(analysisService, metrics, a.log),
		Financing:  httpLayer.NewFinancingHandler(a.log),
		Consortium: httpLayer.NewConsortiumHandler(a.log),
		Scenarios:  httpLayer.NewScenarioHandler(a.log),
		Strategies: httpLayer.NewStrategyHandler(a.log),
		Rates:      httpLayer.NewRateHandler(selic, a.log),
	}, rateLimiter, metrics, a.log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info().Int("port", a.cfg.Port).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-quit:
		a.log.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		a.log.Error().Err(err).Msg("Error during server shutdown")
	}

	a.log.Info().Msg("Server exited")
	return nil
}

func (a *app) analyzeCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one comparison from a YAML input file and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readAnalysisInput(inputPath)
			if err != nil {
				return err
			}

			selic, closeCache := a.newSelic(nil)
			defer closeCache()

			analysisService := service.NewAnalysisService(
				repository.NewAnalysisRepositoryMemory(),
				selic,
				a.log,
			)
			result, err := analysisService.Analyze(cmd.Context(), input)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML file with the analysis input")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readAnalysisInput(path string) (domain.AnalysisInput, error) {
	var input domain.AnalysisInput

	data, err := os.ReadFile(path)
	if err != nil {
		return input, fmt.Errorf("read input: %w", err)
	}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("parse input %s: %w", path, err)
	}
	return input, nil
}

func (a *app) selicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selic",
		Short: "Print the current Selic opportunity rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			selic, closeCache := a.newSelic(nil)
			defer closeCache()

			quote := selic.CurrentRate(cmd.Context())
			if quote.Fallback {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", quote.Warning)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f%% a.a. (%s)\n", quote.Rate*100, quote.Source)
			return nil
		},
	}
}
