package service

import "time"

const (
	MaxAssetPrice     = 1_000_000_000.0
	MaxAnnualRate     = 10.0 // 1000% a.a. as a decimal fraction
	MaxTermMonths     = 600  // 50 years
	MaxFeePct         = 100.0
	MaxBidPct         = 1000.0
	MaxMarkupPct      = 1000.0
	MinOptimisticRate = 0.01

	// Perturbation applied to the base discount rate in the scenario table.
	ScenarioRateShift = 0.02

	FallbackSelicRate = 0.105
	SelicCacheKey     = "selic:current"
	SelicCacheTTL     = time.Hour
	SelicTimeout      = 5 * time.Second
	SelicURL          = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.432/dados/ultimos/1?formato=json"

	// IRR solver limits.
	IRRMaxIterations       = 100
	IRRTolerance           = 1e-10
	irrInitialGuess        = 0.01
	irrLowerBound          = -0.99
	irrUpperBound          = 1e3
	irrDerivativeThreshold = 1e-15
)
