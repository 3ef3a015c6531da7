package domain

import "time"

// AnalysisInput mirrors the inputs of one comparison run. Rates are decimal
// fractions, fee fields are percentages. DiscountRate is optional: when nil
// the current Selic rate is used.
type AnalysisInput struct {
	AssetPrice    float64  `json:"asset_price" yaml:"asset_price"`
	DownPayment   float64  `json:"down_payment" yaml:"down_payment"`
	DiscountRate  *float64 `json:"discount_rate,omitempty" yaml:"discount_rate,omitempty"`
	FinancingRate float64  `json:"financing_rate" yaml:"financing_rate"`
	FinancingTerm int      `json:"financing_term_months" yaml:"financing_term_months"`
	IncludeTable  bool     `json:"include_schedule" yaml:"include_schedule"`

	ConsortiumTerm int             `json:"consortium_term_months" yaml:"consortium_term_months"`
	AdminFeePct    float64         `json:"admin_fee_pct" yaml:"admin_fee_pct"`
	ReserveFundPct float64         `json:"reserve_fund_pct" yaml:"reserve_fund_pct"`
	Strategies     *StrategyParams `json:"strategies,omitempty" yaml:"strategies,omitempty"`
}

type BidParams struct {
	BidPct float64 `json:"bid_pct" yaml:"bid_pct"`
}

type ResaleParams struct {
	ContemplationMonth int     `json:"contemplation_month" yaml:"contemplation_month"`
	MarkupPct          float64 `json:"markup_pct" yaml:"markup_pct"`
}

type RentalParams struct {
	ContemplationMonth int     `json:"contemplation_month" yaml:"contemplation_month"`
	MonthlyRent        float64 `json:"monthly_rent" yaml:"monthly_rent"`
}

// StrategyParams enables the optional exit-strategy simulations. A nil
// section skips that strategy.
type StrategyParams struct {
	Bid    *BidParams    `json:"bid,omitempty" yaml:"bid,omitempty"`
	Resale *ResaleParams `json:"resale,omitempty" yaml:"resale,omitempty"`
	Rental *RentalParams `json:"rental,omitempty" yaml:"rental,omitempty"`
}

type Verdict struct {
	Winner     Instrument `json:"winner"`
	Difference float64    `json:"difference"`
}

type StrategyOutcomes struct {
	Bid    *BidOutcome    `json:"bid,omitempty"`
	Resale *ResaleOutcome `json:"resale,omitempty"`
	Rental *RentalOutcome `json:"rental,omitempty"`
}

type AnalysisResult struct {
	ID           string            `json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	DiscountRate float64           `json:"discount_rate"`
	RateQuote    *RateQuote        `json:"rate_quote,omitempty"`
	Financing    FinancingSummary  `json:"financing"`
	Consortium   ConsortiumSummary `json:"consortium"`
	Verdict      Verdict           `json:"verdict"`
	Scenarios    []ScenarioResult  `json:"scenarios"`
	Strategies   *StrategyOutcomes `json:"strategies,omitempty"`
}
