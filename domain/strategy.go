package domain

type BidInput struct {
	Installment  float64 `json:"installment" yaml:"installment"`
	TermMonths   int     `json:"term_months" yaml:"term_months"`
	CreditLetter float64 `json:"credit_letter" yaml:"credit_letter"`
	BidPct       float64 `json:"bid_pct" yaml:"bid_pct"`
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`
}

type BidOutcome struct {
	BidAmount     float64 `json:"bid_amount"`
	NewPVCost     float64 `json:"new_pv_cost"`
	NewTermMonths int     `json:"new_term_months"`
	Settled       bool    `json:"settled"`
}

type ResaleInput struct {
	Installment        float64 `json:"installment" yaml:"installment"`
	ContemplationMonth int     `json:"contemplation_month" yaml:"contemplation_month"`
	MarkupPct          float64 `json:"markup_pct" yaml:"markup_pct"`
	DiscountRate       float64 `json:"discount_rate" yaml:"discount_rate"`
}

type ResaleOutcome struct {
	ResalePrice   float64 `json:"resale_price"`
	NPV           float64 `json:"npv"`
	AnnualizedIRR float64 `json:"annualized_irr"`
	IRRFound      bool    `json:"irr_found"`
}

type RentalInput struct {
	Installment        float64 `json:"installment" yaml:"installment"`
	TermMonths         int     `json:"term_months" yaml:"term_months"`
	ContemplationMonth int     `json:"contemplation_month" yaml:"contemplation_month"`
	MonthlyRent        float64 `json:"monthly_rent" yaml:"monthly_rent"`
	DiscountRate       float64 `json:"discount_rate" yaml:"discount_rate"`
}

type RentalOutcome struct {
	NPV float64 `json:"npv"`
}
