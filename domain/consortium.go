package domain

// ConsortiumTerms describes a consortium plan. Fee fields are percentages
// (15 means 15%) over the credit letter.
type ConsortiumTerms struct {
	CreditLetter   float64 `json:"credit_letter" yaml:"credit_letter"`
	TermMonths     int     `json:"term_months" yaml:"term_months"`
	AdminFeePct    float64 `json:"admin_fee_pct" yaml:"admin_fee_pct"`
	ReserveFundPct float64 `json:"reserve_fund_pct" yaml:"reserve_fund_pct"`
}

type ConsortiumSummary struct {
	CreditLetter float64 `json:"credit_letter"`
	Installment  float64 `json:"installment"`
	PVCost       float64 `json:"pv_cost"` // absolute value
	TotalPaid    float64 `json:"total_paid"`
}
