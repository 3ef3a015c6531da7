package domain

// LoanTerms describes a fixed-installment (Price) loan.
type LoanTerms struct {
	Principal  float64 `json:"principal" yaml:"principal"`
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate"`
	TermMonths int     `json:"term_months" yaml:"term_months"`
}

type AmortizationRow struct {
	Month            int     `json:"month"`
	Installment      float64 `json:"installment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type FinancingSchedule struct {
	Installment float64           `json:"installment"`
	Rows        []AmortizationRow `json:"rows"`
}

type FinancingSummary struct {
	FinancedAmount float64           `json:"financed_amount"`
	Installment    float64           `json:"installment"`
	PVCost         float64           `json:"pv_cost"`
	TotalPaid      float64           `json:"total_paid"`
	Schedule       []AmortizationRow `json:"schedule,omitempty"`
}
