package domain

type Instrument string

const (
	InstrumentFinancing  Instrument = "financing"
	InstrumentConsortium Instrument = "consortium"
)

type ScenarioLabel string

const (
	ScenarioPessimistic ScenarioLabel = "Pessimistic"
	ScenarioRealistic   ScenarioLabel = "Realistic"
	ScenarioOptimistic  ScenarioLabel = "Optimistic"
)

type ScenarioInput struct {
	BaseDiscountRate      float64   `json:"base_discount_rate"`
	DownPayment           float64   `json:"down_payment"`
	Financing             LoanTerms `json:"financing"`
	ConsortiumInstallment float64   `json:"consortium_installment"`
	ConsortiumTermMonths  int       `json:"consortium_term_months"`
}

// ScenarioResult holds both present-value costs as positive amounts.
type ScenarioResult struct {
	Label            ScenarioLabel `json:"label"`
	DiscountRate     float64       `json:"discount_rate"`
	FinancingPVCost  float64       `json:"financing_pv_cost"`
	ConsortiumPVCost float64       `json:"consortium_pv_cost"`
	Winner           Instrument    `json:"winner"`
}
