package service

import (
	"fmt"
	"math"

	"credit-compare/domain"
)

type scenarioRate struct {
	label domain.ScenarioLabel
	rate  float64
}

// scenarioRates returns the fixed pessimistic/realistic/optimistic discount
// rates. The optimistic rate never drops below MinOptimisticRate.
func scenarioRates(base float64) []scenarioRate {
	return []scenarioRate{
		{label: domain.ScenarioPessimistic, rate: base + ScenarioRateShift},
		{label: domain.ScenarioRealistic, rate: base},
		{label: domain.ScenarioOptimistic, rate: math.Max(MinOptimisticRate, base-ScenarioRateShift)},
	}
}

// RunScenarios recomputes both present-value costs under each scenario's
// discount rate. Loan and consortium terms are held fixed.
func RunScenarios(
	baseDiscountRate float64,
	downPayment float64,
	financing domain.LoanTerms,
	consortiumInstallment float64,
	consortiumTerm int,
) []domain.ScenarioResult {

	results := make([]domain.ScenarioResult, 0, 3)
	for _, sc := range scenarioRates(baseDiscountRate) {
		financingPV := FinancingPVCost(
			downPayment,
			financing.Principal,
			financing.AnnualRate,
			financing.TermMonths,
			sc.rate,
		)
		consortiumPV := math.Abs(ConsortiumPVCost(consortiumInstallment, consortiumTerm, sc.rate))

		results = append(results, domain.ScenarioResult{
			Label:            sc.label,
			DiscountRate:     sc.rate,
			FinancingPVCost:  financingPV,
			ConsortiumPVCost: consortiumPV,
			Winner:           cheaper(financingPV, consortiumPV),
		})
	}
	return results
}

// ValidateScenarioInput bounds every input of RunScenarios. A zero
// consortium term is allowed and costs nothing.
func ValidateScenarioInput(in domain.ScenarioInput) error {
	if err := ValidateLoanTerms(in.Financing); err != nil {
		return fmt.Errorf("financing: %w", err)
	}
	if err := ValidateDiscountRate(in.BaseDiscountRate); err != nil {
		return err
	}
	if err := validateAmount("down payment", in.DownPayment); err != nil {
		return err
	}
	if err := validateAmount("consortium installment", in.ConsortiumInstallment); err != nil {
		return err
	}
	if in.ConsortiumTermMonths < 0 || in.ConsortiumTermMonths > MaxTermMonths {
		return invalid(fmt.Sprintf("consortium term must be between 0 and %d months", MaxTermMonths))
	}
	return nil
}

// cheaper picks the instrument with the lower present-value cost. The
// consortium must be strictly cheaper to win, so ties go to financing.
func cheaper(financingPV, consortiumPV float64) domain.Instrument {
	if consortiumPV < financingPV {
		return domain.InstrumentConsortium
	}
	return domain.InstrumentFinancing
}
