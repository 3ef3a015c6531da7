package service

import (
	"fmt"
	"math"

	"credit-compare/domain"
)

// FinancingInstallment returns the constant Price installment for a loan.
// A non-positive term yields 0.
func FinancingInstallment(principal, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}

	r := MonthlyEffectiveRate(annualRate)
	n := float64(termMonths)
	if r == 0 {
		return principal / n
	}
	return principal * r / (1 - math.Pow(1+r, -n))
}

// AmortizationSchedule builds the month-by-month Price table. The last row's
// balance is forced to zero to absorb rounding residue.
func AmortizationSchedule(principal, annualRate float64, termMonths int) []domain.AmortizationRow {
	if termMonths <= 0 {
		return []domain.AmortizationRow{}
	}

	r := MonthlyEffectiveRate(annualRate)
	installment := FinancingInstallment(principal, annualRate, termMonths)

	rows := make([]domain.AmortizationRow, 0, termMonths)
	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := balance * r
		amortization := installment - interest
		balance -= amortization
		if month == termMonths {
			balance = 0
		}
		rows = append(rows, domain.AmortizationRow{
			Month:            month,
			Installment:      installment,
			Interest:         interest,
			Principal:        amortization,
			RemainingBalance: balance,
		})
	}
	return rows
}

// FinancingPVCost is the down payment plus the absolute present value of the
// installments at the discount rate.
func FinancingPVCost(downPayment, principal, annualRate float64, termMonths int, discountAnnualRate float64) float64 {
	installment := FinancingInstallment(principal, annualRate, termMonths)
	pv := NPV(MonthlyEffectiveRate(discountAnnualRate), FlatOutflows(installment, termMonths))
	return downPayment + math.Abs(pv)
}

// ValidateLoanTerms checks the inputs accepted by the financing endpoints.
func ValidateLoanTerms(terms domain.LoanTerms) error {
	if terms.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", domain.ErrInvalidInput)
	}
	if terms.Principal > MaxAssetPrice {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", domain.ErrInvalidInput, MaxAssetPrice)
	}
	if terms.AnnualRate < 0 {
		return fmt.Errorf("%w: annual rate must not be negative", domain.ErrInvalidInput)
	}
	if terms.AnnualRate > MaxAnnualRate {
		return fmt.Errorf("%w: annual rate exceeds the maximum of %.2f", domain.ErrInvalidInput, MaxAnnualRate)
	}
	if terms.TermMonths <= 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrInvalidTerm)
	}
	if terms.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", domain.ErrInvalidInput, MaxTermMonths)
	}
	return nil
}

// BuildSchedule validates terms and returns the installment with its table.
func BuildSchedule(terms domain.LoanTerms) (domain.FinancingSchedule, error) {
	if err := ValidateLoanTerms(terms); err != nil {
		return domain.FinancingSchedule{}, err
	}
	return domain.FinancingSchedule{
		Installment: FinancingInstallment(terms.Principal, terms.AnnualRate, terms.TermMonths),
		Rows:        AmortizationSchedule(terms.Principal, terms.AnnualRate, terms.TermMonths),
	}, nil
}
