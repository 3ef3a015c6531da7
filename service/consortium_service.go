package service

import (
	"fmt"

	"credit-compare/domain"
)

// ConsortiumInstallment spreads the credit letter plus administrative and
// reserve-fund loadings evenly over the plan. Unlike FinancingInstallment a
// non-positive term is a configuration error.
func ConsortiumInstallment(creditLetter float64, termMonths int, adminFeePct, reserveFundPct float64) (float64, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("consortium installment for %d months: %w", termMonths, domain.ErrInvalidTerm)
	}

	totalToPay := creditLetter * (1 + adminFeePct/100 + reserveFundPct/100)
	return totalToPay / float64(termMonths), nil
}

// ConsortiumPVCost discounts every installment assuming the credit letter is
// only received in the final month. The result is negative; a non-positive
// term costs nothing.
func ConsortiumPVCost(installment float64, termMonths int, discountAnnualRate float64) float64 {
	if termMonths <= 0 {
		return 0
	}
	return NPV(MonthlyEffectiveRate(discountAnnualRate), FlatOutflows(installment, termMonths))
}

func ValidateConsortiumTerms(terms domain.ConsortiumTerms) error {
	if terms.CreditLetter <= 0 {
		return fmt.Errorf("%w: credit letter must be positive", domain.ErrInvalidInput)
	}
	if terms.CreditLetter > MaxAssetPrice {
		return fmt.Errorf("%w: credit letter exceeds the maximum of %.2f", domain.ErrInvalidInput, MaxAssetPrice)
	}
	if terms.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", domain.ErrInvalidInput, MaxTermMonths)
	}
	if terms.AdminFeePct < 0 || terms.AdminFeePct > MaxFeePct {
		return fmt.Errorf("%w: administrative fee must be between 0 and %.0f%%", domain.ErrInvalidInput, MaxFeePct)
	}
	if terms.ReserveFundPct < 0 || terms.ReserveFundPct > MaxFeePct {
		return fmt.Errorf("%w: reserve fund must be between 0 and %.0f%%", domain.ErrInvalidInput, MaxFeePct)
	}
	return nil
}
