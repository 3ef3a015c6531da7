package service

import (
	"fmt"
	"math"

	"credit-compare/domain"
)

// SimulateBid treats a lump-sum bid as prepaid installments. When the bid
// covers the remaining plan the face value of the credit letter is reported
// as the cost.
func SimulateBid(in domain.BidInput) domain.BidOutcome {
	bidAmount := in.CreditLetter * in.BidPct / 100

	newTerm := 0
	if in.Installment > 0 {
		paidOff := bidAmount / in.Installment
		if remaining := math.RoundToEven(float64(in.TermMonths) - paidOff); remaining > 0 {
			newTerm = int(remaining)
		}
	}

	if newTerm <= 0 {
		return domain.BidOutcome{
			BidAmount:     bidAmount,
			NewPVCost:     in.CreditLetter,
			NewTermMonths: 0,
			Settled:       true,
		}
	}

	pv := NPV(MonthlyEffectiveRate(in.DiscountRate), FlatOutflows(in.Installment, newTerm))
	return domain.BidOutcome{
		BidAmount:     bidAmount,
		NewPVCost:     math.Abs(pv),
		NewTermMonths: newTerm,
	}
}

// ResaleFlows pays installments up to the contemplation month and sells the
// quota at that month for everything paid so far adjusted by markupPct.
func ResaleFlows(installment float64, contemplationMonth int, markupPct float64) ([]float64, float64) {
	flows := FlatOutflows(installment, contemplationMonth)
	if contemplationMonth <= 0 {
		return flows, 0
	}
	price := installment * float64(contemplationMonth) * (1 + markupPct/100)
	flows[len(flows)-1] += price
	return flows, price
}

// SimulateResale reports the NPV of the resale flows and their IRR
// annualized. An unsolvable IRR is reported as 0.
func SimulateResale(in domain.ResaleInput) domain.ResaleOutcome {
	flows, price := ResaleFlows(in.Installment, in.ContemplationMonth, in.MarkupPct)

	out := domain.ResaleOutcome{
		ResalePrice: price,
		NPV:         NPV(MonthlyEffectiveRate(in.DiscountRate), flows),
	}
	if monthly, ok := IRR(flows); ok {
		out.AnnualizedIRR = AnnualizedRate(monthly)
		out.IRRFound = true
	}
	return out
}

// RentalFlows pays every installment and collects rent from the month after
// contemplation onward.
func RentalFlows(installment float64, termMonths, contemplationMonth int, monthlyRent float64) []float64 {
	flows := FlatOutflows(installment, termMonths)
	for i := range flows {
		if month := i + 1; month > contemplationMonth {
			flows[i] += monthlyRent
		}
	}
	return flows
}

// SimulateRental discounts every month of the plan, month 1 included.
func SimulateRental(in domain.RentalInput) domain.RentalOutcome {
	flows := RentalFlows(in.Installment, in.TermMonths, in.ContemplationMonth, in.MonthlyRent)
	return domain.RentalOutcome{
		NPV: DiscountedSum(MonthlyEffectiveRate(in.DiscountRate), flows),
	}
}

func ValidateBidInput(in domain.BidInput) error {
	if in.TermMonths <= 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrInvalidTerm)
	}
	if in.TermMonths > MaxTermMonths {
		return invalid(fmt.Sprintf("term exceeds the maximum of %d months", MaxTermMonths))
	}
	if in.CreditLetter <= 0 {
		return invalid("credit letter must be positive")
	}
	if err := validateAmount("credit letter", in.CreditLetter); err != nil {
		return err
	}
	if err := validateAmount("installment", in.Installment); err != nil {
		return err
	}
	if in.BidPct < 0 || in.BidPct > MaxBidPct {
		return invalid(fmt.Sprintf("bid must be between 0 and %.0f%%", MaxBidPct))
	}
	return ValidateDiscountRate(in.DiscountRate)
}

// ValidateResaleInput accepts a zero contemplation month, which yields the
// empty outcome.
func ValidateResaleInput(in domain.ResaleInput) error {
	if err := validateAmount("installment", in.Installment); err != nil {
		return err
	}
	if in.ContemplationMonth < 0 || in.ContemplationMonth > MaxTermMonths {
		return invalid(fmt.Sprintf("contemplation month must be between 0 and %d", MaxTermMonths))
	}
	if err := validateMarkup(in.MarkupPct); err != nil {
		return err
	}
	return ValidateDiscountRate(in.DiscountRate)
}

func ValidateRentalInput(in domain.RentalInput) error {
	if err := validateAmount("installment", in.Installment); err != nil {
		return err
	}
	if err := validateAmount("monthly rent", in.MonthlyRent); err != nil {
		return err
	}
	if in.TermMonths < 0 || in.TermMonths > MaxTermMonths {
		return invalid(fmt.Sprintf("term must be between 0 and %d months", MaxTermMonths))
	}
	if in.ContemplationMonth < 0 || in.ContemplationMonth > MaxTermMonths {
		return invalid(fmt.Sprintf("contemplation month must be between 0 and %d", MaxTermMonths))
	}
	return ValidateDiscountRate(in.DiscountRate)
}

func validateMarkup(pct float64) error {
	if pct <= -100 || pct > MaxMarkupPct {
		return invalid(fmt.Sprintf("resale markup must be above -100%% and at most %.0f%%", MaxMarkupPct))
	}
	return nil
}
