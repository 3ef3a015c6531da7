package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/repository"
)

// AnalysisService runs a full financing vs. consortium comparison. It owns
// the input checks the engines leave to their caller, such as a down
// payment that must stay below the asset price.
type AnalysisService struct {
	repo  repository.AnalysisRepository
	rates RateSource
	log   zerolog.Logger
	now   func() time.Time
}

func NewAnalysisService(
	repo repository.AnalysisRepository,
	rates RateSource,
	log zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		repo:  repo,
		rates: rates,
		log:   log.With().Str("component", "analysis").Logger(),
		now:   time.Now,
	}
}

func (s *AnalysisService) Analyze(
	ctx context.Context,
	input domain.AnalysisInput,
) (domain.AnalysisResult, error) {

	if err := validateAnalysisInput(input); err != nil {
		return domain.AnalysisResult{}, err
	}

	var quote *domain.RateQuote
	discountRate := 0.0
	if input.DiscountRate != nil {
		discountRate = *input.DiscountRate
	} else {
		q := s.rates.CurrentRate(ctx)
		quote = &q
		discountRate = q.Rate
	}

	// Financing
	financed := input.AssetPrice - input.DownPayment
	loan := domain.LoanTerms{
		Principal:  financed,
		AnnualRate: input.FinancingRate,
		TermMonths: input.FinancingTerm,
	}
	finInstallment := FinancingInstallment(loan.Principal, loan.AnnualRate, loan.TermMonths)
	financing := domain.FinancingSummary{
		FinancedAmount: financed,
		Installment:    finInstallment,
		PVCost:         FinancingPVCost(input.DownPayment, loan.Principal, loan.AnnualRate, loan.TermMonths, discountRate),
		TotalPaid:      input.DownPayment + finInstallment*float64(loan.TermMonths),
	}
	if input.IncludeTable {
		financing.Schedule = AmortizationSchedule(loan.Principal, loan.AnnualRate, loan.TermMonths)
	}

	// Consortium: the credit letter covers the full asset price.
	conInstallment, err := ConsortiumInstallment(input.AssetPrice, input.ConsortiumTerm, input.AdminFeePct, input.ReserveFundPct)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	consortium := domain.ConsortiumSummary{
		CreditLetter: input.AssetPrice,
		Installment:  conInstallment,
		PVCost:       math.Abs(ConsortiumPVCost(conInstallment, input.ConsortiumTerm, discountRate)),
		TotalPaid:    conInstallment * float64(input.ConsortiumTerm),
	}

	result := domain.AnalysisResult{
		ID:           uuid.NewString(),
		CreatedAt:    s.now(),
		DiscountRate: discountRate,
		RateQuote:    quote,
		Financing:    financing,
		Consortium:   consortium,
		Verdict: domain.Verdict{
			Winner:     cheaper(financing.PVCost, consortium.PVCost),
			Difference: math.Abs(financing.PVCost - consortium.PVCost),
		},
		Scenarios: RunScenarios(discountRate, input.DownPayment, loan, conInstallment, input.ConsortiumTerm),
	}

	if input.Strategies != nil {
		result.Strategies = runStrategies(*input.Strategies, input, conInstallment, discountRate)
	}

	// Saving is best effort.
	if err := s.repo.Save(input, result); err != nil {
		s.log.Warn().Err(err).Str("analysis_id", result.ID).Msg("Failed to save analysis")
	}

	s.log.Info().
		Str("analysis_id", result.ID).
		Float64("discount_rate", discountRate).
		Str("winner", string(result.Verdict.Winner)).
		Msg("Analysis completed")

	return result, nil
}

// Last returns the most recently submitted analysis.
func (s *AnalysisService) Last() (domain.AnalysisResult, bool) {
	return s.repo.Last()
}

func runStrategies(
	params domain.StrategyParams,
	input domain.AnalysisInput,
	installment float64,
	discountRate float64,
) *domain.StrategyOutcomes {

	out := &domain.StrategyOutcomes{}
	if params.Bid != nil {
		bid := SimulateBid(domain.BidInput{
			Installment:  installment,
			TermMonths:   input.ConsortiumTerm,
			CreditLetter: input.AssetPrice,
			BidPct:       params.Bid.BidPct,
			DiscountRate: discountRate,
		})
		out.Bid = &bid
	}
	if params.Resale != nil {
		resale := SimulateResale(domain.ResaleInput{
			Installment:        installment,
			ContemplationMonth: params.Resale.ContemplationMonth,
			MarkupPct:          params.Resale.MarkupPct,
			DiscountRate:       discountRate,
		})
		out.Resale = &resale
	}
	if params.Rental != nil {
		rental := SimulateRental(domain.RentalInput{
			Installment:        installment,
			TermMonths:         input.ConsortiumTerm,
			ContemplationMonth: params.Rental.ContemplationMonth,
			MonthlyRent:        params.Rental.MonthlyRent,
			DiscountRate:       discountRate,
		})
		out.Rental = &rental
	}
	return out
}

func validateAnalysisInput(input domain.AnalysisInput) error {
	if input.AssetPrice <= 0 {
		return invalid("asset price must be positive")
	}
	if input.AssetPrice > MaxAssetPrice {
		return invalid(fmt.Sprintf("asset price exceeds the maximum of %.2f", MaxAssetPrice))
	}
	if input.DownPayment < 0 {
		return invalid("down payment must not be negative")
	}
	if input.DownPayment >= input.AssetPrice {
		return invalid("down payment must be lower than the asset price")
	}
	if input.DiscountRate != nil {
		if err := ValidateDiscountRate(*input.DiscountRate); err != nil {
			return err
		}
	}

	if err := ValidateLoanTerms(domain.LoanTerms{
		Principal:  input.AssetPrice - input.DownPayment,
		AnnualRate: input.FinancingRate,
		TermMonths: input.FinancingTerm,
	}); err != nil {
		return fmt.Errorf("financing: %w", err)
	}

	if input.ConsortiumTerm <= 0 {
		return fmt.Errorf("consortium: %w: %w", domain.ErrInvalidInput, domain.ErrInvalidTerm)
	}
	if err := ValidateConsortiumTerms(domain.ConsortiumTerms{
		CreditLetter:   input.AssetPrice,
		TermMonths:     input.ConsortiumTerm,
		AdminFeePct:    input.AdminFeePct,
		ReserveFundPct: input.ReserveFundPct,
	}); err != nil {
		return fmt.Errorf("consortium: %w", err)
	}

	if st := input.Strategies; st != nil {
		if st.Bid != nil && (st.Bid.BidPct < 0 || st.Bid.BidPct > MaxBidPct) {
			return invalid(fmt.Sprintf("bid must be between 0 and %.0f%%", MaxBidPct))
		}
		if st.Resale != nil {
			if st.Resale.ContemplationMonth <= 0 || st.Resale.ContemplationMonth > input.ConsortiumTerm {
				return invalid("resale contemplation month must fall within the plan")
			}
			if err := validateMarkup(st.Resale.MarkupPct); err != nil {
				return err
			}
		}
		if st.Rental != nil {
			if st.Rental.ContemplationMonth < 0 || st.Rental.ContemplationMonth > input.ConsortiumTerm {
				return invalid("rental contemplation month must fall within the plan")
			}
			if err := validateAmount("monthly rent", st.Rental.MonthlyRent); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateDiscountRate bounds an annual opportunity rate.
func ValidateDiscountRate(rate float64) error {
	if rate < 0 || rate > MaxAnnualRate {
		return invalid(fmt.Sprintf("discount rate must be between 0 and %.2f", MaxAnnualRate))
	}
	return nil
}

func validateAmount(name string, v float64) error {
	if v < 0 || v > MaxAssetPrice {
		return invalid(fmt.Sprintf("%s must be between 0 and %.2f", name, MaxAssetPrice))
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}

// IsInvalid reports whether err is a caller mistake rather than a failure.
func IsInvalid(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidTerm)
}
