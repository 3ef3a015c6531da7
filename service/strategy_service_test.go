package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"credit-compare/domain"
)

func TestSimulateBid(t *testing.T) {
	got := SimulateBid(domain.BidInput{
		Installment:  1170,
		TermMonths:   60,
		CreditLetter: 60000,
		BidPct:       30,
		DiscountRate: 0.12,
	})

	assert.InDelta(t, 18000, got.BidAmount, 1e-9)
	assert.Equal(t, 45, got.NewTermMonths)
	assert.InDelta(t, 43095.02, got.NewPVCost, 1e-2)
	assert.False(t, got.Settled)
}

func TestSimulateBid_Settled(t *testing.T) {
	tests := []struct {
		name string
		in   domain.BidInput
	}{
		{
			name: "bid above remaining plan",
			in:   domain.BidInput{Installment: 1170, TermMonths: 60, CreditLetter: 60000, BidPct: 120, DiscountRate: 0.12},
		},
		{
			name: "bid exactly covers plan",
			in:   domain.BidInput{Installment: 1000, TermMonths: 10, CreditLetter: 10000, BidPct: 100, DiscountRate: 0.12},
		},
		{
			name: "no installment to prepay",
			in:   domain.BidInput{Installment: 0, TermMonths: 10, CreditLetter: 10000, BidPct: 10, DiscountRate: 0.12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimulateBid(tt.in)
			assert.True(t, got.Settled)
			assert.Equal(t, 0, got.NewTermMonths)
			assert.Equal(t, tt.in.CreditLetter, got.NewPVCost)
		})
	}
}

func TestSimulateBid_RoundsHalfToEven(t *testing.T) {
	// 10 - 3.5 = 6.5 months left
	got := SimulateBid(domain.BidInput{Installment: 1000, TermMonths: 10, CreditLetter: 10000, BidPct: 35, DiscountRate: 0.1})
	assert.Equal(t, 6, got.NewTermMonths)
}

func TestSimulateResale(t *testing.T) {
	got := SimulateResale(domain.ResaleInput{
		Installment:        1000,
		ContemplationMonth: 12,
		MarkupPct:          10,
		DiscountRate:       0.10,
	})

	assert.InDelta(t, 13200, got.ResalePrice, 1e-9)
	assert.InDelta(t, 604.29, got.NPV, 1e-2)
	assert.True(t, got.IRRFound)
	assert.InDelta(t, 0.226527, got.AnnualizedIRR, 1e-5)
}

func TestSimulateResale_NegativeMarkup(t *testing.T) {
	got := SimulateResale(domain.ResaleInput{
		Installment:        1000,
		ContemplationMonth: 12,
		MarkupPct:          -5,
		DiscountRate:       0.10,
	})

	assert.InDelta(t, -1045.12, got.NPV, 1e-2)
	assert.True(t, got.IRRFound)
	assert.InDelta(t, -0.106909, got.AnnualizedIRR, 1e-5)
}

func TestSimulateResale_Degenerate(t *testing.T) {
	// A one-month vector nets into a single inflow: no IRR.
	oneMonth := SimulateResale(domain.ResaleInput{Installment: 1000, ContemplationMonth: 1, MarkupPct: 10, DiscountRate: 0.10})
	assert.InDelta(t, 100, oneMonth.NPV, 1e-9)
	assert.False(t, oneMonth.IRRFound)
	assert.Equal(t, 0.0, oneMonth.AnnualizedIRR)

	none := SimulateResale(domain.ResaleInput{Installment: 1000, ContemplationMonth: 0, MarkupPct: 10, DiscountRate: 0.10})
	assert.Equal(t, domain.ResaleOutcome{}, none)

	breakEven := SimulateResale(domain.ResaleInput{Installment: 1000, ContemplationMonth: 24, MarkupPct: 0, DiscountRate: 0.10})
	assert.True(t, breakEven.IRRFound)
	assert.InDelta(t, 0, breakEven.AnnualizedIRR, 1e-8)
	assert.InDelta(t, -1945.25, breakEven.NPV, 1e-2)
}

func TestRentalFlows_RentStartsAfterContemplation(t *testing.T) {
	flows := RentalFlows(1000, 5, 2, 1200)
	assert.Equal(t, []float64{-1000, -1000, 200, 200, 200}, flows)
}

func TestSimulateRental(t *testing.T) {
	got := SimulateRental(domain.RentalInput{
		Installment:        1000,
		TermMonths:         12,
		ContemplationMonth: 6,
		MonthlyRent:        1200,
		DiscountRate:       0.10,
	})
	assert.InDelta(t, -4723.15, got.NPV, 1e-2)

	// Contemplated in the last month: no rent at all, every month discounted.
	noRent := SimulateRental(domain.RentalInput{
		Installment:        1000,
		TermMonths:         12,
		ContemplationMonth: 12,
		MonthlyRent:        1200,
		DiscountRate:       0.10,
	})
	assert.InDelta(t, -11400.49, noRent.NPV, 1e-2)
}

func TestSimulateRental_PositiveWhenRentCoversInstallments(t *testing.T) {
	got := SimulateRental(domain.RentalInput{
		Installment:        1000,
		TermMonths:         24,
		ContemplationMonth: 1,
		MonthlyRent:        2500,
		DiscountRate:       0.10,
	})
	assert.Positive(t, got.NPV)
}

func TestSimulateBid_TinyInstallmentSettles(t *testing.T) {
	got := SimulateBid(domain.BidInput{Installment: 1e-300, TermMonths: 60, CreditLetter: 1e6, BidPct: 1000, DiscountRate: 0.1})
	assert.True(t, got.Settled)
	assert.Equal(t, 0, got.NewTermMonths)
}

func TestValidateStrategyInputs(t *testing.T) {
	bid := domain.BidInput{Installment: 1170, TermMonths: 60, CreditLetter: 60000, BidPct: 30, DiscountRate: 0.12}
	resale := domain.ResaleInput{Installment: 1000, ContemplationMonth: 12, MarkupPct: 10, DiscountRate: 0.1}
	rental := domain.RentalInput{Installment: 1000, TermMonths: 12, ContemplationMonth: 6, MonthlyRent: 1200, DiscountRate: 0.1}

	assert.NoError(t, ValidateBidInput(bid))
	assert.NoError(t, ValidateResaleInput(resale))
	assert.NoError(t, ValidateRentalInput(rental))

	tests := []struct {
		name string
		err  func() error
	}{
		{name: "bid zero term", err: func() error { b := bid; b.TermMonths = 0; return ValidateBidInput(b) }},
		{name: "bid term above limit", err: func() error { b := bid; b.TermMonths = 5_000_000; return ValidateBidInput(b) }},
		{name: "bid percentage overflow", err: func() error { b := bid; b.BidPct = 1e308; return ValidateBidInput(b) }},
		{name: "bid huge credit letter", err: func() error { b := bid; b.CreditLetter = 1e300; return ValidateBidInput(b) }},
		{name: "bid negative discount rate", err: func() error { b := bid; b.DiscountRate = -2; return ValidateBidInput(b) }},
		{name: "resale markup at -100%", err: func() error { r := resale; r.MarkupPct = -100; return ValidateResaleInput(r) }},
		{name: "resale markup above cap", err: func() error { r := resale; r.MarkupPct = 1e308; return ValidateResaleInput(r) }},
		{name: "resale month above limit", err: func() error { r := resale; r.ContemplationMonth = 601; return ValidateResaleInput(r) }},
		{name: "rental term above limit", err: func() error { r := rental; r.TermMonths = 601; return ValidateRentalInput(r) }},
		{name: "rental discount rate above limit", err: func() error { r := rental; r.DiscountRate = 11; return ValidateRentalInput(r) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
