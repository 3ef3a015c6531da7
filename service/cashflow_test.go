package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyEffectiveRate(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyEffectiveRate(0))
	assert.InDelta(t, 0.007974140428903741, MonthlyEffectiveRate(0.10), 1e-12)

	for _, annual := range []float64{0, 0.05, 0.105, 0.25, 1} {
		assert.InDelta(t, annual, AnnualizedRate(MonthlyEffectiveRate(annual)), 1e-12)
	}
}

func TestFlatOutflows(t *testing.T) {
	assert.Equal(t, []float64{-10, -10, -10}, FlatOutflows(10, 3))
	assert.Empty(t, FlatOutflows(10, 0))
	assert.Empty(t, FlatOutflows(10, -2))
}

func TestNPV_FirstFlowUndiscounted(t *testing.T) {
	r := MonthlyEffectiveRate(0.10)

	assert.InDelta(t, -11491.40, NPV(r, FlatOutflows(1000, 12)), 1e-2)
	assert.Equal(t, -500.0, NPV(r, []float64{-500}))
	assert.Equal(t, 0.0, NPV(r, nil))
}

func TestDiscountedSum_DiscountsEveryFlow(t *testing.T) {
	r := MonthlyEffectiveRate(0.10)
	flows := FlatOutflows(500, 3)

	assert.InDelta(t, -1476.39, DiscountedSum(r, flows), 1e-2)
	assert.InDelta(t, NPV(r, flows)/(1+r), DiscountedSum(r, flows), 1e-9)
	assert.Equal(t, 0.0, DiscountedSum(r, nil))
}

func TestIRR(t *testing.T) {
	tests := []struct {
		name   string
		flows  []float64
		want   float64
		wantOK bool
	}{
		{name: "one period", flows: []float64{-100, 110}, want: 0.10, wantOK: true},
		{name: "break even", flows: []float64{-100, 100}, want: 0, wantOK: true},
		{name: "loss", flows: []float64{-100, 90}, want: -0.10, wantOK: true},
		{name: "quota resale", flows: resaleFixture(), want: 0.01716116545375368, wantOK: true},
		{name: "all outflows", flows: []float64{-100, -100, -100}, wantOK: false},
		{name: "all inflows", flows: []float64{100, 100}, wantOK: false},
		{name: "single flow", flows: []float64{100}, wantOK: false},
		{name: "empty", flows: []float64{}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IRR(tt.flows)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, 0.0, got)
				return
			}
			assert.InDelta(t, tt.want, got, 1e-8)
			assert.InDelta(t, 0, NPV(got, tt.flows), 1e-4)
		})
	}
}

func TestBisectIRR_FindsRootNewtonMightMiss(t *testing.T) {
	// Large early inflow and a long tail of outflows.
	flows := append([]float64{1000}, FlatOutflows(20, 120)...)

	rate, ok := bisectIRR(flows)
	require.True(t, ok)
	assert.InDelta(t, 0, NPV(rate, flows), 1e-4)
}

func resaleFixture() []float64 {
	flows := FlatOutflows(1000, 12)
	flows[11] += 13200
	return flows
}
