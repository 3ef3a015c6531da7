package service

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FlatOutflows returns n equal outflows of amount (stored as negatives).
func FlatOutflows(amount float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	flows := make([]float64, n)
	for i := range flows {
		flows[i] = -amount
	}
	return flows
}

// discountFactors returns (1+rate)^-(i+offset) for i in [0, n).
func discountFactors(rate float64, n, offset int) []float64 {
	factors := make([]float64, n)
	for i := range factors {
		factors[i] = math.Pow(1+rate, -float64(i+offset))
	}
	return factors
}

// NPV discounts flows[i] by (1+rate)^i. The first flow is taken at time
// zero and is not discounted.
func NPV(rate float64, flows []float64) float64 {
	if len(flows) == 0 {
		return 0
	}
	return floats.Dot(flows, discountFactors(rate, len(flows), 0))
}

// DiscountedSum discounts flows[i] by (1+rate)^(i+1): every flow, including
// the first, lies one or more periods in the future.
func DiscountedSum(rate float64, flows []float64) float64 {
	if len(flows) == 0 {
		return 0
	}
	return floats.Dot(flows, discountFactors(rate, len(flows), 1))
}

// npvDerivative is d/drate of NPV(rate, flows).
func npvDerivative(rate float64, flows []float64) float64 {
	d := 0.0
	for i, cf := range flows {
		if i == 0 {
			continue
		}
		d -= float64(i) * cf * math.Pow(1+rate, -float64(i+1))
	}
	return d
}

func hasSignChange(flows []float64) bool {
	return floats.Min(flows) < 0 && floats.Max(flows) > 0
}

// IRR returns the periodic rate that zeroes NPV(rate, flows). It runs
// Newton's method from a 1% guess and falls back to bisection. ok is false
// when the vector has no sign change or neither method converges within
// IRRMaxIterations steps.
func IRR(flows []float64) (rate float64, ok bool) {
	if len(flows) < 2 || !hasSignChange(flows) {
		return 0, false
	}

	r := irrInitialGuess
	for i := 0; i < IRRMaxIterations; i++ {
		f := NPV(r, flows)
		df := npvDerivative(r, flows)
		if math.Abs(df) < irrDerivativeThreshold {
			break
		}
		next := r - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			break
		}
		if math.Abs(next-r) < IRRTolerance {
			return next, true
		}
		r = next
	}

	return bisectIRR(flows)
}

func bisectIRR(flows []float64) (float64, bool) {
	lo, hi := irrLowerBound, 1.0
	fLo, fHi := NPV(lo, flows), NPV(hi, flows)
	for sameSign(fLo, fHi) && hi < irrUpperBound {
		hi *= 2
		fHi = NPV(hi, flows)
	}
	if sameSign(fLo, fHi) || math.IsNaN(fLo) || math.IsNaN(fHi) {
		return 0, false
	}

	for i := 0; i < IRRMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, flows)
		if fMid == 0 || (hi-lo)/2 < IRRTolerance {
			return mid, true
		}
		if sameSign(fLo, fMid) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, false
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
