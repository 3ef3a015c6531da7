package service

import "math"

// MonthlyEffectiveRate converts an annual effective rate into the equivalent
// monthly effective rate. Undefined for annual < -1.
func MonthlyEffectiveRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}

// AnnualizedRate compounds a monthly rate over twelve months.
func AnnualizedRate(monthly float64) float64 {
	return math.Pow(1+monthly, 12) - 1
}
