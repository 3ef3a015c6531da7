package domain

import "time"

// RateQuote is an annual opportunity rate as a decimal fraction (0.105 = 10.5%).
type RateQuote struct {
	Rate      float64   `json:"rate"`
	Source    string    `json:"source"`
	Fallback  bool      `json:"fallback"`
	Warning   string    `json:"warning,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}
