package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"credit-compare/domain"
	"credit-compare/service"
)

var errNonFinite = errors.New("amount is not a finite number")

// money rounds a monetary amount to cents for the response body. NaN and
// infinities are refused.
func money(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", errNonFinite, v)
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64(), nil
}

// rounder applies money to every amount of a response and keeps the first
// error.
type rounder struct {
	err error
}

func (c *rounder) money(v float64) float64 {
	r, err := money(v)
	if err != nil && c.err == nil {
		c.err = err
	}
	return r
}

func (c *rounder) rows(rows []domain.AmortizationRow) []domain.AmortizationRow {
	if rows == nil {
		return nil
	}
	out := make([]domain.AmortizationRow, len(rows))
	for i, row := range rows {
		out[i] = domain.AmortizationRow{
			Month:            row.Month,
			Installment:      c.money(row.Installment),
			Interest:         c.money(row.Interest),
			Principal:        c.money(row.Principal),
			RemainingBalance: c.money(row.RemainingBalance),
		}
	}
	return out
}

func (c *rounder) scenarios(results []domain.ScenarioResult) []domain.ScenarioResult {
	out := make([]domain.ScenarioResult, len(results))
	for i, sc := range results {
		sc.FinancingPVCost = c.money(sc.FinancingPVCost)
		sc.ConsortiumPVCost = c.money(sc.ConsortiumPVCost)
		out[i] = sc
	}
	return out
}

func (c *rounder) bid(b domain.BidOutcome) domain.BidOutcome {
	b.BidAmount = c.money(b.BidAmount)
	b.NewPVCost = c.money(b.NewPVCost)
	return b
}

func (c *rounder) resale(r domain.ResaleOutcome) domain.ResaleOutcome {
	r.ResalePrice = c.money(r.ResalePrice)
	r.NPV = c.money(r.NPV)
	return r
}

func (c *rounder) rental(r domain.RentalOutcome) domain.RentalOutcome {
	r.NPV = c.money(r.NPV)
	return r
}

func (c *rounder) analysis(res domain.AnalysisResult) domain.AnalysisResult {
	f := res.Financing
	f.FinancedAmount = c.money(f.FinancedAmount)
	f.Installment = c.money(f.Installment)
	f.PVCost = c.money(f.PVCost)
	f.TotalPaid = c.money(f.TotalPaid)
	f.Schedule = c.rows(f.Schedule)
	res.Financing = f

	cs := res.Consortium
	cs.CreditLetter = c.money(cs.CreditLetter)
	cs.Installment = c.money(cs.Installment)
	cs.PVCost = c.money(cs.PVCost)
	cs.TotalPaid = c.money(cs.TotalPaid)
	res.Consortium = cs

	res.Verdict.Difference = c.money(res.Verdict.Difference)
	res.Scenarios = c.scenarios(res.Scenarios)

	if st := res.Strategies; st != nil {
		rounded := &domain.StrategyOutcomes{}
		if st.Bid != nil {
			b := c.bid(*st.Bid)
			rounded.Bid = &b
		}
		if st.Resale != nil {
			r := c.resale(*st.Resale)
			rounded.Resale = &r
		}
		if st.Rental != nil {
			r := c.rental(*st.Rental)
			rounded.Rental = &r
		}
		res.Strategies = rounded
	}
	return res
}

// writeRounded sends v once every amount in it rounded cleanly.
func writeRounded(w http.ResponseWriter, log zerolog.Logger, c *rounder, v any) {
	if c.err != nil {
		writeError(w, log, c.err)
		return
	}
	writeJSON(w, log, http.StatusOK, v)
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 response.
func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("Error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("Error writing response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	if service.IsInvalid(err) {
		writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if errors.Is(err, errNonFinite) {
		log.Warn().Err(err).Msg("Result out of range")
		writeJSON(w, log, http.StatusUnprocessableEntity, errorResponse{Error: "result is out of range for the given inputs"})
		return
	}
	log.Error().Err(err).Msg("Request failed")
	writeJSON(w, log, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeBadBody(w http.ResponseWriter, log zerolog.Logger, err error) {
	log.Debug().Err(err).Msg("Error decoding request body")
	writeJSON(w, log, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}
