package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/service"
)

type FinancingHandler struct {
	log zerolog.Logger
}

func NewFinancingHandler(log zerolog.Logger) *FinancingHandler {
	return &FinancingHandler{log: log.With().Str("handler", "financing").Logger()}
}

func (h *FinancingHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var terms domain.LoanTerms
	if err := decodeJSON(r, &terms); err != nil {
		writeBadBody(w, h.log, err)
		return
	}

	schedule, err := service.BuildSchedule(terms)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	c := &rounder{}
	writeRounded(w, h.log, c, domain.FinancingSchedule{
		Installment: c.money(schedule.Installment),
		Rows:        c.rows(schedule.Rows),
	})
}
