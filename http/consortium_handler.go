package http

import (
	"math"
	"net/http"

	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/service"
)

type consortiumRequest struct {
	domain.ConsortiumTerms
	DiscountRate float64 `json:"discount_rate"`
}

type consortiumResponse struct {
	Installment float64 `json:"installment"`
	PVCost      float64 `json:"pv_cost"`
	TotalPaid   float64 `json:"total_paid"`
}

type ConsortiumHandler struct {
	log zerolog.Logger
}

func NewConsortiumHandler(log zerolog.Logger) *ConsortiumHandler {
	return &ConsortiumHandler{log: log.With().Str("handler", "consortium").Logger()}
}

func (h *ConsortiumHandler) Installment(w http.ResponseWriter, r *http.Request) {
	var req consortiumRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadBody(w, h.log, err)
		return
	}

	if err := service.ValidateConsortiumTerms(req.ConsortiumTerms); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := service.ValidateDiscountRate(req.DiscountRate); err != nil {
		writeError(w, h.log, err)
		return
	}
	installment, err := service.ConsortiumInstallment(
		req.CreditLetter,
		req.TermMonths,
		req.AdminFeePct,
		req.ReserveFundPct,
	)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	pv := service.ConsortiumPVCost(installment, req.TermMonths, req.DiscountRate)
	c := &rounder{}
	writeRounded(w, h.log, c, consortiumResponse{
		Installment: c.money(installment),
		PVCost:      c.money(math.Abs(pv)),
		TotalPaid:   c.money(installment * float64(req.TermMonths)),
	})
}
