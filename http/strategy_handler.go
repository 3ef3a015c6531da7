package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/service"
)

type StrategyHandler struct {
	log zerolog.Logger
}

func NewStrategyHandler(log zerolog.Logger) *StrategyHandler {
	return &StrategyHandler{log: log.With().Str("handler", "strategies").Logger()}
}

func (h *StrategyHandler) Bid(w http.ResponseWriter, r *http.Request) {
	var input domain.BidInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadBody(w, h.log, err)
		return
	}
	if err := service.ValidateBidInput(input); err != nil {
		writeError(w, h.log, err)
		return
	}
	c := &rounder{}
	writeRounded(w, h.log, c, c.bid(service.SimulateBid(input)))
}

func (h *StrategyHandler) Resale(w http.ResponseWriter, r *http.Request) {
	var input domain.ResaleInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadBody(w, h.log, err)
		return
	}
	if err := service.ValidateResaleInput(input); err != nil {
		writeError(w, h.log, err)
		return
	}
	c := &rounder{}
	writeRounded(w, h.log, c, c.resale(service.SimulateResale(input)))
}

func (h *StrategyHandler) Rental(w http.ResponseWriter, r *http.Request) {
	var input domain.RentalInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadBody(w, h.log, err)
		return
	}
	if err := service.ValidateRentalInput(input); err != nil {
		writeError(w, h.log, err)
		return
	}
	c := &rounder{}
	writeRounded(w, h.log, c, c.rental(service.SimulateRental(input)))
}
