package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"credit-compare/service"
)

type RateHandler struct {
	rates service.RateSource
	log   zerolog.Logger
}

func NewRateHandler(rates service.RateSource, log zerolog.Logger) *RateHandler {
	return &RateHandler{rates: rates, log: log.With().Str("handler", "rates").Logger()}
}

func (h *RateHandler) Selic(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, h.rates.CurrentRate(r.Context()))
}
