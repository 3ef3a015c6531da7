package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/service"
)

type ScenarioHandler struct {
	log zerolog.Logger
}

func NewScenarioHandler(log zerolog.Logger) *ScenarioHandler {
	return &ScenarioHandler{log: log.With().Str("handler", "scenarios").Logger()}
}

func (h *ScenarioHandler) Run(w http.ResponseWriter, r *http.Request) {
	var input domain.ScenarioInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadBody(w, h.log, err)
		return
	}

	if err := service.ValidateScenarioInput(input); err != nil {
		writeError(w, h.log, err)
		return
	}

	results := service.RunScenarios(
		input.BaseDiscountRate,
		input.DownPayment,
		input.Financing,
		input.ConsortiumInstallment,
		input.ConsortiumTermMonths,
	)
	c := &rounder{}
	writeRounded(w, h.log, c, c.scenarios(results))
}
