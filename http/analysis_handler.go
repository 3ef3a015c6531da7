package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"credit-compare/domain"
	"credit-compare/service"
)

type AnalysisHandler struct {
	service *service.AnalysisService
	metrics *Metrics
	log     zerolog.Logger
}

// NewAnalysisHandler wires the handler. metrics may be nil.
func NewAnalysisHandler(service *service.AnalysisService, metrics *Metrics, log zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		metrics: metrics,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalysisInput
	if err := decodeJSON(r, &input); err != nil {
		writeBadBody(w, h.log, err)
		return
	}

	result, err := h.service.Analyze(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveAnalysis(result)
	}
	c := &rounder{}
	writeRounded(w, h.log, c, c.analysis(result))
}

func (h *AnalysisHandler) Last(w http.ResponseWriter, r *http.Request) {
	result, ok := h.service.Last()
	if !ok {
		writeJSON(w, h.log, http.StatusNotFound, errorResponse{Error: "no analysis submitted yet"})
		return
	}
	c := &rounder{}
	writeRounded(w, h.log, c, c.analysis(result))
}
