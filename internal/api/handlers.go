package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/cpilink/support-calculator/internal/calculation"
	"github.com/cpilink/support-calculator/internal/config"
	"github.com/cpilink/support-calculator/internal/domain"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *calculation.CalculationEngine
	Parser *config.InputParser

	// Now is injectable so tests can pin the calculation date.
	Now func() time.Time
}

// NewHandler creates a handler around a calculation engine.
func NewHandler(engine *calculation.CalculationEngine) *Handler {
	return &Handler{
		Engine: engine,
		Parser: config.NewInputParser(),
		Now:    time.Now,
	}
}

// HandleCalculate runs a full calculation for the posted request.
// POST /api/calculations
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var request domain.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	h.Parser.ApplyDefaults(&request)
	if err := h.Parser.ValidateRequest(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid calculation request", err)
		return
	}

	cfg := request.ToIndexationConfig()
	summary, err := h.Engine.RunCalculation(r.Context(), &cfg, h.Now())
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// HandleQuote returns the CPI observation for one month.
// GET /api/cpi/{year}/{month}
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 2200 {
		writeError(w, http.StatusBadRequest, "invalid year", err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month", err)
		return
	}

	period := domain.CpiPeriod{Year: year, Month: month}
	quote := h.Engine.Provider.Quote(r.Context(), period)
	if !quote.Published {
		writeJSON(w, http.StatusNotFound, toQuoteDTO(period, quote))
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(period, quote))
}

// HandleHealth reports liveness.
// GET /api/healthz
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
