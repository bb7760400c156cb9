package handler

import (
	"encoding/json"
	"net/http"

	"fxconvert/internal/domain"
)

type GetRatesResponse struct {
	Base  string             `json:"base" example:"usd"`
	Date  string             `json:"date" example:"2024-01-01"`
	Codes []string           `json:"codes" example:"eur,gbp"`
	Rates map[string]float64 `json:"rates"`
}

// GetRates godoc
// @Summary Get the loaded exchange rate table
// @Description Returns the rate table fetched at startup, with currency codes in source order
// @Tags Converter
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Failure 503 {object} errorResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, _ *http.Request) {
	snap := h.state.Snapshot()
	if snap.Phase != domain.PhaseReady {
		writeError(w, http.StatusServiceUnavailable, notReadyMessage(snap.Message))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GetRatesResponse{
		Base:  snap.Base,
		Date:  snap.Date,
		Codes: snap.Codes,
		Rates: snap.Rates,
	})
}

func notReadyMessage(failureMsg string) string {
	if failureMsg != "" {
		return failureMsg
	}
	return domain.ErrRatesNotReady.Error()
}
