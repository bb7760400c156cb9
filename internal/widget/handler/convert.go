package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"fxconvert/internal/domain"
	"fxconvert/internal/widget"
)

type ConvertRequest struct {
	Amount   string `json:"amount" example:"100"`
	Currency string `json:"currency" example:"eur"`
}

type ConvertResponse struct {
	Amount   string  `json:"amount" example:"100"`
	Currency string  `json:"currency" example:"eur"`
	Rate     float64 `json:"rate" example:"0.9"`
	Result   string  `json:"result" example:"90.00"`
}

// Convert godoc
// @Summary Convert an amount into a target currency
// @Description Multiplies the amount by the loaded rate and rounds to two decimal places (half away from zero). Does not touch the page's field state.
// @Tags Converter
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 256)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req ConvertRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap := h.state.Snapshot()
	if snap.Phase != domain.PhaseReady {
		writeError(w, http.StatusServiceUnavailable, notReadyMessage(snap.Message))
		return
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	var rate float64
	if currency != "" {
		value, ok := snap.Rates[currency]
		if !ok {
			writeError(w, http.StatusBadRequest, widget.ErrTargetUnknown.Error())
			return
		}
		rate = value
	}

	result, err := widget.Convert(strings.TrimSpace(req.Amount), currency, rate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(ConvertResponse{
		Amount:   strings.TrimSpace(req.Amount),
		Currency: currency,
		Rate:     rate,
		Result:   result.Value.StringFixed(2),
	})
}
