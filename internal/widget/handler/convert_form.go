package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// ConvertForm handles the page's convert button. The submitted amount goes
// through the input filter (a rejected value is dropped and the field keeps
// its previous content), the selection through the table guard, and the
// conversion runs on whatever the fields hold afterwards. Validation
// failures come back as an inline notice, not a blocking alert.
func (h *Handler) ConvertForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	amount := strings.TrimSpace(r.PostFormValue("amount"))
	currency := strings.ToLower(strings.TrimSpace(r.PostFormValue("currency")))

	if !h.state.SubmitAmount(amount) {
		logrus.WithFields(logrus.Fields{"handler": "ConvertForm", "amount": amount}).Debug("amount rejected by input filter")
	}
	if currency != "" && !h.state.SelectTarget(currency) {
		logrus.WithFields(logrus.Fields{"handler": "ConvertForm", "currency": currency}).Debug("unknown currency dropped")
	}

	notice := ""
	if _, err := h.state.Convert(); err != nil {
		notice = err.Error()
	}

	h.renderPage(w, h.state.Snapshot(), notice)
}
