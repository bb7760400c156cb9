package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"fxconvert/internal/domain"
	"fxconvert/internal/widget"
)

type pageData struct {
	Ready   bool
	Failed  bool
	Message string
	Date    string
	Codes   []string
	Amount  string
	Target  string
	Result  string
	Notice  string
}

// Page renders the converter screen from a state snapshot.
func (h *Handler) Page(w http.ResponseWriter, _ *http.Request) {
	h.renderPage(w, h.state.Snapshot(), "")
}

func (h *Handler) renderPage(w http.ResponseWriter, snap widget.Snapshot, notice string) {
	data := pageData{
		Ready:   snap.Phase == domain.PhaseReady,
		Failed:  snap.Phase == domain.PhaseFailed,
		Message: snap.Message,
		Date:    snap.Date,
		Codes:   snap.Codes,
		Amount:  snap.Amount,
		Target:  snap.Target,
		Notice:  notice,
	}
	if snap.Result != nil {
		data.Result = fmt.Sprintf("%s %s", snap.Result.Value.StringFixed(2), strings.ToUpper(snap.Result.Currency))
	}

	// render to a buffer first so a template error doesn't leave a torn page
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Page"}).Error("failed to render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
