package handler

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"fxconvert/internal/widget"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html").
		Funcs(template.FuncMap{"upper": strings.ToUpper}).
		ParseFS(templateFS, "templates/page.html"),
)

type Handler struct {
	state *widget.State
}

func NewWidgetHandler(state *widget.State) *Handler {
	return &Handler{state: state}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}
