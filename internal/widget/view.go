package widget

import "fxconvert/internal/domain"

// Snapshot is an immutable view of the widget state for rendering.
type Snapshot struct {
	Phase   domain.FetchPhase
	Message string
	Base    string
	Date    string
	Codes   []string
	Rates   map[string]float64
	Amount  string
	Target  string
	Result  *domain.ConversionResult
}
