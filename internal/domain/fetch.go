package domain

// FetchPhase tracks the one-shot startup rate load. It starts at loading
// and moves exactly once to ready or failed, never back.
type FetchPhase string

const (
	PhaseLoading FetchPhase = "loading"
	PhaseReady   FetchPhase = "ready"
	PhaseFailed  FetchPhase = "failed"
)
