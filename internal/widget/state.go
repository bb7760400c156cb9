package widget

import (
	"sync"

	"fxconvert/internal/domain"
)

// State is the single owner of everything the widget shows: the fetch
// outcome, the amount field, the selected target and the last result.
// Every operation holds the lock start to finish, so user events run to
// completion one at a time, the way the original single event loop did.
type State struct {
	mu      sync.Mutex
	phase   domain.FetchPhase
	message string
	table   domain.RateTable
	amount  string
	target  string
	result  *domain.ConversionResult
}

func NewState() *State {
	return &State{phase: domain.PhaseLoading}
}

// ResolveReady records a successful fetch and picks the default target.
// The fetch resolves exactly once; a second resolve of either kind is rejected.
func (s *State) ResolveReady(table domain.RateTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseLoading {
		return domain.ErrAlreadyResolved
	}
	s.phase = domain.PhaseReady
	s.table = table
	s.target = table.DefaultTarget()
	return nil
}

func (s *State) ResolveFailed(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseLoading {
		return domain.ErrAlreadyResolved
	}
	s.phase = domain.PhaseFailed
	s.message = message
	return nil
}

// SubmitAmount replaces the amount field value if the filter accepts it.
// A rejected value is dropped silently and the field keeps its old value.
func (s *State) SubmitAmount(next string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !AcceptAmount(next) {
		return false
	}
	s.amount = next
	return true
}

// SelectTarget stores a code present in the rate table. Anything else is
// not producible by the rendered selector, so it is dropped like a
// filtered keystroke and the previous selection stands.
func (s *State) SelectTarget(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseReady {
		return false
	}
	if _, ok := s.table.Rate(code); !ok {
		return false
	}
	s.target = code
	return true
}

// Convert validates the current fields against the ready table, computes
// the result and stores it. Validation failures leave the stored result
// untouched.
func (s *State) Convert() (domain.ConversionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseReady {
		return domain.ConversionResult{}, domain.ErrRatesNotReady
	}

	rate, _ := s.table.Rate(s.target)
	result, err := Convert(s.amount, s.target, rate)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	s.result = &result
	return result, nil
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:   s.phase,
		Message: s.message,
		Base:    s.table.Base,
		Date:    s.table.Date,
		Amount:  s.amount,
		Target:  s.target,
	}
	if len(s.table.Codes) > 0 {
		snap.Codes = make([]string, len(s.table.Codes))
		copy(snap.Codes, s.table.Codes)
		snap.Rates = make(map[string]float64, len(s.table.Rates))
		for code, rate := range s.table.Rates {
			snap.Rates[code] = rate
		}
	}
	if s.result != nil {
		res := *s.result
		snap.Result = &res
	}
	return snap
}
