package domain

import "github.com/shopspring/decimal"

// RateTable holds the exchange rates fetched at startup, all expressed
// relative to Base. Codes preserves the order the server returned them in.
// The table is replaced wholesale on fetch, never patched.
type RateTable struct {
	Base  string
	Date  string
	Codes []string
	Rates map[string]float64
}

func (t RateTable) Rate(code string) (float64, bool) {
	value, ok := t.Rates[code]
	return value, ok
}

// DefaultTarget is the first currency in source order, or "" for an empty table.
func (t RateTable) DefaultTarget() string {
	if len(t.Codes) == 0 {
		return ""
	}
	return t.Codes[0]
}

type ConversionResult struct {
	Value    decimal.Decimal
	Currency string
}
