package domain

import "errors"

var (
	ErrRatesNotReady   = errors.New("exchange rates are not available")
	ErrAlreadyResolved = errors.New("rate fetch already resolved")
)
