package adapters

import (
	"context"
	"fxconvert/internal/domain"
)

type RatesClient interface {
	FetchRates(ctx context.Context, base string) (domain.RateTable, error)
}
