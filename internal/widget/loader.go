package widget

import (
	"context"

	"github.com/sirupsen/logrus"

	"fxconvert/internal/adapters"
)

// LoadRates performs the one startup fetch and resolves the widget state.
// It runs exactly once per program lifetime: on failure the state is left
// in its failed phase and nothing ever retries. The returned error is the
// fetch error, for the caller's log line; the state is resolved either way.
func LoadRates(ctx context.Context, execID string, client adapters.RatesClient, base string, state *State) error {
	table, err := client.FetchRates(ctx, base)
	if err != nil {
		_ = state.ResolveFailed(err.Error())
		return err
	}

	logrus.Infof("%d rates loaded for base %q, date %s; execID: %s", len(table.Codes), base, table.Date, execID)
	_ = state.ResolveReady(table)
	return nil
}
