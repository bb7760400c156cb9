package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fxconvert/internal/adapters/ratesapi"
	"fxconvert/internal/api"
	"fxconvert/internal/config"
	httpserver "fxconvert/internal/platform/http"
	"fxconvert/internal/widget"
	"fxconvert/internal/widget/handler"
)

// Run wires the application components: config, logger, the one-shot rate
// fetch, the widget state and the HTTP server. The fetch completes (or
// fails) before the listener opens; a failed fetch is not a startup error,
// the widget serves its failure screen instead.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Base HTTP client; 0 means no timeout, matching the original
	// resource model where a hung network leaves the widget loading
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout < 0 {
		httpTimeout = 0
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	ratesBaseURL := strings.TrimSuffix(appCfg.RatesAPI.BaseURL, "/")
	baseCurrency := strings.ToLower(strings.TrimSpace(appCfg.RatesAPI.BaseCurrency))
	rateClient := ratesapi.NewClient(baseHTTPClient, ratesBaseURL)

	// One-shot rate fetch, resolved before the interactive phase begins.
	// Never retried: on failure the widget stays on its error screen.
	state := widget.NewState()
	execID := uuid.NewString()
	if loadErr := widget.LoadRates(ctx, execID, rateClient, baseCurrency, state); loadErr != nil {
		logrus.WithError(loadErr).WithFields(logrus.Fields{"execID": execID}).Warn("Rates fetch failed, serving failure screen")
	} else {
		logrus.Info("✅ Exchange rates loaded")
	}

	// Handlers and router
	widgetHandler := handler.NewWidgetHandler(state)
	router := api.NewRouter(widgetHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
