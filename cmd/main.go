package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"fxconvert/internal/app"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title fxconvert API
// @version 1.0
// @description Currency conversion widget: one rate table fetched at startup, conversions on demand
// @BasePath /api/v1
func main() {
	fmt.Printf("Starting fxconvert version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)

	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application terminated")
		os.Exit(1)
	}
}
