package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/location-recorder/internal/application"
	"github.com/eugenenazirov/location-recorder/internal/config"
	"github.com/eugenenazirov/location-recorder/internal/logging"
	"github.com/eugenenazirov/location-recorder/internal/render"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

var version = "dev"

func main() {
	kingpin.MustParse(newCLI().Parse(os.Args[1:]))

	logger, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(exitFailure)
	}

	app := application.New(
		config.NewLoader(config.DefaultPath),
		render.NewPrinter(render.IsTerminal(os.Stdout)),
		logger,
	)

	code := run(app, os.Stdout, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// newCLI builds the command line surface. It takes no flags or arguments.
func newCLI() *kingpin.Application {
	kingpinApp := kingpin.New("location-recorder", "Location Recorder - prints the recorder configuration file")
	kingpinApp.Version(version)
	return kingpinApp
}

func run(app *application.App, stdout io.Writer, logger *zap.Logger) int {
	if err := app.Run(stdout); err != nil {
		logger.Error("failed to print configuration",
			zap.String("path", app.Source()),
			zap.Error(err),
		)
		return exitFailure
	}
	return exitSuccess
}
