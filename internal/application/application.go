package application

import (
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/location-recorder/internal/config"
	"github.com/eugenenazirov/location-recorder/internal/render"
)

// Loader produces the configuration document.
type Loader interface {
	Load() (config.Document, error)
	Path() string
}

// App holds the dependencies of one load-then-print run.
type App struct {
	loader  Loader
	printer *render.Printer
	logger  *zap.Logger
}

// New builds an App from its dependencies.
func New(loader Loader, printer *render.Printer, logger *zap.Logger) *App {
	return &App{
		loader:  loader,
		printer: printer,
		logger:  logger,
	}
}

// Run loads the configuration and prints it to w. Loader errors are returned
// unchanged; nothing is written to w unless loading succeeds.
func (a *App) Run(w io.Writer) error {
	doc, err := a.loader.Load()
	if err != nil {
		return err
	}

	a.logger.Debug("configuration loaded",
		zap.String("path", a.loader.Path()),
		zap.Strings("keys", doc.Keys()),
	)

	return a.printer.Print(w, doc)
}

// Source returns the path the App reads from.
func (a *App) Source() string {
	return a.loader.Path()
}
