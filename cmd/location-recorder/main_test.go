package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eugenenazirov/location-recorder/internal/application"
	"github.com/eugenenazirov/location-recorder/internal/config"
	"github.com/eugenenazirov/location-recorder/internal/render"
)

func newApp(path string, logger *zap.Logger) *application.App {
	return application.New(config.NewLoader(path), render.NewPrinter(false), logger)
}

func TestRunSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location_recorder.yaml")
	if err := os.WriteFile(path, []byte("robot_name: turtle1\nsensors: [lidar, camera]\nmax_speed: 2.5\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	var stdout bytes.Buffer
	if code := run(newApp(path, logger), &stdout, logger); code != exitSuccess {
		t.Fatalf("expected exit code %d, got %d", exitSuccess, code)
	}

	for _, want := range []string{"robot_name: turtle1", "max_speed: 2.5", "- lidar", "- camera"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("expected %q in output %q", want, stdout.String())
		}
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no error diagnostics, got %d", logs.Len())
	}
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.yaml")
	if err := os.WriteFile(malformed, []byte("robot_name: [turtle1\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	testCases := map[string]string{
		"missing file":   filepath.Join(dir, "missing.yaml"),
		"malformed file": malformed,
	}

	for name, path := range testCases {
		t.Run(name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			logger := zap.New(core)

			var stdout bytes.Buffer
			if code := run(newApp(path, logger), &stdout, logger); code != exitFailure {
				t.Fatalf("expected exit code %d, got %d", exitFailure, code)
			}
			if stdout.Len() != 0 {
				t.Fatalf("expected no stdout output, got %q", stdout.String())
			}

			entries := logs.FilterMessage("failed to print configuration").All()
			if len(entries) != 1 {
				t.Fatalf("expected one diagnostic, got %d", len(entries))
			}
			if got := entries[0].ContextMap()["path"]; got != path {
				t.Fatalf("expected path %s in diagnostic, got %v", path, got)
			}
		})
	}
}

func TestCLIRejectsArguments(t *testing.T) {
	testCases := map[string][]string{
		"positional argument": {"extra"},
		"unknown flag":        {"--config=/tmp/other.yaml"},
	}

	for name, args := range testCases {
		t.Run(name, func(t *testing.T) {
			if _, err := newCLI().Parse(args); err == nil {
				t.Fatalf("expected %v to be rejected", args)
			}
		})
	}
}

func TestCLIAcceptsNoArguments(t *testing.T) {
	if _, err := newCLI().Parse(nil); err != nil {
		t.Fatalf("expected empty command line to parse, got %v", err)
	}
}
