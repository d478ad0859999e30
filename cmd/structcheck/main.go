package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertwitch/structcheck/internal/checksum"
	"github.com/desertwitch/structcheck/internal/configuration"
	"github.com/desertwitch/structcheck/internal/orchestrator"
	"github.com/desertwitch/structcheck/internal/reconcile"
	"github.com/desertwitch/structcheck/internal/schema"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	logLevel = new(slog.LevelVar)
)

func setupLogging(w io.Writer) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func newApp(settings *configuration.Settings, stdout io.Writer, stderr io.Writer) *App {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	checksumHandler := checksum.NewHandler(osProvider, unixProvider, settings.DefaultAlgorithm)
	reconcileHandler := reconcile.NewHandler(osProvider, checksumHandler, settings.BaseDir)
	orchestrationHandler := orchestrator.NewHandler(osProvider, reconcileHandler)

	return NewApp(orchestrationHandler, stdout, stderr)
}

// run checks the arguments, reads the settings file and runs the [App]. The
// arguments are checked first, so that a usage error is reported even when
// the settings file is malformed.
func run(ctx context.Context, args []string, settingsFile string, stdout io.Writer, stderr io.Writer) int {
	if len(args) < 2 { //nolint:mnd
		fmt.Fprintln(stderr, usage)

		return 1
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := configHandler.ReadSettings(settingsFile)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", errorPrefix, err)

		return 1
	}
	logLevel.Set(settings.LogLevel)

	slog.Debug("Starting up:",
		"version", Version,
		"baseDir", settings.BaseDir,
		"algorithm", string(settings.DefaultAlgorithm),
	)

	return newApp(settings, stdout, stderr).Run(ctx, args)
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logLevel.Set(slog.LevelWarn)
	setupLogging(os.Stderr)
	setupSignalHandlers(cancel)

	ExitCode = run(ctx, os.Args[1:], configuration.SettingsFile, os.Stdout, os.Stderr)
}
