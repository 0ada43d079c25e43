// Package app provides the application context for checkenv.
// It allows dependency injection for testing.
package app

import (
	"context"
	"os"

	"github.com/firefly-engineering/checkenv/internal/config"
	"github.com/firefly-engineering/checkenv/internal/errors"
	"github.com/firefly-engineering/checkenv/internal/host"
	"github.com/firefly-engineering/checkenv/internal/jvm"
	"github.com/firefly-engineering/checkenv/internal/logging"
	"github.com/firefly-engineering/checkenv/internal/report"
	"github.com/firefly-engineering/checkenv/internal/system"
)

// javaPrefix selects the properties taken from the probed runtime. OS and
// user values always come from the host collector.
const javaPrefix = "java."

// App holds the application dependencies
type App struct {
	// Config is the loaded configuration
	Config *config.Config

	// Host collects OS and user properties
	Host *host.Collector

	// FS is used to locate the java binary
	FS system.FileSystem

	// Executor runs the java probe
	Executor system.CommandExecutor

	// Lookup reads environment variables
	Lookup func(string) (string, bool)
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom config
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithHost sets a custom host collector
func WithHost(c *host.Collector) Option {
	return func(a *App) {
		a.Host = c
	}
}

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = e
	}
}

// WithEnv sets a custom environment lookup
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(a *App) {
		a.Lookup = lookup
	}
}

// New creates a new App with the given options.
// If no config is provided, it is loaded from the config search path.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Lookup == nil {
		app.Lookup = os.LookupEnv
	}
	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}
	if app.Host == nil {
		app.Host = host.NewCollector()
		app.Host.Lookup = app.Lookup
	}
	if app.Config == nil {
		app.Config = config.Load(app.Lookup, func(path string, err error) {
			logging.UserWarning("ignoring config %s: %v", path, err)
		})
	}

	return app
}

// Snapshot gathers every property the report needs in a single pass.
//
// The only error is a host that cannot be queried at all. A missing or
// broken java runtime leaves the java properties unset.
func (a *App) Snapshot(ctx context.Context) (report.Properties, error) {
	props, err := a.Host.Collect()
	if err != nil {
		return nil, err
	}

	javaPath, err := jvm.Locate(jvm.LocateOptions{
		Explicit: a.Config.Java,
		Lookup:   a.Lookup,
		FS:       a.FS,
	})
	if err != nil {
		logging.Debug("java runtime unavailable", "error", err)
		return props, nil
	}

	timeout := a.Config.ProbeTimeout.Duration
	javaProps, err := jvm.Probe(ctx, a.Executor, javaPath, timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		logging.Debug("java timed out", "path", javaPath, "timeout", timeout)
		return props, nil
	}
	if err != nil {
		logging.Debug("java probe failed", "path", javaPath, "error", err)
		return props, nil
	}

	props.Merge(javaProps, javaPrefix)
	return props, nil
}

var current *App

// Current returns the default application instance, creating it on first use
func Current() *App {
	if current == nil {
		current = New()
	}
	return current
}

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	current = app
}

// ResetDefault drops the default application instance; the next Current
// call builds a fresh one
func ResetDefault() {
	current = nil
}
