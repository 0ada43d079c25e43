// Package testutil provides test utilities for command tests
package testutil

import (
	"os/user"
	"testing"

	"github.com/firefly-engineering/checkenv/internal/app"
	"github.com/firefly-engineering/checkenv/internal/config"
	"github.com/firefly-engineering/checkenv/internal/host"
	"github.com/firefly-engineering/checkenv/internal/system"
)

// JavaPath is where the fake java binary lives in a TestEnv.
const JavaPath = "/usr/bin/java"

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	FS       *system.MockFS
	Executor *system.MockExecutor
	Host     *host.Collector
	Config   *config.Config
	Env      map[string]string
	App      *app.App
}

// NewTestEnv creates a test environment with a fake Linux host, a fake
// java on PATH answering with the Temurin21 fixture, and installs it as the
// default app. The default is dropped when the test ends.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	env := &TestEnv{
		T:        t,
		FS:       system.NewMockFS(),
		Executor: system.NewMockExecutor(),
		Config:   config.Default(),
		Env:      map[string]string{},
	}

	env.FS.AddFile(JavaPath, 0755)
	env.FS.PathDirs = []string{"/usr/bin"}
	env.SetJavaOutput(MustLoadFixture(Temurin21), nil)

	env.Host = &host.Collector{
		Kernel: func() (host.Kernel, error) {
			return host.Kernel{Name: "Linux", Release: "6.8.0-45-generic"}, nil
		},
		CurrentUser: func() (*user.User, error) {
			return &user.User{Username: "alice", HomeDir: "/home/alice"}, nil
		},
		HomeDir: func() (string, error) { return "/home/alice", nil },
		Getwd:   func() (string, error) { return "/home/alice/src", nil },
		Lookup:  env.lookup,
		GOOS:    "linux",
	}

	env.App = app.New(
		app.WithConfig(env.Config),
		app.WithHost(env.Host),
		app.WithFS(env.FS),
		app.WithExecutor(env.Executor),
		app.WithEnv(env.lookup),
	)

	app.SetDefault(env.App)
	t.Cleanup(app.ResetDefault)

	return env
}

func (e *TestEnv) lookup(key string) (string, bool) {
	v, ok := e.Env[key]
	return v, ok
}

// SetJavaOutput sets what the fake java prints for the property probe.
func (e *TestEnv) SetJavaOutput(output []byte, err error) {
	e.Executor.AddResponse(JavaPath+" -XshowSettings:properties", output, err)
}

// RemoveJava makes java unavailable on the fake PATH.
func (e *TestEnv) RemoveJava() {
	e.FS.PathDirs = nil
}
