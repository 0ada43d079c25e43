// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Captured java property probes are embedded using go:embed:
//
//	fixtures/temurin21.txt    // modern JDK, single class path entry
//	fixtures/corretto8.txt    // JDK 8, class path split over two lines
//	fixtures/unsupported.txt  // runtime without -XshowSettings
//
// # Test Environment
//
// NewTestEnv wires an app.App with a fake host and a mock java so command
// tests run without touching the machine:
//
//	env := testutil.NewTestEnv(t)
//	env.SetJavaOutput(testutil.MustLoadFixture(testutil.Corretto8), nil)
//	env.Host.Getwd = func() (string, error) { return "/tmp", nil }
package testutil
