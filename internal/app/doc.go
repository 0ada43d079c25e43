// Package app provides the application context for checkenv.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithConfig(cfg),
//	    app.WithHost(fakeHost),
//	    app.WithFS(mockFS),
//	    app.WithExecutor(mockExec),
//	    app.WithEnv(lookup),
//	)
//
// # Snapshot
//
// Snapshot merges host properties with the java.* properties of the probed
// runtime into the report.Properties the report is rendered from.
package app
