// Package errors provides typed errors with exit codes for checkenv.
//
// # Error Types
//
// CheckError wraps an error with an exit code:
//
//	type CheckError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess         = 0 // Report written
//	ExitGeneralError    = 1 // General/unknown errors
//	ExitHostUnavailable = 2 // Host lookup facility could not be initialized
//	ExitOutputFailed    = 3 // Report could not be written to stdout
//
// A missing individual attribute is never an error; it is reported with an
// empty value.
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
