// Package cmd provides the create-nulla command implementation.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred, including
	// usage errors and an invalid config file.
	ExitGeneralError = 1

	// ExitInvalidNameStrict is returned for an invalid project name in strict mode.
	ExitInvalidNameStrict = 2

	// ExitAlreadyExistsStrict is returned for an existing project directory in strict mode.
	ExitAlreadyExistsStrict = 3
)

// ExitCodes maps run failures to process exit codes.
type ExitCodes struct {
	InvalidName   int
	AlreadyExists int
	RunFailed     int
}

// DefaultExitCodes reports every run failure as success. The message has
// already been printed and the tool has always exited this way.
var DefaultExitCodes = ExitCodes{
	InvalidName:   ExitSuccess,
	AlreadyExists: ExitSuccess,
	RunFailed:     ExitSuccess,
}

// StrictExitCodes is used when strictExitCodes is enabled.
var StrictExitCodes = ExitCodes{
	InvalidName:   ExitInvalidNameStrict,
	AlreadyExists: ExitAlreadyExistsStrict,
	RunFailed:     ExitGeneralError,
}

// exitCodesFor selects the exit code table.
func exitCodesFor(strict bool) ExitCodes {
	if strict {
		return StrictExitCodes
	}
	return DefaultExitCodes
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidNameStrict:
		return "Invalid Name"
	case ExitAlreadyExistsStrict:
		return "Already Exists"
	default:
		return "Unknown"
	}
}
