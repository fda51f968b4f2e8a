package errors

// ErrorCode represents a standardized error code used throughout the console
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationInvalidArgument ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationInvalidFilter   ErrorCode = "VALIDATION_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// Process exit codes
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitDatabase = 3
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationInvalidArgument: "Invalid command argument",
	ValidationInvalidFormat:   "Unsupported output format",
	ValidationInvalidFilter:   "Invalid search filter",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please report it with the trace ID",
	SystemDatabaseError:      "Customer repository error",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// GetExitCode returns the process exit code for the error code
func GetExitCode(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationInvalidArgument, ValidationInvalidFormat, ValidationInvalidFilter:
		return ExitUsage
	case SystemDatabaseError:
		return ExitDatabase
	default:
		return ExitFailure
	}
}
