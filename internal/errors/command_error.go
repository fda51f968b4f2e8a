package errors

// CommandError carries an error code alongside the error that caused a command to fail.
// Error() returns the cause's message unchanged when there is a cause.
type CommandError struct {
	Code    ErrorCode
	Message string
	Details []string
	TraceID string
	Err     error
}

// ErrorOption is a functional option for configuring command errors
type ErrorOption func(*CommandError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(ce *CommandError) {
		ce.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(ce *CommandError) {
		ce.Message = message
	}
}

// WithTraceID attaches the invocation trace ID
func WithTraceID(traceID string) ErrorOption {
	return func(ce *CommandError) {
		ce.TraceID = traceID
	}
}

// NewCommandError creates a command error with the given code and cause
func NewCommandError(code ErrorCode, err error, opts ...ErrorOption) *CommandError {
	ce := &CommandError{
		Code:    code,
		Message: GetErrorMessage(code),
		Details: []string{},
		Err:     err,
	}

	for _, opt := range opts {
		opt(ce)
	}

	return ce
}

// WrapDatabaseError marks an error coming from the customer repository
func WrapDatabaseError(err error, opts ...ErrorOption) *CommandError {
	return NewCommandError(SystemDatabaseError, err, opts...)
}

// WrapSystemError marks an unexpected internal error
func WrapSystemError(err error, opts ...ErrorOption) *CommandError {
	return NewCommandError(SystemInternalError, err, opts...)
}

func (ce *CommandError) Error() string {
	if ce.Err != nil {
		return ce.Err.Error()
	}
	return ce.Message
}

func (ce *CommandError) Unwrap() error {
	return ce.Err
}

// ExitCode returns the process exit code for the error
func (ce *CommandError) ExitCode() int {
	return GetExitCode(ce.Code)
}
