package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CommandErrorTestSuite defines the test suite for command errors
type CommandErrorTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *CommandErrorTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestCommandErrorTestSuite runs the test suite
func TestCommandErrorTestSuite(t *testing.T) {
	suite.Run(t, new(CommandErrorTestSuite))
}

func (s *CommandErrorTestSuite) TestNewCommandError_BasicUsage() {
	ce := NewCommandError(ValidationInvalidFormat, nil)

	s.Equal(ValidationInvalidFormat, ce.Code)
	s.Equal("Unsupported output format", ce.Message)
	s.Equal("Unsupported output format", ce.Error())
	s.Empty(ce.Details)
	s.Empty(ce.TraceID)
	s.Equal(ExitUsage, ce.ExitCode())
}

func (s *CommandErrorTestSuite) TestNewCommandError_Options() {
	ce := NewCommandError(ValidationGeneral, nil,
		WithDetails("Config.Database.Driver: must be one of: postgres sqlite"),
		WithMessage("Configuration is invalid"),
		WithTraceID(s.traceID),
	)

	s.Equal([]string{"Config.Database.Driver: must be one of: postgres sqlite"}, ce.Details)
	s.Equal("Configuration is invalid", ce.Message)
	s.Equal(s.traceID, ce.TraceID)
}

func (s *CommandErrorTestSuite) TestWrapDatabaseError_KeepsCauseMessage() {
	cause := stderrors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	ce := WrapDatabaseError(cause)

	s.Equal(cause.Error(), ce.Error())
	s.ErrorIs(ce, cause)
	s.Equal(SystemDatabaseError, ce.Code)
	s.Equal(ExitDatabase, ce.ExitCode())
}

func (s *CommandErrorTestSuite) TestCommandError_ErrorsAs() {
	wrapped := fmt.Errorf("run: %w", WrapSystemError(stderrors.New("boom")))

	var ce *CommandError
	s.Require().ErrorAs(wrapped, &ce)
	s.Equal(SystemInternalError, ce.Code)
}
