package middleware

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"shop-console/internal/errors"
	"shop-console/internal/logger"
	"shop-console/internal/render"
	"shop-console/internal/repositories"
	"shop-console/internal/services"
	"shop-console/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the command error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	out      *bytes.Buffer
	logs     *bytes.Buffer
	registry *prometheus.Registry
	handler  *ErrorHandler
	ctx      context.Context
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.logs = &bytes.Buffer{}
	s.registry = prometheus.NewRegistry()
	s.handler = NewErrorHandler(
		s.out,
		slog.New(slog.NewJSONHandler(s.logs, nil)),
		services.NewPrometheusMetrics(s.registry),
	)
	s.ctx = logger.ContextWithTraceID(context.Background(), "test-trace-id")
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) errorCount(code errors.ErrorCode) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, family := range families {
		if family.GetName() != "command_errors_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" && label.GetValue() == string(code) {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// TestHandle_NilError tests that success exits with 0 and prints nothing
func (s *ErrorHandlerTestSuite) TestHandle_NilError() {
	code := s.handler.Handle(s.ctx, nil)

	s.Equal(errors.ExitOK, code)
	s.Empty(s.out.String())
	s.Empty(s.logs.String())
	count, err := testutil.GatherAndCount(s.registry, "command_errors_total")
	s.NoError(err)
	s.Zero(count)
}

// TestHandle_InvalidFormat tests that an unknown format is a usage error
func (s *ErrorHandlerTestSuite) TestHandle_InvalidFormat() {
	_, err := render.Default().Get("pdf")

	code := s.handler.Handle(s.ctx, err)

	s.Equal(errors.ExitUsage, code)
	s.Contains(s.out.String(), "Error: ")
	s.Contains(s.out.String(), `"pdf"`)
	s.Contains(s.logs.String(), string(errors.ValidationInvalidFormat))
	s.Contains(s.logs.String(), "test-trace-id")
	s.Equal(float64(1), s.errorCount(errors.ValidationInvalidFormat))
}

// TestHandle_DatabaseError tests that repository failures keep their message and exit with 3
func (s *ErrorHandlerTestSuite) TestHandle_DatabaseError() {
	cause := stderrors.New("failed to count customers: connection refused")

	code := s.handler.Handle(s.ctx, errors.WrapDatabaseError(cause))

	s.Equal(errors.ExitDatabase, code)
	s.Equal("Error: failed to count customers: connection refused\n", s.out.String())
	s.Contains(s.logs.String(), `"level":"ERROR"`)
	s.Equal(float64(1), s.errorCount(errors.SystemDatabaseError))
}

// TestHandle_ValidationErrors tests that validator errors are listed as details
func (s *ErrorHandlerTestSuite) TestHandle_ValidationErrors() {
	type sample struct {
		Format string `validate:"output_format"`
	}
	err := validation.NewValidator(render.Default()).Struct(sample{Format: "pdf"})
	s.Require().Error(err)

	code := s.handler.Handle(s.ctx, fmt.Errorf("invalid config: %w", err))

	s.Equal(errors.ExitUsage, code)
	s.Contains(s.out.String(), "Error: Validation failed\n")
	s.Contains(s.out.String(), `  - sample.Format: must be a registered output format, got "pdf"`)
}

// TestHandle_NoTraceID tests that a missing trace ID is logged as unknown
func (s *ErrorHandlerTestSuite) TestHandle_NoTraceID() {
	code := s.handler.Handle(context.Background(), stderrors.New("boom"))

	s.Equal(errors.ExitFailure, code)
	s.Equal("Error: boom\n", s.out.String())
	s.Contains(s.logs.String(), `"trace_id":"unknown"`)
	s.Equal(float64(1), s.errorCount(errors.SystemUnexpectedError))
}

// TestHandle_WithoutMetrics tests that a nil metrics recorder is tolerated
func (s *ErrorHandlerTestSuite) TestHandle_WithoutMetrics() {
	handler := NewErrorHandler(s.out, slog.New(slog.NewTextHandler(s.logs, nil)), nil)

	s.NotPanics(func() {
		s.Equal(errors.ExitFailure, handler.Handle(s.ctx, stderrors.New("boom")))
	})
}

// TestClassifyError tests the mapping of errors to codes
func (s *ErrorHandlerTestSuite) TestClassifyError() {
	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
		wantExit int
	}{
		{
			name:     "command error is kept",
			err:      errors.NewCommandError(errors.SystemConfigurationError, stderrors.New("bad config")),
			wantCode: errors.SystemConfigurationError,
			wantExit: errors.ExitFailure,
		},
		{
			name:     "wrapped command error is kept",
			err:      fmt.Errorf("run: %w", errors.WrapDatabaseError(stderrors.New("down"))),
			wantCode: errors.SystemDatabaseError,
			wantExit: errors.ExitDatabase,
		},
		{
			name:     "invalid format",
			err:      fmt.Errorf("%w: %q", render.ErrInvalidFormat, "pdf"),
			wantCode: errors.ValidationInvalidFormat,
			wantExit: errors.ExitUsage,
		},
		{
			name:     "invalid filter field",
			err:      fmt.Errorf("%w: password", repositories.ErrInvalidFilterField),
			wantCode: errors.ValidationInvalidFilter,
			wantExit: errors.ExitUsage,
		},
		{
			name:     "invalid condition type",
			err:      fmt.Errorf("%w: regexp", repositories.ErrInvalidConditionType),
			wantCode: errors.ValidationInvalidFilter,
			wantExit: errors.ExitUsage,
		},
		{
			name:     "anything else",
			err:      stderrors.New("boom"),
			wantCode: errors.SystemUnexpectedError,
			wantExit: errors.ExitFailure,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cmdErr := ClassifyError(tt.err)
			s.Equal(tt.wantCode, cmdErr.Code)
			s.Equal(tt.wantExit, cmdErr.ExitCode())
		})
	}
}
