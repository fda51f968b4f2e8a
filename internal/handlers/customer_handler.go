package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"shop-console/internal/dto"
	"shop-console/internal/errors"
	"shop-console/internal/logger"
	"shop-console/internal/middleware"
	"shop-console/internal/render"
	"shop-console/internal/repositories"
	"shop-console/internal/services"

	"github.com/spf13/cobra"
)

// NoCustomersMessage is printed instead of a table when the search matches nothing
const NoCustomersMessage = "No customers found"

// CustomerHandler handles the customer console commands
type CustomerHandler struct {
	searchService services.CustomerSearchServiceInterface
	formats       *render.Registry
	defaultFormat string
	logger        *slog.Logger
}

// NewCustomerHandler creates a new customer handler. defaultFormat is used when no --format is given.
func NewCustomerHandler(
	searchService services.CustomerSearchServiceInterface,
	formats *render.Registry,
	defaultFormat string,
	logger *slog.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		searchService: searchService,
		formats:       formats,
		defaultFormat: defaultFormat,
		logger:        logger,
	}
}

// ListCustomers writes the customers matching req.Search to out in req.Format.
// The format is resolved before the repository is queried.
func (h *CustomerHandler) ListCustomers(ctx context.Context, out io.Writer, req dto.ListCustomersRequest) error {
	format := req.Format
	if format == "" {
		format = h.defaultFormat
	}

	renderer, err := h.formats.Get(format)
	if err != nil {
		return err
	}

	results, err := h.searchService.ListCustomers(ctx, req.Search)
	if err != nil {
		if stderrors.Is(err, repositories.ErrInvalidFilterField) || stderrors.Is(err, repositories.ErrInvalidConditionType) {
			return err
		}
		return errors.WrapDatabaseError(err, errors.WithTraceID(logger.TraceIDFromContext(ctx)))
	}

	rows := dto.CustomerTable(results.Items)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, NoCustomersMessage)
		return err
	}

	return renderer(out, dto.CustomerListHeaders, rows)
}

// CustomerHandlerProvider returns the customer handler once the application is initialized
type CustomerHandlerProvider func() (*CustomerHandler, error)

// NewCustomerListCommand builds the customer:list command
func NewCustomerListCommand(formats *render.Registry, provide CustomerHandlerProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "customer:list [search]",
		Short: "Lists all customers",
		Long:  "Lists all customers of the current installation.",
		Args:  cobra.MatchAll(maximumArgs(1), registeredFormat(formats, &format)),
		Annotations: map[string]string{
			AnnotationBootstrap: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := provide()
			if err != nil {
				return err
			}

			req := dto.ListCustomersRequest{Format: format}
			if len(args) > 0 {
				req.Search = args[0]
			}

			run := middleware.PanicRecovery(handler.logger, func(cmd *cobra.Command, _ []string) error {
				return handler.ListCustomers(cmd.Context(), cmd.OutOrStdout(), req)
			})
			return run(cmd, args)
		},
	}

	cmd.Flags().StringVar(&format, "format", "",
		fmt.Sprintf("Output Format. One of [%s]", strings.Join(formats.Formats(), ",")))

	return cmd
}

// registeredFormat rejects an unknown --format. Argument checks run before the persistent
// pre-run hooks, so the format fails the same way whether or not the database is reachable.
func registeredFormat(formats *render.Registry, format *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if *format == "" {
			return nil
		}
		_, err := formats.Get(*format)
		return err
	}
}

func maximumArgs(n int) cobra.PositionalArgs {
	validate := cobra.MaximumNArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.NewCommandError(errors.ValidationInvalidArgument, err)
		}
		return nil
	}
}
