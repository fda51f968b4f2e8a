package main

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shop-console/internal/config"
	"shop-console/internal/database"
	"shop-console/internal/errors"
	"shop-console/internal/handlers"
	"shop-console/internal/logger"
	"shop-console/internal/middleware"
	"shop-console/internal/render"
	"shop-console/internal/repositories"
	"shop-console/internal/services"
	"shop-console/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// application holds the per-invocation collaborators built once flags are parsed
type application struct {
	opts     handlers.RootOptions
	stderr   io.Writer
	logger   *slog.Logger
	cfg      *config.Config
	db       *database.DB
	formats  *render.Registry
	registry *prometheus.Registry
	metrics  *services.PrometheusMetrics
	customer *handlers.CustomerHandler
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	registry := prometheus.NewRegistry()
	app := &application{
		stderr:   stderr,
		logger:   slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		formats:  render.Default(),
		registry: registry,
		metrics:  services.NewPrometheusMetrics(registry),
	}
	defer app.close()

	root := handlers.NewRootCommand(&app.opts, app.bootstrap,
		handlers.NewCustomerListCommand(app.formats, app.customerHandler),
	)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)

	cmdCtx := ctx
	if cmd != nil && cmd.Context() != nil {
		cmdCtx = cmd.Context()
	}
	code := middleware.NewErrorHandler(stderr, app.logger, app.metrics).Handle(cmdCtx, err)

	app.pushMetrics()

	return code
}

// bootstrap loads configuration and opens the database before a command runs
func (a *application) bootstrap(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.opts.EnvFile); err != nil {
		return configError(err)
	}

	cfg, err := config.Load(viper.New(), a.opts.ConfigFile, validation.NewValidator(a.formats))
	if err != nil {
		return configError(err)
	}
	a.cfg = cfg

	log, err := logger.New(cfg.App.Environment, cfg.App.LogLevel, a.stderr)
	if err != nil {
		return configError(err)
	}
	a.logger = log.With("command", cmd.CommandPath())
	slog.SetDefault(a.logger)

	db, err := database.Initialize(cfg, a.logger)
	if err != nil {
		return errors.WrapDatabaseError(err, errors.WithTraceID(middleware.GetTraceID(cmd)))
	}
	a.db = db

	searchService := services.NewCustomerSearchService(
		repositories.NewCustomerRepository(db.DB),
		services.NewCustomerLogger(a.logger),
		a.metrics,
		cfg.CustomerList.PageSize,
	)
	a.customer = handlers.NewCustomerHandler(searchService, a.formats, cfg.CustomerList.DefaultFormat, a.logger)

	return nil
}

func (a *application) customerHandler() (*handlers.CustomerHandler, error) {
	if a.customer == nil {
		return nil, errors.WrapSystemError(stderrors.New("application not initialized"))
	}
	return a.customer, nil
}

// configError reports invalid settings as one line per field
func configError(err error) *errors.CommandError {
	details := validation.FormatErrors(err)
	if len(details) == 0 {
		return errors.NewCommandError(errors.SystemConfigurationError, err)
	}
	return errors.NewCommandError(errors.SystemConfigurationError, nil,
		errors.WithMessage("Invalid configuration"),
		errors.WithDetails(details...),
	)
}

// pushMetrics sends the invocation metrics to the Pushgateway when one is configured
func (a *application) pushMetrics() {
	if a.cfg == nil || a.cfg.Metrics.PushgatewayURL == "" {
		return
	}

	err := push.New(a.cfg.Metrics.PushgatewayURL, a.cfg.Metrics.JobName).
		Gatherer(a.registry).
		Push()
	if err != nil {
		a.logger.Warn("failed to push metrics", "url", a.cfg.Metrics.PushgatewayURL, "error", err)
	}
}

func (a *application) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}
