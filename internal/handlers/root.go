package handlers

import (
	"shop-console/internal/errors"
	"shop-console/internal/middleware"

	"github.com/spf13/cobra"
)

// AnnotationBootstrap marks commands that need the application bootstrapped before they run
const AnnotationBootstrap = "shopctl/bootstrap"

// RootOptions holds the global flags
type RootOptions struct {
	ConfigFile string
	EnvFile    string
}

// Bootstrap initializes the application after flags are parsed and before a command runs
type Bootstrap func(cmd *cobra.Command) error

// NewRootCommand builds the shopctl root command with the given subcommands.
// Errors are returned to the caller instead of being printed by cobra.
func NewRootCommand(opts *RootOptions, bootstrap Bootstrap, commands ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Shop administration console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := middleware.RequestID()(cmd, args); err != nil {
				return err
			}
			if bootstrap == nil || cmd.Annotations[AnnotationBootstrap] == "" {
				return nil
			}
			return bootstrap(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./shopctl.yaml when present)")
	root.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "env file to load (default ./.env when present)")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewCommandError(errors.ValidationInvalidArgument, err)
	})

	root.AddCommand(commands...)

	return root
}
