package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
	configcmd "github.com/crmarques/viewstore/internal/cli/config"
	resourcecmd "github.com/crmarques/viewstore/internal/cli/resource"
	"github.com/crmarques/viewstore/internal/cli/version"
)

func NewRootCommand(deps Dependencies) *cobra.Command {
	commandDeps := deps.commandDependencies()
	var globalFlags common.GlobalFlags

	root := &cobra.Command{
		Use:   "viewstore",
		Short: "Track remotely sourced resources through a local state container",
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
		Args: cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			if err := common.ValidateOutputFormat(globalFlags.Output); err != nil {
				return err
			}

			commandContext := context.Background()
			commandContext = debugctx.WithEnabled(commandContext, globalFlags.Debug)
			commandContext = debugctx.WithWriter(commandContext, command.ErrOrStderr())
			command.SetContext(commandContext)

			debugctx.Printf(
				command.Context(),
				"root flags context=%q output=%q verbose=%t no_status=%t command=%q",
				globalFlags.Context,
				globalFlags.Output,
				globalFlags.Verbose,
				globalFlags.NoStatus,
				command.CommandPath(),
			)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	common.BindGlobalFlags(root, &globalFlags)

	root.AddCommand(configcmd.NewCommand(commandDeps, &globalFlags))
	root.AddCommand(resourcecmd.NewCommand(commandDeps, &globalFlags))
	root.AddCommand(version.NewCommand(commandDeps, &globalFlags))

	return root
}
