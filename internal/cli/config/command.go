// Package config manages the context catalog from the CLI.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	configdomain "github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/internal/cli/common"
)

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Manage contexts",
		Args:  cobra.NoArgs,
	}

	command.AddCommand(
		newAddCommand(deps),
		newDeleteCommand(deps, globalFlags),
		newListCommand(deps, globalFlags),
		newUseCommand(deps, globalFlags),
		newCurrentCommand(deps, globalFlags),
		newShowCommand(deps, globalFlags),
	)

	return command
}

func newAddCommand(deps common.CommandDependencies) *cobra.Command {
	var input common.InputFlags
	var setCurrent bool

	command := &cobra.Command{
		Use:   "add",
		Short: "Add a context from a YAML or JSON definition",
		Example: strings.Join([]string{
			"  viewstore config add --payload context.yaml --format yaml",
			"  cat context.yaml | viewstore config add --format yaml --set-current",
		}, "\n"),
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			cfg, err := common.DecodeInput[configdomain.Context](command, input)
			if err != nil {
				return err
			}
			if err := contexts.Create(command.Context(), cfg); err != nil {
				return err
			}
			if setCurrent {
				return contexts.SetCurrent(command.Context(), cfg.Name)
			}
			return nil
		},
	}

	common.BindInputFlags(command, &input)
	command.Flags().BoolVar(&setCurrent, "set-current", false, "make the added context current")
	return command
}

func newDeleteCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a context",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}
			if err := contexts.Delete(command.Context(), args[0]); err != nil {
				return err
			}
			return common.WriteText(command, globalFlags.Output, fmt.Sprintf("deleted context %s", args[0]))
		},
	}

	return command
}

func newListCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "List context names",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			available, err := contexts.List(command.Context())
			if err != nil {
				return err
			}

			names := make([]string, 0, len(available))
			for _, cfg := range available {
				names = append(names, cfg.Name)
			}
			return common.WriteOutput(command, globalFlags.Output, names, func(w io.Writer, value []string) error {
				for _, name := range value {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	return command
}

func newUseCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "use [name]",
		Short: "Switch the current context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				available, err := contexts.List(command.Context())
				if err != nil {
					return err
				}
				options := make([]string, 0, len(available))
				for _, cfg := range available {
					options = append(options, cfg.Name)
				}
				name, err = common.PromptSelect(command, "Select a context", options)
				if err != nil {
					return err
				}
			}

			if err := contexts.SetCurrent(command.Context(), name); err != nil {
				return err
			}
			return common.WriteText(command, globalFlags.Output, fmt.Sprintf("current context is %s", name))
		},
	}

	return command
}

func newCurrentCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "current",
		Short: "Print the current context name",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			current, err := contexts.GetCurrent(command.Context())
			if err != nil {
				return err
			}
			return common.WriteText(command, globalFlags.Output, current.Name)
		},
	}

	return command
}

func newShowCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a resolved context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			contexts, err := common.RequireContexts(deps)
			if err != nil {
				return err
			}

			selection := configdomain.ContextSelection{Name: globalFlags.Context}
			if len(args) == 1 {
				selection.Name = args[0]
			}

			resolved, err := contexts.ResolveContext(command.Context(), selection)
			if err != nil {
				return err
			}

			outputFormat := globalFlags.Output
			if outputFormat == common.OutputAuto || outputFormat == common.OutputText {
				outputFormat = common.OutputYAML
			}
			return common.WriteOutput(command, outputFormat, resolved, nil)
		},
	}

	return command
}
