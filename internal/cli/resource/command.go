// Package resource exposes the container verbs as CLI commands: every
// mutation goes through the shared state container so the projection the
// other commands read stays consistent.
package resource

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/internal/cli/common"
)

func NewCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "resource",
		Short: "Work with tracked resources",
		Example: strings.Join([]string{
			"  viewstore resource list",
			"  viewstore resource get w1",
			"  viewstore resource create --payload widget.json",
			"  viewstore resource query '.[] | select(.meta.error != null)'",
		}, "\n"),
		Args: cobra.NoArgs,
	}

	command.AddCommand(
		newGetCommand(deps, globalFlags),
		newListCommand(deps, globalFlags),
		newCreateCommand(deps, globalFlags),
		newUpdateCommand(deps, globalFlags),
		newDeleteCommand(deps, globalFlags),
		newSelectCommand(deps, globalFlags),
		newShowCommand(deps, globalFlags),
		newQueryCommand(deps, globalFlags),
		newImportCommand(deps, globalFlags),
		newWatchCommand(deps, globalFlags),
	)

	return command
}
