package resource

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
)

func newDeleteCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var skipConfirm bool

	command := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a resource and stop tracking it",
		Example: strings.Join([]string{
			"  viewstore resource delete w1",
			"  viewstore resource delete w1 --yes",
		}, "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}
			gateway, err := common.RequireRemote(deps)
			if err != nil {
				return err
			}

			id := strings.TrimSpace(args[0])
			if id == "" {
				return common.ValidationError("resource id must not be empty", nil)
			}

			if !skipConfirm && common.IsInteractiveTerminal(command) {
				confirmed, err := common.PromptConfirm(command, fmt.Sprintf("Delete resource %q?", id), false)
				if err != nil {
					return err
				}
				if !confirmed {
					return common.WriteText(command, globalFlags.Output, "delete aborted")
				}
			}

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource delete requested id=%q", id)

			removedID, err := stateContainer.Remove(runCtx, id, gateway.DeleteResource(runCtx, id))
			if err != nil {
				return err
			}

			return common.WriteText(command, globalFlags.Output, fmt.Sprintf("removed %s", removedID))
		},
	}

	command.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the delete confirmation prompt")
	return command
}
