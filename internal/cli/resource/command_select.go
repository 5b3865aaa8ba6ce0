package resource

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/internal/cli/common"
)

func newSelectCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "select [id]",
		Short: "Point the selection at a tracked resource",
		Long: `Point the selection at a resource id. The id is not validated against the
tracked entries: selecting first and loading later is a supported order.
Without an argument, an interactive picker lists the tracked ids.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}

			var id string
			if len(args) == 1 {
				id = strings.TrimSpace(args[0])
			} else {
				snapshot := stateContainer.Snapshot()
				options := make([]string, 0, len(snapshot.List))
				for _, entry := range snapshot.List {
					options = append(options, entry.ID())
				}
				id, err = common.PromptSelect(command, "Select a resource", options)
				if err != nil {
					return err
				}
			}
			if id == "" {
				return common.ValidationError("resource id must not be empty", nil)
			}

			stateContainer.Select(id)
			return common.WriteText(command, globalFlags.Output, fmt.Sprintf("selected %s", id))
		},
	}

	return command
}
