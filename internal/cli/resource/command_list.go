package resource

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
	"github.com/crmarques/viewstore/state"
)

func newListCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "Fetch the collection and track every resource",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}
			gateway, err := common.RequireRemote(deps)
			if err != nil {
				return err
			}

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource list requested")

			if _, err := stateContainer.List(runCtx, gateway.FetchCollection(runCtx)); err != nil {
				return err
			}

			snapshot := stateContainer.Snapshot()
			return common.WriteOutput(command, globalFlags.Output, snapshot.Materialize(), renderEntriesText(snapshot.List))
		},
	}

	return command
}

func renderEntriesText(entries []state.Entry) func(io.Writer, []map[string]any) error {
	return func(w io.Writer, _ []map[string]any) error {
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "no tracked resources")
			return err
		}

		for _, entry := range entries {
			line := entry.ID()
			if entry.Meta.Action != state.ActionNone {
				line += fmt.Sprintf("  [%s pending]", entry.Meta.Action)
			}
			if entry.Meta.Error != "" {
				line += fmt.Sprintf("  [error: %s]", entry.Meta.Error)
			}
			if entry.Ghost() {
				line += "  [no payload]"
			}
			if _, err := fmt.Fprintln(w, strings.TrimSpace(line)); err != nil {
				return err
			}
		}
		return nil
	}
}
