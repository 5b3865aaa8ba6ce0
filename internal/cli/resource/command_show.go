package resource

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/internal/cli/common"
)

func newShowCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var showAll bool

	command := &cobra.Command{
		Use:   "show",
		Short: "Show the selected entry, or the whole projection with --all",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}

			snapshot := stateContainer.Snapshot()
			if showAll {
				return common.WriteOutput(command, globalFlags.Output, snapshotView(snapshot), renderSnapshotText)
			}

			if snapshot.Selected == nil {
				return common.NotFoundError("no resource is selected", nil)
			}
			return common.WriteOutput(command, globalFlags.Output, snapshot.Selected.Materialize(), renderPayloadText)
		},
	}

	command.Flags().BoolVar(&showAll, "all", false, "show every tracked entry plus the global flags")
	return command
}

type projectionView struct {
	Entries  []map[string]any `json:"entries" yaml:"entries"`
	Selected string           `json:"selected,omitempty" yaml:"selected,omitempty"`
	Action   string           `json:"action,omitempty" yaml:"action,omitempty"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
}

func snapshotView(snapshot container.Snapshot) projectionView {
	view := projectionView{
		Entries: snapshot.Materialize(),
		Action:  string(snapshot.Action),
		Error:   snapshot.Error,
	}
	if snapshot.Selected != nil {
		view.Selected = snapshot.Selected.ID()
	}
	return view
}

func renderSnapshotText(w io.Writer, view projectionView) error {
	if _, err := fmt.Fprintf(w, "entries: %d\n", len(view.Entries)); err != nil {
		return err
	}
	for _, entry := range view.Entries {
		if _, err := fmt.Fprintf(w, "  %v\n", entry["id"]); err != nil {
			return err
		}
	}
	if view.Selected != "" {
		if _, err := fmt.Fprintf(w, "selected: %s\n", view.Selected); err != nil {
			return err
		}
	}
	if view.Action != "" {
		if _, err := fmt.Fprintf(w, "pending: %s\n", view.Action); err != nil {
			return err
		}
	}
	if view.Error != "" {
		if _, err := fmt.Fprintf(w, "error: %s\n", view.Error); err != nil {
			return err
		}
	}
	return nil
}
