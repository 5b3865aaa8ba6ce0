package resource

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
)

func newGetCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	command := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one resource and track it",
		Example: strings.Join([]string{
			"  viewstore resource get w1",
			"  viewstore resource get w1 --output yaml",
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

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource get requested id=%q", id)

			res, err := stateContainer.Get(runCtx, id, gateway.FetchResource(runCtx, id))
			if err != nil {
				return err
			}

			return common.WriteOutput(command, globalFlags.Output, res.PayloadMap(), renderPayloadText)
		},
	}

	return command
}

func renderPayloadText(w io.Writer, payload map[string]any) error {
	_, err := fmt.Fprintf(w, "%v\n", payload)
	return err
}
