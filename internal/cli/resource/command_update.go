package resource

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
	"github.com/crmarques/viewstore/resource"
)

func newUpdateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var input common.InputFlags

	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a resource from a payload",
		Example: strings.Join([]string{
			"  viewstore resource update w1 --payload widget.json",
			"  cat widget.yaml | viewstore resource update w1 --format yaml",
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

			payload, err := common.DecodeInput[resource.Value](command, input)
			if err != nil {
				return err
			}

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource update requested id=%q", id)

			res, err := stateContainer.Update(runCtx, id, gateway.UpdateResource(runCtx, id, payload))
			if err != nil {
				return err
			}

			return common.WriteOutput(command, globalFlags.Output, res.PayloadMap(), renderPayloadText)
		},
	}

	common.BindInputFlags(command, &input)
	return command
}
