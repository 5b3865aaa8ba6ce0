package resource

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
	"github.com/crmarques/viewstore/resource"
)

func newCreateCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var input common.InputFlags

	command := &cobra.Command{
		Use:   "create",
		Short: "Create a resource from a payload and track it",
		Example: strings.Join([]string{
			"  viewstore resource create --payload widget.json",
			"  cat widget.yaml | viewstore resource create --format yaml",
		}, "\n"),
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}
			gateway, err := common.RequireRemote(deps)
			if err != nil {
				return err
			}

			payload, err := common.DecodeInput[resource.Value](command, input)
			if err != nil {
				return err
			}

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource create requested")

			res, err := stateContainer.Create(runCtx, gateway.CreateResource(runCtx, payload))
			if err != nil {
				return err
			}

			return common.WriteOutput(command, globalFlags.Output, res.PayloadMap(), renderPayloadText)
		},
	}

	common.BindInputFlags(command, &input)
	return command
}
