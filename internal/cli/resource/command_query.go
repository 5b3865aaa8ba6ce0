package resource

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
	"github.com/crmarques/viewstore/query"
)

func newQueryCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var refresh bool

	command := &cobra.Command{
		Use:   "query <expression>",
		Short: "Evaluate a jq expression over the tracked entries",
		Long: `Evaluate a jq expression against the materialized projection. The
expression sees the entry list as its input, so filters are written as
'.[] | select(...)'. With --refresh the collection is fetched first.`,
		Example: strings.Join([]string{
			"  viewstore resource query '.[] | .id'",
			"  viewstore resource query '.[] | select(.meta.error != null)'",
			"  viewstore resource query --refresh 'length'",
		}, "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}

			runCtx := command.Context()
			if refresh {
				gateway, err := common.RequireRemote(deps)
				if err != nil {
					return err
				}
				if _, err := stateContainer.List(runCtx, gateway.FetchCollection(runCtx)); err != nil {
					return err
				}
			}

			expression := args[0]
			debugctx.Printf(runCtx, "resource query expression=%q refresh=%t", expression, refresh)

			results, err := query.Entries(runCtx, expression, stateContainer.Snapshot().Materialize())
			if err != nil {
				return err
			}

			outputFormat := globalFlags.Output
			if outputFormat == common.OutputAuto || outputFormat == common.OutputText {
				outputFormat = common.OutputJSON
			}
			for _, result := range results {
				if err := common.WriteOutput(command, outputFormat, result, nil); err != nil {
					return err
				}
			}
			return nil
		},
	}

	command.Flags().BoolVar(&refresh, "refresh", false, "fetch the collection before evaluating")
	return command
}
