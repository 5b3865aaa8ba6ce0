package resource

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
	"github.com/crmarques/viewstore/resource"
)

const defaultImportConcurrency = 4

func newImportCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var format string
	var concurrency int

	command := &cobra.Command{
		Use:   "import <file>...",
		Short: "Create resources from payload files concurrently",
		Example: strings.Join([]string{
			"  viewstore resource import widgets/*.json",
			"  viewstore resource import --format yaml widgets/*.yaml",
		}, "\n"),
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}
			gateway, err := common.RequireRemote(deps)
			if err != nil {
				return err
			}
			if concurrency < 1 {
				return common.ValidationError("concurrency must be at least 1", nil)
			}

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource import files=%d concurrency=%d", len(args), concurrency)

			group, groupCtx := errgroup.WithContext(runCtx)
			group.SetLimit(concurrency)

			created := make([]string, len(args))
			for idx, path := range args {
				group.Go(func() error {
					data, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					payload, err := common.DecodeInputData[resource.Value](data, format)
					if err != nil {
						return common.ValidationError(fmt.Sprintf("invalid payload in %s", path), err)
					}

					res, err := stateContainer.Create(groupCtx, gateway.CreateResource(groupCtx, payload))
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					created[idx] = res.ID
					return nil
				})
			}
			if err := group.Wait(); err != nil {
				return err
			}

			return common.WriteOutput(command, globalFlags.Output, created, nil)
		},
	}

	command.Flags().StringVarP(&format, "format", "i", common.OutputJSON, "input format: json|yaml")
	command.Flags().IntVar(&concurrency, "concurrency", defaultImportConcurrency, "maximum concurrent creates")
	return command
}
