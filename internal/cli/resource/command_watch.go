package resource

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/internal/cli/common"
)

func newWatchCommand(deps common.CommandDependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var interval time.Duration

	command := &cobra.Command{
		Use:   "watch",
		Short: "Stream projection changes until interrupted",
		Long: `Subscribe to the container and print a projection line for every change.
Bursts of events are throttled to one render per interval; intermediate
snapshots are skipped, the latest one always wins.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			stateContainer, err := common.RequireContainer(deps)
			if err != nil {
				return err
			}
			if interval <= 0 {
				return common.ValidationError("interval must be positive", nil)
			}

			runCtx := command.Context()
			debugctx.Printf(runCtx, "resource watch interval=%s", interval)

			snapshots, cancel := stateContainer.Subscribe()
			defer cancel()

			limiter := rate.NewLimiter(rate.Every(interval), 1)
			out := command.OutOrStdout()

			for {
				select {
				case <-runCtx.Done():
					return nil
				case snapshot, open := <-snapshots:
					if !open {
						return nil
					}
					if err := limiter.Wait(runCtx); err != nil {
						return nil
					}

					line := fmt.Sprintf("%s  entries=%d", time.Now().Format(time.TimeOnly), len(snapshot.List))
					if snapshot.Action != "" {
						line += fmt.Sprintf(" pending=%s", snapshot.Action)
					}
					if snapshot.Error != "" {
						line += fmt.Sprintf(" error=%q", snapshot.Error)
					}
					if snapshot.Selected != nil {
						line += fmt.Sprintf(" selected=%s", snapshot.Selected.ID())
					}
					if _, err := fmt.Fprintln(out, line); err != nil {
						return err
					}
				}
			}
		},
	}

	command.Flags().DurationVar(&interval, "interval", 250*time.Millisecond, "minimum delay between rendered updates")
	return command
}
