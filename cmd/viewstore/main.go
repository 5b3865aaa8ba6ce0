package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/core"
	"github.com/crmarques/viewstore/internal/cli"
)

func main() {
	args := os.Args[1:]
	deps := cli.Dependencies{
		Contexts: core.NewContextService(core.BootstrapConfig{}),
	}
	if !shouldSkipContextBootstrap(args) {
		viewstoreContext, err := core.NewViewstoreContext(
			context.Background(),
			core.BootstrapConfig{},
			config.ContextSelection{Name: contextNameFromArgs(args)},
		)
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(cli.ExitCodeForError(err))
		}
		deps = cli.Dependencies{
			Contexts:  viewstoreContext.Contexts,
			Container: viewstoreContext.Container,
			Remote:    viewstoreContext.Remote,
		}
	}

	if err := cli.Execute(deps); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}

func contextNameFromArgs(args []string) string {
	for idx := 0; idx < len(args); idx++ {
		current := args[idx]

		if current == "--context" || current == "-c" {
			if idx+1 < len(args) {
				return args[idx+1]
			}
			return ""
		}
		if strings.HasPrefix(current, "--context=") {
			return strings.TrimPrefix(current, "--context=")
		}
	}

	return ""
}

// shouldSkipContextBootstrap reports whether the invocation can run without a
// resolvable context: help, completion, version, and the config commands that
// manage the catalog itself.
func shouldSkipContextBootstrap(args []string) bool {
	if isHelpInvocation(args) || isCompletionInvocation(args) {
		return true
	}
	switch args[0] {
	case "config", "version":
		return true
	}
	return false
}

func isHelpInvocation(args []string) bool {
	if len(args) == 0 {
		return true
	}
	if args[0] == "help" {
		return true
	}

	for _, current := range args {
		if current == "--" {
			break
		}
		if current == "--help" || current == "-h" {
			return true
		}
	}

	return false
}

func isCompletionInvocation(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "completion", "__complete", "__completeNoDesc":
		return true
	}
	return false
}
