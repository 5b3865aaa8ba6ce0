// Package cli assembles the viewstore command tree. Commands receive their
// collaborators through Dependencies; nothing in here constructs providers.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/faults"
	"github.com/crmarques/viewstore/internal/cli/common"
	"github.com/crmarques/viewstore/remote"
)

type Dependencies struct {
	Contexts  config.ContextService
	Container *container.Container
	Remote    remote.Gateway
}

func (d Dependencies) commandDependencies() common.CommandDependencies {
	return common.CommandDependencies{
		Contexts:  d.Contexts,
		Container: d.Container,
		Remote:    d.Remote,
	}
}

func Execute(deps Dependencies) error {
	root := NewRootCommand(deps)
	command, err := root.ExecuteC()
	emitStatus := shouldEmitExecutionStatus(os.Args[1:], command)

	if err != nil {
		if emitStatus {
			writeExecutionErrorStatus(root.ErrOrStderr(), err)
		} else {
			_, _ = fmt.Fprintln(root.ErrOrStderr(), strings.TrimSpace(err.Error()))
		}
		return err
	}
	if emitStatus {
		writeExecutionOKStatus(root.ErrOrStderr())
	}
	return nil
}

func ExitCodeForError(err error) int {
	if err == nil {
		return 0
	}

	var typedErr *faults.TypedError
	if !errors.As(err, &typedErr) {
		return 1
	}

	switch typedErr.Category {
	case faults.ValidationError:
		return 2
	case faults.NotFoundError:
		return 3
	case faults.ConflictError:
		return 5
	case faults.TransportError:
		return 6
	default:
		return 1
	}
}

func shouldEmitExecutionStatus(args []string, command *cobra.Command) bool {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--no-status" || arg == "-n" {
			return false
		}
		if arg == "--help" || arg == "-h" || arg == "help" {
			return false
		}
	}
	if command != nil {
		switch command.Name() {
		case "help", "completion", "__complete", "__completeNoDesc":
			return false
		}
	}
	return true
}

func writeExecutionOKStatus(w io.Writer) {
	_, _ = fmt.Fprintf(w, "[OK] command executed successfully.\n")
}

func writeExecutionErrorStatus(w io.Writer, err error) {
	description := "command execution failed"
	if err != nil {
		description = fmt.Sprintf("%s: %s", description, strings.TrimSpace(err.Error()))
	}
	_, _ = fmt.Fprintf(w, "[ERROR] %s.\n", description)
}
