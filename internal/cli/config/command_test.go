package config

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crmarques/viewstore/faults"
	"github.com/crmarques/viewstore/internal/cli/common"
	configfile "github.com/crmarques/viewstore/internal/providers/config/file"
)

func runConfigCommand(t *testing.T, deps common.CommandDependencies, stdin string, args ...string) (string, error) {
	t.Helper()

	globalFlags := common.GlobalFlags{Output: common.OutputText}
	command := NewCommand(deps, &globalFlags)
	command.SetArgs(args)

	out := &bytes.Buffer{}
	command.SetOut(out)
	command.SetErr(out)
	if stdin != "" {
		command.SetIn(bytes.NewBufferString(stdin))
	}

	err := command.ExecuteContext(context.Background())
	return out.String(), err
}

func testDeps(t *testing.T) common.CommandDependencies {
	t.Helper()
	return common.CommandDependencies{
		Contexts: configfile.NewFileContextService(filepath.Join(t.TempDir(), "contexts.yaml")),
	}
}

const contextYAML = `name: local
resource-server:
  http:
    base-url: http://localhost:8080
    collection-path: /widgets
`

func TestAddListCurrentRoundTrip(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)

	if _, err := runConfigCommand(t, deps, contextYAML, "add", "--payload", "-", "--format", "yaml"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	output, err := runConfigCommand(t, deps, "", "list")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(output, "local") {
		t.Fatalf("unexpected list output %q", output)
	}

	output, err = runConfigCommand(t, deps, "", "current")
	if err != nil {
		t.Fatalf("current returned error: %v", err)
	}
	if !strings.Contains(output, "local") {
		t.Fatalf("unexpected current output %q", output)
	}
}

func TestShowResolvesContext(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	if _, err := runConfigCommand(t, deps, contextYAML, "add", "--payload", "-", "--format", "yaml"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	output, err := runConfigCommand(t, deps, "", "show", "local")
	if err != nil {
		t.Fatalf("show returned error: %v", err)
	}
	if !strings.Contains(output, "base-url: http://localhost:8080") {
		t.Fatalf("unexpected show output %q", output)
	}
}

func TestUseRejectsUnknownContext(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	if _, err := runConfigCommand(t, deps, contextYAML, "add", "--payload", "-", "--format", "yaml"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if _, err := runConfigCommand(t, deps, "", "use", "missing"); !faults.IsCategory(err, faults.NotFoundError) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteRemovesContext(t *testing.T) {
	t.Parallel()

	deps := testDeps(t)
	if _, err := runConfigCommand(t, deps, contextYAML, "add", "--payload", "-", "--format", "yaml"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, err := runConfigCommand(t, deps, "", "delete", "local"); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := runConfigCommand(t, deps, "", "current"); !faults.IsCategory(err, faults.NotFoundError) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}
