package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestWriteOutputFormats(t *testing.T) {
	t.Parallel()

	value := map[string]any{"id": "w1"}

	render := func(format string) string {
		command := &cobra.Command{}
		out := &bytes.Buffer{}
		command.SetOut(out)
		if err := WriteOutput(command, format, value, nil); err != nil {
			t.Fatalf("WriteOutput %q returned error: %v", format, err)
		}
		return out.String()
	}

	if got := render(OutputJSON); !strings.Contains(got, `"id": "w1"`) {
		t.Fatalf("unexpected json output %q", got)
	}
	if got := render(OutputYAML); !strings.Contains(got, "id: w1") {
		t.Fatalf("unexpected yaml output %q", got)
	}
	if got := render(OutputText); !strings.Contains(got, "w1") {
		t.Fatalf("unexpected text output %q", got)
	}
}

func TestWriteOutputSkipsNilValues(t *testing.T) {
	t.Parallel()

	command := &cobra.Command{}
	out := &bytes.Buffer{}
	command.SetOut(out)

	var value map[string]any
	if err := WriteOutput(command, OutputJSON, value, nil); err != nil {
		t.Fatalf("WriteOutput returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output for nil value, got %q", out.String())
	}
}
