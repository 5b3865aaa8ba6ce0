package common

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/crmarques/viewstore/faults"
)

func TestDecodeInputDataFormats(t *testing.T) {
	t.Parallel()

	jsonValue, err := DecodeInputData[map[string]any]([]byte(`{"id":"w1"}`), OutputJSON)
	if err != nil {
		t.Fatalf("DecodeInputData json returned error: %v", err)
	}
	if jsonValue["id"] != "w1" {
		t.Fatalf("unexpected json value %#v", jsonValue)
	}

	yamlValue, err := DecodeInputData[map[string]any]([]byte("id: w1\n"), OutputYAML)
	if err != nil {
		t.Fatalf("DecodeInputData yaml returned error: %v", err)
	}
	if yamlValue["id"] != "w1" {
		t.Fatalf("unexpected yaml value %#v", yamlValue)
	}

	if _, err := DecodeInputData[map[string]any]([]byte("{"), OutputJSON); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for broken json, got %v", err)
	}
	if _, err := DecodeInputData[map[string]any](nil, "toml"); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for unknown format, got %v", err)
	}
}

func TestReadInputFromStdin(t *testing.T) {
	t.Parallel()

	command := &cobra.Command{}
	command.SetIn(bytes.NewBufferString(`{"id":"w1"}`))

	data, err := ReadInput(command, InputFlags{Payload: stdinFileIndicator})
	if err != nil {
		t.Fatalf("ReadInput returned error: %v", err)
	}
	if string(data) != `{"id":"w1"}` {
		t.Fatalf("unexpected input %q", string(data))
	}

	empty := &cobra.Command{}
	empty.SetIn(bytes.NewBufferString("  \n"))
	if _, err := ReadInput(empty, InputFlags{}); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for empty stdin, got %v", err)
	}
}
