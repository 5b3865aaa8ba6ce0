package yamlutil

import (
	"strings"
	"testing"
)

func TestMarshalWithIndent(t *testing.T) {
	t.Parallel()

	value := map[string]any{
		"entries": []map[string]any{{"id": "w1"}},
	}

	encoded, err := MarshalWithIndent(value, 2)
	if err != nil {
		t.Fatalf("MarshalWithIndent returned error: %v", err)
	}

	got := string(encoded)
	if !strings.Contains(got, "entries:") || !strings.Contains(got, "  - id: w1") {
		t.Fatalf("unexpected encoding:\n%s", got)
	}
}
