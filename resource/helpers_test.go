package resource

import (
	"reflect"
	"testing"

	"github.com/crmarques/viewstore/faults"
)

func TestFromPayloadExtractsID(t *testing.T) {
	t.Parallel()

	res, err := FromPayload(map[string]any{"id": "42", "name": "alpha", "count": 3})
	if err != nil {
		t.Fatalf("FromPayload returned error: %v", err)
	}
	if res.ID != "42" {
		t.Fatalf("expected id %q, got %q", "42", res.ID)
	}

	payload, ok := res.Payload.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", res.Payload)
	}
	if payload["count"] != int64(3) {
		t.Fatalf("expected normalized int64 count, got %#v", payload["count"])
	}
}

func TestFromPayloadRejectsInvalidShapes(t *testing.T) {
	t.Parallel()

	cases := map[string]any{
		"non-object":    "just a string",
		"missing id":    map[string]any{"name": "alpha"},
		"non-string id": map[string]any{"id": 42},
		"empty id":      map[string]any{"id": ""},
	}
	for name, payload := range cases {
		if _, err := FromPayload(payload); !faults.IsCategory(err, faults.ValidationError) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestFromPayloadList(t *testing.T) {
	t.Parallel()

	resources, err := FromPayloadList([]Value{
		map[string]any{"id": "a"},
		map[string]any{"id": "b"},
	})
	if err != nil {
		t.Fatalf("FromPayloadList returned error: %v", err)
	}
	if len(resources) != 2 || resources[0].ID != "a" || resources[1].ID != "b" {
		t.Fatalf("unexpected resources %#v", resources)
	}

	if _, err := FromPayloadList([]Value{map[string]any{"name": "no id"}}); err == nil {
		t.Fatal("expected error for payload without id")
	}
}

func TestPayloadMapForGhostResource(t *testing.T) {
	t.Parallel()

	ghost := Resource{ID: "9"}
	if got := ghost.PayloadMap(); !reflect.DeepEqual(got, map[string]any{"id": "9"}) {
		t.Fatalf("expected id-only map for ghost resource, got %#v", got)
	}
}

func TestPayloadMapCopies(t *testing.T) {
	t.Parallel()

	original := map[string]any{"id": "1", "name": "alpha"}
	res := Resource{ID: "1", Payload: original}

	copied := res.PayloadMap()
	copied["name"] = "mutated"
	if original["name"] != "alpha" {
		t.Fatal("PayloadMap must not alias the stored payload")
	}
}
