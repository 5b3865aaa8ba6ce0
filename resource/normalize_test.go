package resource

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/crmarques/viewstore/faults"
)

func TestNormalizeCanonicalizesNumbers(t *testing.T) {
	t.Parallel()

	normalized, err := Normalize(map[string]any{
		"int":    7,
		"int32":  int32(7),
		"uint64": uint64(7),
		"number": json.Number("7"),
		"float":  json.Number("7.5"),
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	expected := map[string]any{
		"int":    int64(7),
		"int32":  int64(7),
		"uint64": int64(7),
		"number": int64(7),
		"float":  7.5,
	}
	if !reflect.DeepEqual(normalized, expected) {
		t.Fatalf("unexpected normalization:\n%#v", normalized)
	}
}

func TestNormalizeYAMLStyleMaps(t *testing.T) {
	t.Parallel()

	normalized, err := Normalize(map[any]any{"id": "1", "nested": map[any]any{"k": 1}})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	expected := map[string]any{"id": "1", "nested": map[string]any{"k": int64(1)}}
	if !reflect.DeepEqual(normalized, expected) {
		t.Fatalf("unexpected normalization:\n%#v", normalized)
	}

	if _, err := Normalize(map[any]any{42: "non-string key"}); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for non-string key, got %v", err)
	}
}

func TestNormalizeRejectsNonFiniteFloats(t *testing.T) {
	t.Parallel()

	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Normalize(map[string]any{"v": value}); !faults.IsCategory(err, faults.ValidationError) {
			t.Fatalf("expected validation error for %v, got %v", value, err)
		}
	}
}

func TestNormalizeStructsThroughJSON(t *testing.T) {
	t.Parallel()

	type widget struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	normalized, err := Normalize(widget{ID: "1", Count: 3})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	expected := map[string]any{"id": "1", "count": int64(3)}
	if !reflect.DeepEqual(normalized, expected) {
		t.Fatalf("unexpected normalization:\n%#v", normalized)
	}

	if _, err := Normalize(func() {}); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for non-encodable value, got %v", err)
	}
}
