package resource

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/crmarques/viewstore/faults"
)

// Normalize rewrites a payload into the canonical in-memory shape used by the
// container: string-keyed maps, []any slices, int64/float64 numbers. Payloads
// arrive from JSON and YAML decoders that disagree on these details; entries
// must compare equal regardless of the transport they were decoded from.
func Normalize(value Value) (Value, error) {
	return normalizeValue(value)
}

func normalizeValue(value any) (any, error) {
	switch typed := value.(type) {
	case nil, bool, string:
		return typed, nil
	case int:
		return int64(typed), nil
	case int32:
		return int64(typed), nil
	case int64:
		return typed, nil
	case uint64:
		if typed > math.MaxInt64 {
			return nil, faults.NewTypedError(faults.ValidationError, "payload contains integer out of range", nil)
		}
		return int64(typed), nil
	case float32:
		return normalizeFloat(float64(typed))
	case float64:
		return normalizeFloat(typed)
	case json.Number:
		if asInt, err := typed.Int64(); err == nil {
			return asInt, nil
		}
		asFloat, err := typed.Float64()
		if err != nil {
			return nil, faults.NewTypedError(faults.ValidationError, "payload contains invalid number", err)
		}
		return normalizeFloat(asFloat)
	case []any:
		return normalizeSlice(typed)
	case map[string]any:
		return normalizeStringMap(typed)
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			keyString, ok := key.(string)
			if !ok {
				return nil, faults.NewTypedError(faults.ValidationError, "payload contains non-string map key", nil)
			}
			converted[keyString] = item
		}
		return normalizeStringMap(converted)
	}

	return normalizeThroughJSON(value)
}

func normalizeFloat(value float64) (any, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, faults.NewTypedError(faults.ValidationError, "payload contains non-finite float", nil)
	}
	return value, nil
}

func normalizeSlice(values []any) (any, error) {
	normalized := make([]any, 0, len(values))
	for _, item := range values {
		converted, err := normalizeValue(item)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, converted)
	}
	return normalized, nil
}

func normalizeStringMap(values map[string]any) (any, error) {
	normalized := make(map[string]any, len(values))
	for key, item := range values {
		converted, err := normalizeValue(item)
		if err != nil {
			return nil, err
		}
		normalized[key] = converted
	}
	return normalized, nil
}

// normalizeThroughJSON handles caller-defined structs by round-tripping them
// through their JSON encoding.
func normalizeThroughJSON(value any) (any, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, faults.NewTypedError(faults.ValidationError, "payload is not JSON-encodable", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, faults.NewTypedError(faults.InternalError, "payload round-trip decode failed", err)
	}
	return normalizeValue(decoded)
}
