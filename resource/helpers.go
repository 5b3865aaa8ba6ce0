package resource

import (
	"fmt"

	"github.com/crmarques/viewstore/faults"
)

const IDField = "id"

// FromPayload builds a Resource from a raw payload, extracting the required
// id field. The payload is normalized before the id is read so that ids
// decoded from JSON and YAML compare equal.
func FromPayload(value Value) (Resource, error) {
	normalized, err := Normalize(value)
	if err != nil {
		return Resource{}, err
	}

	payload, ok := normalized.(map[string]any)
	if !ok {
		return Resource{}, faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("resource payload must be an object, got %T", value),
			nil,
		)
	}

	rawID, exists := payload[IDField]
	if !exists {
		return Resource{}, faults.NewTypedError(faults.ValidationError, "resource payload has no id field", nil)
	}
	id, ok := rawID.(string)
	if !ok || id == "" {
		return Resource{}, faults.NewTypedError(
			faults.ValidationError,
			fmt.Sprintf("resource payload id must be a non-empty string, got %#v", rawID),
			nil,
		)
	}

	return Resource{ID: id, Payload: payload}, nil
}

// FromPayloadList builds resources from a decoded collection, preserving the
// incoming order.
func FromPayloadList(values []Value) ([]Resource, error) {
	resources := make([]Resource, 0, len(values))
	for _, value := range values {
		converted, err := FromPayload(value)
		if err != nil {
			return nil, err
		}
		resources = append(resources, converted)
	}
	return resources, nil
}

// PayloadMap returns the resource payload as a string-keyed map when it has
// one, or an id-only map for ghost entries that never loaded a payload.
func (r Resource) PayloadMap() map[string]any {
	if payload, ok := r.Payload.(map[string]any); ok {
		return CloneMapStringAny(payload)
	}
	return map[string]any{IDField: r.ID}
}

func CloneMapStringAny(src map[string]any) map[string]any {
	if src == nil {
		return map[string]any{}
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
