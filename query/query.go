// Package query evaluates jq expressions over container snapshots, giving
// consuming layers an ad-hoc read surface on top of the projection.
package query

import (
	"context"
	"strings"
	"sync"

	"github.com/itchyny/gojq"

	"github.com/crmarques/viewstore/faults"
	"github.com/crmarques/viewstore/resource"
)

var codeCache sync.Map

// Eval runs a jq expression against a value and returns every produced
// result, in order.
func Eval(ctx context.Context, expression string, value resource.Value) ([]resource.Value, error) {
	trimmed := strings.TrimSpace(expression)
	if trimmed == "" {
		return nil, faults.NewTypedError(faults.ValidationError, "query expression must not be empty", nil)
	}

	code, err := compile(trimmed)
	if err != nil {
		return nil, faults.NewTypedError(faults.ValidationError, "invalid query expression", err)
	}

	iterator := code.RunWithContext(ctx, toQueryValue(value))
	results := make([]resource.Value, 0, 1)
	for {
		result, ok := iterator.Next()
		if !ok {
			break
		}
		if resultErr, isErr := result.(error); isErr {
			return nil, faults.NewTypedError(faults.ValidationError, "failed to evaluate query expression", resultErr)
		}
		results = append(results, result)
	}
	return results, nil
}

// Entries runs a jq expression against a list of materialized entries. The
// expression sees the whole list as its input, so filters are written as
// `.[] | select(...)`.
func Entries(ctx context.Context, expression string, entries []map[string]any) ([]resource.Value, error) {
	input := make([]any, 0, len(entries))
	for _, entry := range entries {
		input = append(input, entry)
	}
	return Eval(ctx, expression, input)
}

// toQueryValue rewrites normalized payload values into the shapes gojq
// accepts as input: int64 counts are not, plain ints are.
func toQueryValue(value any) any {
	switch typed := value.(type) {
	case int64:
		return int(typed)
	case []any:
		converted := make([]any, 0, len(typed))
		for _, item := range typed {
			converted = append(converted, toQueryValue(item))
		}
		return converted
	case map[string]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[key] = toQueryValue(item)
		}
		return converted
	default:
		return typed
	}
}

func compile(expression string) (*gojq.Code, error) {
	if cached, ok := codeCache.Load(expression); ok {
		if code, ok := cached.(*gojq.Code); ok && code != nil {
			return code, nil
		}
	}

	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, err
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, err
	}

	codeCache.Store(expression, code)
	return code, nil
}
