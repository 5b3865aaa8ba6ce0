package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/crmarques/viewstore/debugctx"
	"github.com/crmarques/viewstore/resource"
)

// execute performs one round-trip and returns the normalized response payload.
func (g *HTTPResourceGateway) execute(ctx context.Context, method, path string, body resource.Value) (resource.Value, error) {
	encoded, err := encodeRequestBody(body)
	if err != nil {
		return nil, err
	}

	requestURL := g.baseURL.JoinPath(path).String()
	debugctx.Printf(ctx, "%s %s", method, requestURL)

	var bodyReader io.Reader
	if encoded != nil {
		bodyReader = bytes.NewReader(encoded)
	}
	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, validationError("failed to build request", err)
	}
	if encoded != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	for name, value := range g.defaultHeaders {
		request.Header.Set(name, value)
	}

	response, err := g.client.Do(request)
	if err != nil {
		return nil, transportError(fmt.Sprintf("request to %s failed", requestURL), err)
	}
	defer func() { _ = response.Body.Close() }()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, transportError("failed to read response body", err)
	}
	debugctx.Printf(ctx, "%s %s -> %d (%d bytes)", method, requestURL, response.StatusCode, len(responseBody))

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		g.logger.V(1).Info("remote request rejected",
			"method", method, "url", requestURL, "status", response.StatusCode)
		return nil, classifyStatusError(response.StatusCode, responseBody)
	}
	return decodeJSONResponse(responseBody)
}

func encodeRequestBody(body resource.Value) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	normalized, err := resource.Normalize(body)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(normalized)
	if err != nil {
		return nil, validationError("failed to encode JSON request body", err)
	}
	return encoded, nil
}

func decodeJSONResponse(body []byte) (resource.Value, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, validationError("response body is not valid JSON", err)
	}
	return resource.Normalize(value)
}

func classifyStatusError(statusCode int, body []byte) error {
	message := fmt.Sprintf("remote request failed with status %d: %s", statusCode, summarizeBody(body))

	switch statusCode {
	case http.StatusNotFound:
		return notFoundError(message, nil)
	case http.StatusConflict:
		return conflictError(message, nil)
	}

	if statusCode >= 400 && statusCode < 500 {
		return validationError(message, nil)
	}
	return transportError(message, nil)
}

func summarizeBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "<empty>"
	}
	if len(trimmed) > 512 {
		return trimmed[:512] + "..."
	}
	return trimmed
}
