package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/faults"
)

func newTestGateway(t *testing.T, handler http.Handler) *HTTPResourceGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := NewHTTPResourceGateway(config.HTTPServer{
		BaseURL:        server.URL,
		CollectionPath: "/widgets",
		Headers:        map[string]string{"X-Api-Key": "secret"},
	})
	if err != nil {
		t.Fatalf("NewHTTPResourceGateway returned error: %v", err)
	}
	return gateway
}

func TestFetchResourceDecodesAndNormalizes(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/widgets/w1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			t.Errorf("default header not injected")
		}
		_, _ = w.Write([]byte(`{"id":"w1","count":3}`))
	}))

	res, err := gateway.FetchResource(context.Background(), "w1").Await(context.Background())
	if err != nil {
		t.Fatalf("FetchResource returned error: %v", err)
	}
	if res.ID != "w1" {
		t.Fatalf("expected id %q, got %q", "w1", res.ID)
	}
	payload, ok := res.Payload.(map[string]any)
	if !ok {
		t.Fatalf("expected map payload, got %T", res.Payload)
	}
	if payload["count"] != int64(3) {
		t.Fatalf("expected normalized int64 count, got %T %v", payload["count"], payload["count"])
	}
}

func TestFetchCollectionRejectsNonArrayResponse(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"w1"}`))
	}))

	_, err := gateway.FetchCollection(context.Background()).Await(context.Background())
	if !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateResourceSendsNormalizedJSON(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/widgets" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("missing JSON content type")
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	}))

	res, err := gateway.CreateResource(context.Background(), map[string]any{"id": "w2", "name": "gear"}).Await(context.Background())
	if err != nil {
		t.Fatalf("CreateResource returned error: %v", err)
	}
	if res.ID != "w2" {
		t.Fatalf("expected id %q, got %q", "w2", res.ID)
	}
}

func TestCreateResourceFallsBackToSentPayloadOnEmptyBody(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	res, err := gateway.CreateResource(context.Background(), map[string]any{"id": "w3"}).Await(context.Background())
	if err != nil {
		t.Fatalf("CreateResource returned error: %v", err)
	}
	if res.ID != "w3" {
		t.Fatalf("expected id %q, got %q", "w3", res.ID)
	}
}

func TestStatusCodesMapToFaultCategories(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status   int
		category faults.ErrorCategory
	}{
		{http.StatusBadRequest, faults.ValidationError},
		{http.StatusNotFound, faults.NotFoundError},
		{http.StatusConflict, faults.ConflictError},
		{http.StatusBadGateway, faults.TransportError},
	}

	for _, tc := range cases {
		gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))

		_, err := gateway.FetchResource(context.Background(), "w1").Await(context.Background())
		if !faults.IsCategory(err, tc.category) {
			t.Fatalf("status %d: expected category %v, got %v", tc.status, tc.category, err)
		}
	}
}

func TestDeleteResourceReturnsServerAnswer(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/widgets/w1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	value, err := gateway.DeleteResource(context.Background(), "w1").Await(context.Background())
	if err != nil {
		t.Fatalf("DeleteResource returned error: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil value for empty body, got %#v", value)
	}
}

func TestUpdateResourceEscapesID(t *testing.T) {
	t.Parallel()

	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/widgets/a%2Fb" {
			t.Errorf("id not escaped: %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"id":"a/b"}`))
	}))

	res, err := gateway.UpdateResource(context.Background(), "a/b", map[string]any{"id": "a/b"}).Await(context.Background())
	if err != nil {
		t.Fatalf("UpdateResource returned error: %v", err)
	}
	if res.ID != "a/b" {
		t.Fatalf("expected id %q, got %q", "a/b", res.ID)
	}
}

func TestNewGatewayValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPResourceGateway(config.HTTPServer{BaseURL: "not a url", CollectionPath: "/widgets"}); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for base url, got %v", err)
	}
	if _, err := NewHTTPResourceGateway(config.HTTPServer{BaseURL: "http://localhost", CollectionPath: "widgets"}); !faults.IsCategory(err, faults.ValidationError) {
		t.Fatalf("expected validation error for relative collection path, got %v", err)
	}
}
