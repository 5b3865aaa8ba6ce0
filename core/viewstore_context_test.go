package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/faults"
)

func TestNewViewstoreContextWiresContainerAndGateway(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"w1","name":"gear"}`))
	}))
	t.Cleanup(server.Close)

	opts := BootstrapConfig{
		ContextCatalogPath: filepath.Join(t.TempDir(), "contexts.yaml"),
		MetricsRegisterer:  prometheus.NewRegistry(),
	}

	err := NewContextService(opts).Create(context.Background(), config.Context{
		Name: "local",
		ResourceServer: config.ResourceServer{
			HTTP: &config.HTTPServer{
				BaseURL:        server.URL,
				CollectionPath: "/widgets",
			},
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	viewstoreContext, err := NewViewstoreContext(context.Background(), opts, config.ContextSelection{})
	if err != nil {
		t.Fatalf("NewViewstoreContext returned error: %v", err)
	}

	res, err := viewstoreContext.Container.Get(context.Background(), "w1",
		viewstoreContext.Remote.FetchResource(context.Background(), "w1"))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if res.ID != "w1" {
		t.Fatalf("expected id %q, got %q", "w1", res.ID)
	}

	snapshot := viewstoreContext.Container.Snapshot()
	if len(snapshot.List) != 1 || snapshot.List[0].ID() != "w1" {
		t.Fatalf("unexpected snapshot %#v", snapshot)
	}
}

func TestNewViewstoreContextRequiresResolvableContext(t *testing.T) {
	t.Parallel()

	opts := BootstrapConfig{ContextCatalogPath: filepath.Join(t.TempDir(), "contexts.yaml")}

	_, err := NewViewstoreContext(context.Background(), opts, config.ContextSelection{})
	if !faults.IsCategory(err, faults.NotFoundError) {
		t.Fatalf("expected not-found error for empty catalog, got %v", err)
	}
}
