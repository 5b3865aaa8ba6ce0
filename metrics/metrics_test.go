package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/future"
	"github.com/crmarques/viewstore/resource"
	"github.com/crmarques/viewstore/state"
)

func TestObserverCountsOutcomes(t *testing.T) {
	t.Parallel()

	observer, err := NewPrometheusObserver(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewPrometheusObserver returned error: %v", err)
	}

	observer.VerbStarted(state.ActionGet, "1")
	if got := testutil.ToFloat64(observer.inFlight.WithLabelValues("get")); got != 1 {
		t.Fatalf("expected 1 verb in flight, got %v", got)
	}

	observer.VerbResolved(state.ActionGet, "1", 10*time.Millisecond)
	if got := testutil.ToFloat64(observer.inFlight.WithLabelValues("get")); got != 0 {
		t.Fatalf("expected 0 verbs in flight after settlement, got %v", got)
	}
	if got := testutil.ToFloat64(observer.outcomes.WithLabelValues("get", "resolved")); got != 1 {
		t.Fatalf("expected 1 resolved outcome, got %v", got)
	}

	observer.VerbStarted(state.ActionCreate, "")
	observer.VerbRejected(state.ActionCreate, "", "invalid", time.Millisecond)
	if got := testutil.ToFloat64(observer.outcomes.WithLabelValues("create", "rejected")); got != 1 {
		t.Fatalf("expected 1 rejected outcome, got %v", got)
	}
}

func TestObserverDuplicateRegistrationFails(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	if _, err := NewPrometheusObserver(registry); err != nil {
		t.Fatalf("first registration returned error: %v", err)
	}
	if _, err := NewPrometheusObserver(registry); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestObserverWiredIntoContainer(t *testing.T) {
	t.Parallel()

	observer, err := NewPrometheusObserver(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewPrometheusObserver returned error: %v", err)
	}

	c := &container.Container{Observer: observer}
	res := resource.Resource{ID: "1", Payload: map[string]any{"id": "1"}}
	if _, err := c.Get(context.Background(), "1", future.Resolved(res)); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	if got := testutil.ToFloat64(observer.outcomes.WithLabelValues("get", "resolved")); got != 1 {
		t.Fatalf("expected container verb to reach the collectors, got %v", got)
	}
}
