package core

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/remote"
)

// ViewstoreContext bundles the wired collaborators one consuming scope works
// with: the context catalog, the state container, and the remote gateway the
// verbs are fed from.
type ViewstoreContext struct {
	Contexts  config.ContextService
	Container *container.Container
	Remote    remote.Gateway
}

type BootstrapConfig struct {
	ContextCatalogPath string

	// Logger is propagated to the container and the remote gateway. The zero
	// value discards.
	Logger logr.Logger
	// MetricsRegisterer, when set, registers verb metrics and attaches the
	// resulting observer to the container.
	MetricsRegisterer prometheus.Registerer
	// Tracer, when set, opens one span per container verb.
	Tracer trace.Tracer
}
