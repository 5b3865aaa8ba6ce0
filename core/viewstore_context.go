// Package core wires providers into ready-to-use viewstore contexts. It is the
// only package outside internal/providers allowed to import provider
// implementations.
package core

import (
	"context"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/faults"
	configfile "github.com/crmarques/viewstore/internal/providers/config/file"
	remotehttp "github.com/crmarques/viewstore/internal/providers/remote/http"
	"github.com/crmarques/viewstore/metrics"
)

func NewContextService(opts BootstrapConfig) config.ContextService {
	return configfile.NewFileContextService(opts.ContextCatalogPath)
}

// NewViewstoreContext resolves the selected context from the catalog and wires
// a container plus the HTTP gateway its verbs will be fed from.
func NewViewstoreContext(ctx context.Context, opts BootstrapConfig, selection config.ContextSelection) (ViewstoreContext, error) {
	contextService := NewContextService(opts)

	resolvedContext, err := contextService.ResolveContext(ctx, selection)
	if err != nil {
		return ViewstoreContext{}, err
	}
	if resolvedContext.ResourceServer.HTTP == nil {
		return ViewstoreContext{}, faults.NewTypedError(faults.InternalError, "resource server provider is invalid", nil)
	}

	gateway, err := remotehttp.NewHTTPResourceGateway(
		*resolvedContext.ResourceServer.HTTP,
		remotehttp.WithLogger(opts.Logger),
	)
	if err != nil {
		return ViewstoreContext{}, err
	}

	stateContainer := container.New()
	stateContainer.Logger = opts.Logger
	stateContainer.Tracer = opts.Tracer
	if opts.MetricsRegisterer != nil {
		observer, err := metrics.NewPrometheusObserver(opts.MetricsRegisterer)
		if err != nil {
			return ViewstoreContext{}, err
		}
		stateContainer.Observer = observer
	}

	return ViewstoreContext{
		Contexts:  contextService,
		Container: stateContainer,
		Remote:    gateway,
	}, nil
}
