// Package remote defines the collaborator that initiates the asynchronous
// operations a container observes. Gateways start the I/O and hand back
// futures; the container itself never constructs a request.
package remote

import (
	"context"

	"github.com/crmarques/viewstore/future"
	"github.com/crmarques/viewstore/resource"
)

type Gateway interface {
	// FetchResource starts a fetch of one resource by id.
	FetchResource(ctx context.Context, id string) *future.Future[resource.Resource]
	// FetchCollection starts a fetch of the whole collection.
	FetchCollection(ctx context.Context) *future.Future[[]resource.Resource]
	// CreateResource starts the creation of a resource from a payload.
	CreateResource(ctx context.Context, payload resource.Value) *future.Future[resource.Resource]
	// UpdateResource starts an update of the resource with id.
	UpdateResource(ctx context.Context, id string, payload resource.Value) *future.Future[resource.Resource]
	// DeleteResource starts the removal of the resource with id. The settled
	// value is whatever the server answered; containers discard it.
	DeleteResource(ctx context.Context, id string) *future.Future[resource.Value]
}
