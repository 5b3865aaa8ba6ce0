// Package container implements the client-side state container: it owns one
// state.State, folds lifecycle events into it through state.Reduce, and wraps
// caller-supplied futures so that every asynchronous verb emits its started
// event synchronously and its settlement event exactly once.
package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/crmarques/viewstore/faults"
	"github.com/crmarques/viewstore/future"
	"github.com/crmarques/viewstore/resource"
	"github.com/crmarques/viewstore/state"
)

// Container tracks the lifecycle of a collection of remotely sourced
// resources. It never initiates I/O: callers hand each verb a future
// representing an operation they already started, and the container records
// the pending/settled transitions and re-raises failures.
//
// The zero value is ready to use. One container is meant to be owned by one
// consuming scope (a screen, a session) and discarded with it.
type Container struct {
	// Logger receives verb lifecycle logs. The zero logr.Logger discards.
	Logger logr.Logger
	// Observer receives verb outcome hooks; nil disables them.
	Observer Observer
	// Tracer opens one span per verb invocation; nil disables tracing.
	Tracer trace.Tracer

	mu    sync.RWMutex
	state state.State

	subsMu  sync.Mutex
	subs    map[uint64]chan Snapshot
	nextSub uint64
}

func New() *Container {
	return &Container{}
}

// Get observes a fetch of one resource. The started event is applied before
// the future is awaited, so a snapshot taken immediately after the call began
// already reports the pending get.
func (c *Container) Get(ctx context.Context, id string, fut *future.Future[resource.Resource]) (resource.Resource, error) {
	ctx, finish := c.beginVerb(ctx, state.ActionGet, id)
	c.apply(state.GetStarted{ID: id})

	res, err := settleVerb(ctx, c, fut,
		func(res resource.Resource) state.Event { return state.GetResolved{Resource: res} },
		func(message string) state.Event { return state.GetRejected{ID: id, Message: message} },
	)
	finish(err)
	return res, err
}

// List observes a fetch of the whole collection.
func (c *Container) List(ctx context.Context, fut *future.Future[[]resource.Resource]) ([]resource.Resource, error) {
	ctx, finish := c.beginVerb(ctx, state.ActionList, "")
	c.apply(state.ListStarted{})

	resources, err := settleVerb(ctx, c, fut,
		func(resources []resource.Resource) state.Event { return state.ListResolved{Resources: resources} },
		func(message string) state.Event { return state.ListRejected{Message: message} },
	)
	finish(err)
	return resources, err
}

// Update observes an update of one resource.
func (c *Container) Update(ctx context.Context, id string, fut *future.Future[resource.Resource]) (resource.Resource, error) {
	ctx, finish := c.beginVerb(ctx, state.ActionUpdate, id)
	c.apply(state.UpdateStarted{ID: id})

	res, err := settleVerb(ctx, c, fut,
		func(res resource.Resource) state.Event { return state.UpdateResolved{Resource: res} },
		func(message string) state.Event { return state.UpdateRejected{ID: id, Message: message} },
	)
	finish(err)
	return res, err
}

// Create observes the creation of a resource. The settled resource's id comes
// from the future's value, so no id is known while the create is pending.
func (c *Container) Create(ctx context.Context, fut *future.Future[resource.Resource]) (resource.Resource, error) {
	ctx, finish := c.beginVerb(ctx, state.ActionCreate, "")
	c.apply(state.CreateStarted{})

	res, err := settleVerb(ctx, c, fut,
		func(res resource.Resource) state.Event { return state.CreateResolved{Resource: res} },
		func(message string) state.Event { return state.CreateRejected{Message: message} },
	)
	finish(err)
	return res, err
}

// Remove observes the removal of one resource. Whatever the future resolves
// with is discarded; on success the verb resolves with the removed id.
func (c *Container) Remove(ctx context.Context, id string, fut *future.Future[resource.Value]) (string, error) {
	ctx, finish := c.beginVerb(ctx, state.ActionRemove, id)
	c.apply(state.RemoveStarted{ID: id})

	_, err := settleVerb(ctx, c, fut,
		func(resource.Value) state.Event { return state.RemoveResolved{ID: id} },
		func(message string) state.Event { return state.RemoveRejected{ID: id, Message: message} },
	)
	finish(err)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Select points the selection at id, synchronously. The id is not validated:
// selection is a bare pointer the projection resolves lazily.
func (c *Container) Select(id string) {
	c.Logger.V(1).Info("select", "id", id)
	c.apply(state.Selected{ID: id})
}

// settleVerb awaits the future and applies exactly one settlement event.
// Context cancellation abandons the wait for the caller, but the settlement
// is still applied when the future eventually settles: abandoning interest in
// a result does not stop it from mutating container state.
func settleVerb[T any](
	ctx context.Context,
	c *Container,
	fut *future.Future[T],
	resolved func(T) state.Event,
	rejected func(string) state.Event,
) (T, error) {
	select {
	case <-fut.Done():
	case <-ctx.Done():
		go func() {
			<-fut.Done()
			applySettlement(c, fut, resolved, rejected)
		}()
		var zero T
		return zero, ctx.Err()
	}

	value, err := applySettlement(c, fut, resolved, rejected)
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func applySettlement[T any](
	c *Container,
	fut *future.Future[T],
	resolved func(T) state.Event,
	rejected func(string) state.Event,
) (T, error) {
	value, err := fut.Result()
	if err != nil {
		message := faults.BareMessage(err)
		c.apply(rejected(message))
		var zero T
		return zero, faults.NewOperationError(message)
	}

	c.apply(resolved(value))
	return value, nil
}

func (c *Container) apply(ev state.Event) {
	c.mu.Lock()
	c.state = state.Reduce(c.state, ev)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(snap)
}

func (c *Container) beginVerb(ctx context.Context, verb state.Action, id string) (context.Context, func(error)) {
	opID := uuid.NewString()
	startedAt := time.Now()

	logger := c.Logger.WithValues("verb", string(verb), "op", opID)
	if id != "" {
		logger = logger.WithValues("id", id)
	}
	logger.V(1).Info("verb started")

	tracer := c.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	ctx, span := tracer.Start(ctx, "viewstore."+string(verb), trace.WithAttributes(
		attribute.String("viewstore.op_id", opID),
		attribute.String("viewstore.resource_id", id),
	))

	if c.Observer != nil {
		c.Observer.VerbStarted(verb, id)
	}

	return ctx, func(err error) {
		elapsed := time.Since(startedAt)
		if err != nil {
			logger.V(1).Info("verb rejected", "error", err.Error(), "elapsed", elapsed)
			span.RecordError(err)
			span.SetStatus(codes.Error, faults.BareMessage(err))
			if c.Observer != nil {
				c.Observer.VerbRejected(verb, id, faults.BareMessage(err), elapsed)
			}
		} else {
			logger.V(1).Info("verb resolved", "elapsed", elapsed)
			span.SetStatus(codes.Ok, "")
			if c.Observer != nil {
				c.Observer.VerbResolved(verb, id, elapsed)
			}
		}
		span.End()
	}
}
