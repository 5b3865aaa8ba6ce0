// Package http implements the remote gateway against a JSON REST server: one
// collection path, ids addressed as sub-paths of it.
package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/future"
	"github.com/crmarques/viewstore/remote"
	"github.com/crmarques/viewstore/resource"
)

const defaultHTTPTimeout = 30 * time.Second

var _ remote.Gateway = (*HTTPResourceGateway)(nil)

type HTTPResourceGateway struct {
	baseURL        *url.URL
	collectionPath string
	defaultHeaders map[string]string
	client         *http.Client
	logger         logr.Logger
}

type GatewayOption func(*HTTPResourceGateway)

func WithLogger(logger logr.Logger) GatewayOption {
	return func(g *HTTPResourceGateway) {
		if g == nil {
			return
		}
		g.logger = logger
	}
}

func WithHTTPClient(client *http.Client) GatewayOption {
	return func(g *HTTPResourceGateway) {
		if g == nil || client == nil {
			return
		}
		g.client = client
	}
}

func NewHTTPResourceGateway(cfg config.HTTPServer, opts ...GatewayOption) (*HTTPResourceGateway, error) {
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.CollectionPath == "" || !strings.HasPrefix(cfg.CollectionPath, "/") {
		return nil, validationError("collection path must be absolute", nil)
	}

	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	gateway := &HTTPResourceGateway{
		baseURL:        baseURL,
		collectionPath: strings.TrimRight(cfg.CollectionPath, "/"),
		defaultHeaders: cfg.Headers,
		client:         &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(gateway)
	}
	return gateway, nil
}

func (g *HTTPResourceGateway) FetchResource(ctx context.Context, id string) *future.Future[resource.Resource] {
	return future.Go(func() (resource.Resource, error) {
		value, err := g.execute(ctx, http.MethodGet, g.itemPath(id), nil)
		if err != nil {
			return resource.Resource{}, err
		}
		return resource.FromPayload(value)
	})
}

func (g *HTTPResourceGateway) FetchCollection(ctx context.Context) *future.Future[[]resource.Resource] {
	return future.Go(func() ([]resource.Resource, error) {
		value, err := g.execute(ctx, http.MethodGet, g.collectionPath, nil)
		if err != nil {
			return nil, err
		}

		items, ok := value.([]any)
		if !ok {
			return nil, validationError("collection response is not a JSON array", nil)
		}
		return resource.FromPayloadList(items)
	})
}

func (g *HTTPResourceGateway) CreateResource(ctx context.Context, payload resource.Value) *future.Future[resource.Resource] {
	return future.Go(func() (resource.Resource, error) {
		value, err := g.execute(ctx, http.MethodPost, g.collectionPath, payload)
		if err != nil {
			return resource.Resource{}, err
		}
		if value == nil {
			// Some servers answer 201 with an empty body; fall back to the
			// payload we sent.
			value = payload
		}
		return resource.FromPayload(value)
	})
}

func (g *HTTPResourceGateway) UpdateResource(ctx context.Context, id string, payload resource.Value) *future.Future[resource.Resource] {
	return future.Go(func() (resource.Resource, error) {
		value, err := g.execute(ctx, http.MethodPut, g.itemPath(id), payload)
		if err != nil {
			return resource.Resource{}, err
		}
		if value == nil {
			value = payload
		}
		return resource.FromPayload(value)
	})
}

func (g *HTTPResourceGateway) DeleteResource(ctx context.Context, id string) *future.Future[resource.Value] {
	return future.Go(func() (resource.Value, error) {
		return g.execute(ctx, http.MethodDelete, g.itemPath(id), nil)
	})
}

func (g *HTTPResourceGateway) itemPath(id string) string {
	return g.collectionPath + "/" + url.PathEscape(id)
}

func parseBaseURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, validationError("invalid base url", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, validationError("base url must include scheme and host", nil)
	}
	return parsed, nil
}
