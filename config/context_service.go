package config

import "context"

type ContextCatalogWriter interface {
	Create(ctx context.Context, cfg Context) error
	Delete(ctx context.Context, name string) error
	SetCurrent(ctx context.Context, name string) error
}

type ContextCatalogReader interface {
	List(ctx context.Context) ([]Context, error)
	GetCurrent(ctx context.Context) (Context, error)
}

type ContextResolver interface {
	ResolveContext(ctx context.Context, selection ContextSelection) (Context, error)
}

type ContextValidator interface {
	Validate(ctx context.Context, cfg Context) error
}

type ContextService interface {
	ContextCatalogWriter
	ContextCatalogReader
	ContextResolver
	ContextValidator
}
