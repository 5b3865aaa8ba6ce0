// Package file persists the context catalog as a YAML file, by default under
// the user's home directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/faults"
)

var _ config.ContextService = (*FileContextService)(nil)

type FileContextService struct {
	contextCatalogPath string
}

// NewFileContextService reads and writes the catalog at path. An empty path
// falls back to VIEWSTORE_CONTEXTS_FILE and then the default catalog location.
func NewFileContextService(path string) *FileContextService {
	return &FileContextService{contextCatalogPath: path}
}

func (m *FileContextService) Create(_ context.Context, cfg config.Context) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	catalog, err := m.loadCatalog()
	if err != nil {
		return err
	}

	if findContextIndex(catalog.Contexts, cfg.Name) >= 0 {
		return faults.NewTypedError(faults.ConflictError, fmt.Sprintf("context %q already exists", cfg.Name), nil)
	}

	catalog.Contexts = append(catalog.Contexts, cfg)
	if catalog.CurrentCtx == "" {
		catalog.CurrentCtx = cfg.Name
	}
	return m.saveCatalog(catalog)
}

func (m *FileContextService) Delete(_ context.Context, name string) error {
	catalog, err := m.loadCatalog()
	if err != nil {
		return err
	}

	idx := findContextIndex(catalog.Contexts, name)
	if idx < 0 {
		return contextNotFound(name)
	}
	catalog.Contexts = append(catalog.Contexts[:idx], catalog.Contexts[idx+1:]...)

	if catalog.CurrentCtx == name {
		catalog.CurrentCtx = ""
		if len(catalog.Contexts) > 0 {
			catalog.CurrentCtx = catalog.Contexts[0].Name
		}
	}
	return m.saveCatalog(catalog)
}

func (m *FileContextService) SetCurrent(_ context.Context, name string) error {
	catalog, err := m.loadCatalog()
	if err != nil {
		return err
	}

	if findContextIndex(catalog.Contexts, name) < 0 {
		return contextNotFound(name)
	}
	catalog.CurrentCtx = name
	return m.saveCatalog(catalog)
}

func (m *FileContextService) List(_ context.Context) ([]config.Context, error) {
	catalog, err := m.loadCatalog()
	if err != nil {
		return nil, err
	}

	contexts := make([]config.Context, len(catalog.Contexts))
	copy(contexts, catalog.Contexts)
	return contexts, nil
}

func (m *FileContextService) GetCurrent(_ context.Context) (config.Context, error) {
	catalog, err := m.loadCatalog()
	if err != nil {
		return config.Context{}, err
	}
	if catalog.CurrentCtx == "" {
		return config.Context{}, faults.NewTypedError(faults.NotFoundError, "current context not set", nil)
	}

	idx := findContextIndex(catalog.Contexts, catalog.CurrentCtx)
	if idx < 0 {
		return config.Context{}, contextNotFound(catalog.CurrentCtx)
	}
	return catalog.Contexts[idx], nil
}

func (m *FileContextService) ResolveContext(_ context.Context, selection config.ContextSelection) (config.Context, error) {
	catalog, err := m.loadCatalog()
	if err != nil {
		return config.Context{}, err
	}

	effectiveName := selection.Name
	if effectiveName == "" {
		effectiveName = catalog.CurrentCtx
	}
	if effectiveName == "" {
		return config.Context{}, faults.NewTypedError(faults.NotFoundError, "current context not set", nil)
	}

	idx := findContextIndex(catalog.Contexts, effectiveName)
	if idx < 0 {
		return config.Context{}, contextNotFound(effectiveName)
	}

	resolved, err := applyOverrides(catalog.Contexts[idx], selection.Overrides)
	if err != nil {
		return config.Context{}, err
	}
	if err := validateConfig(resolved); err != nil {
		return config.Context{}, err
	}
	return resolved, nil
}

func (m *FileContextService) Validate(_ context.Context, cfg config.Context) error {
	return validateConfig(cfg)
}

func (m *FileContextService) loadCatalog() (config.ContextCatalog, error) {
	resolvedPath, err := resolveCatalogPath(m.contextCatalogPath)
	if err != nil {
		return config.ContextCatalog{}, err
	}

	catalog, err := decodeCatalogFile(resolvedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.ContextCatalog{}, nil
		}
		return config.ContextCatalog{}, err
	}
	return catalog, nil
}

func (m *FileContextService) saveCatalog(catalog config.ContextCatalog) error {
	resolvedPath, err := resolveCatalogPath(m.contextCatalogPath)
	if err != nil {
		return err
	}

	encoded, err := encodeCatalog(catalog)
	if err != nil {
		return faults.NewTypedError(faults.InternalError, "failed to encode context catalog", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolvedPath), 0o755); err != nil {
		return faults.NewTypedError(faults.InternalError, "failed to create context config directory", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(resolvedPath), ".viewstore-contexts-*")
	if err != nil {
		return faults.NewTypedError(faults.InternalError, "failed to create temporary context catalog file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(encoded); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return faults.NewTypedError(faults.InternalError, "failed to write context catalog", err)
	}
	if err := tempFile.Chmod(0o600); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return faults.NewTypedError(faults.InternalError, "failed to set context catalog permissions", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return faults.NewTypedError(faults.InternalError, "failed to close context catalog file", err)
	}

	if err := os.Rename(tempPath, resolvedPath); err != nil {
		_ = os.Remove(tempPath)
		return faults.NewTypedError(faults.InternalError, "failed to replace context catalog", err)
	}
	return nil
}

func findContextIndex(contexts []config.Context, name string) int {
	for idx, candidate := range contexts {
		if candidate.Name == name {
			return idx
		}
	}
	return -1
}

func contextNotFound(name string) error {
	return faults.NewTypedError(faults.NotFoundError, fmt.Sprintf("context %q not found", name), nil)
}
