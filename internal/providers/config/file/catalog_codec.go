package file

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/faults"
)

func decodeCatalogFile(path string) (config.ContextCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.ContextCatalog{}, err
	}
	return decodeCatalog(data)
}

func decodeCatalog(data []byte) (config.ContextCatalog, error) {
	var catalog config.ContextCatalog

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return config.ContextCatalog{}, faults.NewTypedError(faults.ValidationError, "invalid context catalog yaml", err)
	}
	return catalog, nil
}

func encodeCatalog(catalog config.ContextCatalog) ([]byte, error) {
	return yaml.Marshal(catalog)
}

func resolveCatalogPath(explicitPath string) (string, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(config.ContextFileEnvVar)
	}
	if path == "" {
		path = config.DefaultContextCatalogPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", faults.NewTypedError(faults.InternalError, "failed to resolve user home directory", err)
	}

	if path == "~" {
		path = homeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~/"))
	}

	cleanPath := filepath.Clean(path)
	if cleanPath == "." {
		return "", faults.NewTypedError(faults.ValidationError, "context catalog path is invalid", errors.New("resolved to current directory"))
	}
	if !filepath.IsAbs(cleanPath) {
		cleanPath = filepath.Join(homeDir, cleanPath)
	}
	return cleanPath, nil
}

func validateConfig(cfg config.Context) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return faults.NewTypedError(faults.ValidationError, "context name must not be empty", nil)
	}

	server := cfg.ResourceServer.HTTP
	if server == nil {
		return faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context %q has no resource server", cfg.Name), nil)
	}
	if strings.TrimSpace(server.BaseURL) == "" {
		return faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context %q has no base-url", cfg.Name), nil)
	}
	parsed, err := url.Parse(server.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context %q has an invalid base-url %q", cfg.Name, server.BaseURL), err)
	}
	if server.CollectionPath == "" || !strings.HasPrefix(server.CollectionPath, "/") {
		return faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context %q collection-path must be absolute", cfg.Name), nil)
	}
	if server.TimeoutSeconds < 0 {
		return faults.NewTypedError(faults.ValidationError, fmt.Sprintf("context %q timeout-seconds must not be negative", cfg.Name), nil)
	}
	return nil
}

func applyOverrides(cfg config.Context, overrides map[string]string) (config.Context, error) {
	if len(overrides) == 0 {
		return cfg, nil
	}

	resolved := cfg
	if cfg.ResourceServer.HTTP != nil {
		serverCopy := *cfg.ResourceServer.HTTP
		resolved.ResourceServer.HTTP = &serverCopy
	}

	for key, value := range overrides {
		switch key {
		case "resource-server.http.base-url":
			if resolved.ResourceServer.HTTP == nil {
				resolved.ResourceServer.HTTP = &config.HTTPServer{}
			}
			resolved.ResourceServer.HTTP.BaseURL = value
		case "resource-server.http.collection-path":
			if resolved.ResourceServer.HTTP == nil {
				resolved.ResourceServer.HTTP = &config.HTTPServer{}
			}
			resolved.ResourceServer.HTTP.CollectionPath = value
		default:
			return config.Context{}, faults.NewTypedError(faults.ValidationError, fmt.Sprintf("unknown override key %q", key), nil)
		}
	}
	return resolved, nil
}
