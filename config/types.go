package config

type ContextSelection struct {
	Name      string
	Overrides map[string]string
}

const (
	ContextFileEnvVar         = "VIEWSTORE_CONTEXTS_FILE"
	DefaultContextCatalogPath = "~/.viewstore/contexts.yaml"
)

type ContextCatalog struct {
	Contexts   []Context `yaml:"contexts"`
	CurrentCtx string    `yaml:"current-ctx"`
}

// Context names one resource server a container can be pointed at.
type Context struct {
	Name           string            `yaml:"name"`
	ResourceServer ResourceServer    `yaml:"resource-server"`
	Preferences    map[string]string `yaml:"preferences,omitempty"`
}

type ResourceServer struct {
	HTTP *HTTPServer `yaml:"http,omitempty"`
}

type HTTPServer struct {
	BaseURL        string            `yaml:"base-url"`
	CollectionPath string            `yaml:"collection-path"`
	Headers        map[string]string `yaml:"headers,omitempty"`
	TimeoutSeconds int               `yaml:"timeout-seconds,omitempty"`
}
