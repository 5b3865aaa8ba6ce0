// Package yamlutil wraps the yaml encoder with the two-space indentation the
// CLI renders everywhere.
package yamlutil

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

func MarshalWithIndent(value any, indent int) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)
	if err := encoder.Encode(value); err != nil {
		_ = encoder.Close()
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
