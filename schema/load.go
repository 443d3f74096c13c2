package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBytes parses a schema document. YAML and JSON are both accepted; JSON
// is a subset of the YAML grammar the decoder understands.
func LoadBytes(b []byte) (*Schema, error) {
	var types map[string]TypeDef
	if err := yaml.Unmarshal(b, &types); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if types == nil {
		types = map[string]TypeDef{}
	}
	return &Schema{Types: types}, nil
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (*Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(b)
}
