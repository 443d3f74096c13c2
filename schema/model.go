// Package schema holds the in-memory representation of a declarative
// vocabulary schema document: types, inheritance relations and property
// cardinality rules. It also resolves each type's effective property set and
// subtype closure; the binding engine consumes only the resolved views.
package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PropertyKind governs a property's cardinality on the wire.
type PropertyKind int

const (
	// Normal is a 0..N ordered sequence with list semantics on duplicate keys.
	Normal PropertyKind = iota
	// Functional is optional-single; a duplicate key is fatal.
	Functional
	// Required never defaults and its absence is fatal.
	Required
)

func (k PropertyKind) String() string {
	switch k {
	case Required:
		return "Required"
	case Functional:
		return "Functional"
	default:
		return "Normal"
	}
}

// UnmarshalYAML accepts the kind names as written in schema documents.
func (k *PropertyKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "Required", "required":
		*k = Required
	case "Functional", "functional":
		*k = Functional
	case "Normal", "normal", "":
		*k = Normal
	default:
		return fmt.Errorf("schema: unknown property kind %q", s)
	}
	return nil
}

// PropertyDef describes one property. A non-empty ContainerTag marks the
// language-container shape: the property splits into a language-neutral
// default key and a second wire key carrying a language-code-keyed map.
type PropertyDef struct {
	Tag          string       `yaml:"tag"`
	Type         string       `yaml:"type"`
	ContainerTag string       `yaml:"container_tag"`
	Aka          []string     `yaml:"aka"`
	ContainerAka []string     `yaml:"container_aka"`
	URI          string       `yaml:"uri"`
	Doc          string       `yaml:"doc"`
	Kind         PropertyKind `yaml:"kind"`
}

// IsLangContainer reports whether the property carries a language map key.
func (p PropertyDef) IsLangContainer() bool { return p.ContainerTag != "" }

// WireTag returns the canonical wire key: the explicit tag when set, the
// property name otherwise.
func (p PropertyDef) WireTag(name string) string {
	if p.Tag != "" {
		return p.Tag
	}
	return name
}

// PreferredName is a per-type override of a property's canonical wire tag.
// Container is set only for language-container overrides.
type PreferredName struct {
	Default   string
	Container string
}

// UnmarshalYAML accepts either a bare string (simple override) or a
// {default, container} mapping (language-container override).
func (p *PreferredName) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&p.Default)
	}
	var aux struct {
		Default   string `yaml:"default"`
		Container string `yaml:"container"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	if aux.Default == "" || aux.Container == "" {
		return fmt.Errorf("schema: preferred name override needs default and container")
	}
	p.Default = aux.Default
	p.Container = aux.Container
	return nil
}

// PropertyMap is a name-keyed property collection that remembers declaration
// order; effective property sets must be ordered by first insertion.
type PropertyMap struct {
	names []string
	defs  map[string]PropertyDef
}

// UnmarshalYAML decodes a mapping node pairwise so wire order survives.
func (m *PropertyMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: properties must be a mapping")
	}
	m.defs = make(map[string]PropertyDef, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		var def PropertyDef
		if err := node.Content[i+1].Decode(&def); err != nil {
			return err
		}
		if _, dup := m.defs[name]; dup {
			return fmt.Errorf("schema: property %q declared twice", name)
		}
		m.names = append(m.names, name)
		m.defs[name] = def
	}
	return nil
}

// Names returns property names in declaration order.
func (m PropertyMap) Names() []string { return m.names }

// Get returns the definition for name.
func (m PropertyMap) Get(name string) (PropertyDef, bool) {
	d, ok := m.defs[name]
	return d, ok
}

// Len returns the number of properties.
func (m PropertyMap) Len() int { return len(m.names) }

// TypeDef describes one vocabulary type.
type TypeDef struct {
	URI              string                   `yaml:"uri"`
	Extends          []string                 `yaml:"extends"`
	Properties       PropertyMap              `yaml:"properties"`
	PreferredName    map[string]PreferredName `yaml:"preferred_property_name"`
	ExceptProperties []string                 `yaml:"except_properties"`
	Doc              string                   `yaml:"doc"`
}

func (t TypeDef) excepts(name string) bool {
	for _, e := range t.ExceptProperties {
		if e == name {
			return true
		}
	}
	return false
}

// Schema is the loaded, immutable schema document: a mapping from type name
// to TypeDef.
type Schema struct {
	Types map[string]TypeDef
}

// Type returns the definition of a named type.
func (s *Schema) Type(name string) (TypeDef, bool) {
	t, ok := s.Types[name]
	return t, ok
}
