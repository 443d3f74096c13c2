package vocabind

import (
	"errors"
	"sort"

	"github.com/vocabind/vocabind/i18n"
	"github.com/vocabind/vocabind/schema"
)

// Registry holds the compiled bindings of one schema. It is built once by
// Compile and never mutated afterwards; concurrent decode/encode calls need
// no synchronization.
type Registry struct {
	schema   *schema.Schema
	bindings map[string]*Binding
}

// Binding is the compiled codec of one vocabulary type: its effective
// property set, the wire-key lookup table, and the subtype dispatch table for
// its variants envelope.
type Binding struct {
	reg      *Registry
	typeName string
	uri      string
	doc      string

	props    []propBinding     // effective properties, ordered by first insertion
	keyIndex map[string]keyRef // every recognized wire key -> property slot
	nameIdx  map[string]int    // property name -> slot

	subtypes   []string          // transitive closure, base first
	variantIdx map[string]string // discriminant (name or uri) -> concrete type
}

// propBinding is the reusable per-property binding: kind, canonical tags and
// the parsed value-type expression.
type propBinding struct {
	name         string
	kind         schema.PropertyKind
	tag          string
	containerTag string // empty for simple properties
	vt           valType
}

// keyRef locates the property slot a wire key feeds, and which half of a
// language container it carries.
type keyRef struct {
	idx       int
	container bool
}

// Compile resolves inheritance and subtype graphs for every type in the
// schema and builds the per-type bindings. Schema errors (unknown supertypes,
// preferred-name shape mismatches, unknown value types) abort compilation.
func Compile(s *schema.Schema) (*Registry, error) {
	reg := &Registry{schema: s, bindings: make(map[string]*Binding, len(s.Types))}
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	// First pass: shells, so value-type checks can see every type name.
	for _, name := range names {
		def := s.Types[name]
		reg.bindings[name] = &Binding{reg: reg, typeName: name, uri: def.URI, doc: def.Doc}
	}

	var iss Issues
	for _, name := range names {
		b := reg.bindings[name]
		if err := reg.compileType(b); err != nil {
			iss = AppendIssues(iss, schemaIssues(name, err)...)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return reg, nil
}

func (r *Registry) compileType(b *Binding) error {
	resolved, err := r.schema.EffectiveProperties(b.typeName)
	if err != nil {
		return err
	}
	b.props = make([]propBinding, 0, len(resolved))
	b.keyIndex = make(map[string]keyRef)
	b.nameIdx = make(map[string]int, len(resolved))
	for _, rp := range resolved {
		vt, err := parseValType(rp.Def.Type)
		if err == nil {
			err = r.checkValType(vt)
		}
		if err != nil {
			return &valueTypeError{prop: rp.Name, err: err}
		}
		idx := len(b.props)
		b.props = append(b.props, propBinding{
			name:         rp.Name,
			kind:         rp.Def.Kind,
			tag:          rp.Def.WireTag(rp.Name),
			containerTag: rp.Def.ContainerTag,
			vt:           vt,
		})
		b.nameIdx[rp.Name] = idx
		b.addKey(rp.Def.WireTag(rp.Name), idx, false)
		for _, alias := range rp.Def.Aka {
			b.addKey(alias, idx, false)
		}
		if rp.Def.IsLangContainer() {
			b.addKey(rp.Def.ContainerTag, idx, true)
			for _, alias := range rp.Def.ContainerAka {
				b.addKey(alias, idx, true)
			}
		}
	}

	subs, err := r.schema.Subtypes(b.typeName)
	if err != nil {
		return err
	}
	b.subtypes = subs
	b.variantIdx = make(map[string]string, len(subs)*2)
	for _, sub := range subs {
		b.variantIdx[sub] = sub
		if def, ok := r.schema.Type(sub); ok && def.URI != "" {
			if _, taken := b.variantIdx[def.URI]; !taken {
				b.variantIdx[def.URI] = sub
			}
		}
	}
	return nil
}

// addKey registers a wire key; the first registration of a key wins.
func (b *Binding) addKey(key string, idx int, container bool) {
	if _, taken := b.keyIndex[key]; taken {
		return
	}
	b.keyIndex[key] = keyRef{idx: idx, container: container}
}

func (b *Binding) prop(name string) (propBinding, bool) {
	idx, ok := b.nameIdx[name]
	if !ok {
		return propBinding{}, false
	}
	return b.props[idx], true
}

func (b *Binding) propByTag(tag string) (propBinding, bool) {
	kr, ok := b.keyIndex[tag]
	if !ok || kr.container {
		return propBinding{}, false
	}
	return b.props[kr.idx], true
}

func (b *Binding) newObject() *Object {
	return &Object{binding: b, props: map[string]*Prop{}}
}

// fillRequiredDefaults gives Required simple properties a type-appropriate
// zero value; upcasts rely on this to stay total.
func (o *Object) fillRequiredDefaults() {
	for _, pb := range o.binding.props {
		if pb.kind != schema.Required || pb.containerTag != "" {
			continue
		}
		p := o.props[pb.name]
		if p == nil || len(p.vals) == 0 {
			o.prop(pb.name).vals = []Val{o.binding.reg.zeroVal(pb.vt)}
		}
	}
}

// Binding returns the compiled binding for a type name.
func (r *Registry) Binding(name string) (*Binding, bool) {
	b, ok := r.bindings[name]
	return b, ok
}

// Types returns all compiled type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subtypes returns the variants closure of a base type, base first.
func (b *Binding) Subtypes() []string { return b.subtypes }

// TypeName returns the bound vocabulary type.
func (b *Binding) TypeName() string { return b.typeName }

// Doc returns the schema documentation string of the bound type.
func (b *Binding) Doc() string { return b.doc }

// NewObject creates an empty typed object for encode-side construction.
func (r *Registry) NewObject(name string) (*Object, error) {
	b, ok := r.bindings[name]
	if !ok {
		return nil, unknownTypeIssue(name)
	}
	return b.newObject(), nil
}

// valueTypeError tags a value-type expression failure with its property.
type valueTypeError struct {
	prop string
	err  error
}

func (e *valueTypeError) Error() string { return "property " + e.prop + ": " + e.err.Error() }

// schemaIssues maps schema-package errors onto the issue taxonomy.
func schemaIssues(typeName string, err error) Issues {
	path := "/" + typeName
	var unknownSuper *schema.UnknownSupertypeError
	if errors.As(err, &unknownSuper) {
		return Issues{Issue{Path: path, Code: CodeUnknownSupertype, Message: i18n.T(CodeUnknownSupertype, nil), Hint: unknownSuper.Super, Cause: err}}
	}
	var kindMismatch *schema.KindMismatchError
	if errors.As(err, &kindMismatch) {
		return Issues{Issue{Path: path + "/" + kindMismatch.Property, Code: CodeKindMismatch, Message: i18n.T(CodeKindMismatch, nil), Cause: err}}
	}
	var vtErr *valueTypeError
	if errors.As(err, &vtErr) {
		return Issues{Issue{Path: path + "/" + vtErr.prop, Code: CodeUnknownValueType, Message: i18n.T(CodeUnknownValueType, nil), Hint: vtErr.err.Error(), Cause: err}}
	}
	return issuesFromErr(path, err)
}
