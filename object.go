package vocabind

import "github.com/vocabind/vocabind/jsonv"

// Prop is the decoded container for one property: the language-neutral values
// plus, for language containers, a language-code-keyed map. Values are
// mutated only while a single decode call merges duplicate keys; afterwards
// they are read-only.
type Prop struct {
	vals      []Val
	lang      map[string][]Val
	langOrder []string // first-seen language order, kept for deterministic encode
}

func (p *Prop) empty() bool { return len(p.vals) == 0 && len(p.lang) == 0 }

func (p *Prop) setLang(code string, vals []Val) {
	if p.lang == nil {
		p.lang = map[string][]Val{}
	}
	if _, seen := p.lang[code]; !seen {
		p.langOrder = append(p.langOrder, code)
	}
	p.lang[code] = vals
}

// Object is a decoded typed value: a concrete vocabulary type plus its
// property containers. Objects are created by decode (or NewObject) and are
// plain immutable values once construction completes.
type Object struct {
	binding *Binding
	props   map[string]*Prop
	// tagged marks envelope-decoded objects: re-encoding writes the concrete
	// type discriminant unless the schema models "type" as a property.
	tagged bool
}

// TypeName returns the concrete vocabulary type of the object.
func (o *Object) TypeName() string { return o.binding.typeName }

// TypeURI returns the type's identifier URI from the schema.
func (o *Object) TypeURI() string { return o.binding.uri }

// Values returns the language-neutral values of a property (nil when empty
// or unknown).
func (o *Object) Values(name string) []Val {
	if p := o.props[name]; p != nil {
		return p.vals
	}
	return nil
}

// First returns the first language-neutral value of a property.
func (o *Object) First(name string) (Val, bool) {
	vs := o.Values(name)
	if len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// Lang returns the per-language values of a language-container property.
func (o *Object) Lang(name string) map[string][]Val {
	if p := o.props[name]; p != nil {
		return p.lang
	}
	return nil
}

// ID returns the object's identifying property ("id" wire key) when present.
func (o *Object) ID() (string, bool) {
	pb, ok := o.binding.propByTag("id")
	if !ok {
		return "", false
	}
	v, ok := o.First(pb.name)
	if !ok {
		return "", false
	}
	return objectIDOf(v)
}

// Set replaces the language-neutral values of a property. Unknown property
// names are rejected; cardinality shaping happens at encode time.
func (o *Object) Set(name string, vals ...Val) error {
	if _, ok := o.binding.prop(name); !ok {
		return unknownProperty(o.binding.typeName, name)
	}
	o.prop(name).vals = vals
	return nil
}

// SetLang replaces the values of one language of a language-container
// property.
func (o *Object) SetLang(name, code string, vals ...Val) error {
	pb, ok := o.binding.prop(name)
	if !ok || pb.containerTag == "" {
		return unknownProperty(o.binding.typeName, name)
	}
	o.prop(name).setLang(code, vals)
	return nil
}

func (o *Object) prop(name string) *Prop {
	p := o.props[name]
	if p == nil {
		p = &Prop{}
		o.props[name] = p
	}
	return p
}

// Equal is deep equality over type and property containers.
func (o *Object) Equal(b *Object) bool {
	if o == nil || b == nil {
		return o == b
	}
	if o.binding.typeName != b.binding.typeName {
		return false
	}
	for _, pb := range o.binding.props {
		pa, pb2 := o.props[pb.name], b.props[pb.name]
		if !propEqual(pa, pb2) {
			return false
		}
	}
	return true
}

func propEqual(a, b *Prop) bool {
	if a == nil {
		a = &Prop{}
	}
	if b == nil {
		b = &Prop{}
	}
	if len(a.vals) != len(b.vals) || len(a.lang) != len(b.lang) {
		return false
	}
	for i := range a.vals {
		if !valEqual(a.vals[i], b.vals[i]) {
			return false
		}
	}
	for code, av := range a.lang {
		bv, ok := b.lang[code]
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valEqual(av[i], bv[i]) {
				return false
			}
		}
	}
	return true
}

// UpcastTo converts the object into an ancestor (or any other known) type:
// properties shared by name are carried across, everything else defaults to
// the empty container (zero value for Required simple properties). The
// conversion is total.
func (o *Object) UpcastTo(base string) (*Object, error) {
	bb, ok := o.binding.reg.bindings[base]
	if !ok {
		return nil, Issues{Issue{Path: "/", Code: CodeUnknownValueType, Hint: "unknown type " + base}}
	}
	out := bb.newObject()
	for _, pb := range bb.props {
		if src, ok := o.props[pb.name]; ok {
			out.props[pb.name] = src
		}
	}
	out.fillRequiredDefaults()
	return out, nil
}

// Encode renders the object back to its wire form, reproducing the
// cardinality-driven shape rules.
func (o *Object) Encode() jsonv.Value { return o.encode() }

func (o *Object) encode() jsonv.Value {
	if o.tagged {
		return o.binding.encodeTagged(o)
	}
	return o.binding.encodeObject(o)
}

func unknownProperty(typeName, prop string) error {
	return Issues{Issue{Path: "/" + prop, Code: CodeUnknownValueType, Hint: "type " + typeName + " has no property " + prop}}
}
