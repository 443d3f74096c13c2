package vocabind

import (
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/schema"
)

// encodeObject renders the object's wire form: properties in declaration
// order, each half of a language container under its own key, with the value
// shape driven by the property kind.
func (b *Binding) encodeObject(o *Object) jsonv.Value {
	members := make([]jsonv.Member, 0, len(b.props))
	for _, pb := range b.props {
		p := o.props[pb.name]
		if p == nil {
			p = &Prop{}
		}
		if v, ok := shapeVals(pb.kind, p.vals); ok {
			members = append(members, jsonv.Field(pb.tag, v))
		}
		if pb.containerTag == "" || len(p.lang) == 0 {
			continue
		}
		langMembers := make([]jsonv.Member, 0, len(p.langOrder))
		for _, code := range p.langOrder {
			if v, ok := shapeVals(pb.kind, p.lang[code]); ok {
				langMembers = append(langMembers, jsonv.Field(code, v))
			}
		}
		members = append(members, jsonv.Field(pb.containerTag, jsonv.Object(langMembers...)))
	}
	return jsonv.Object(members...)
}

// shapeVals applies the cardinality rule of a kind to one value list.
// Required and Functional carry a single bare value; Normal is omitted when
// empty, bare for one value and an array for several. A Required simple
// property is non-empty by construction, so the empty case only arises for
// the neutral half of a language container.
func shapeVals(kind schema.PropertyKind, vals []Val) (jsonv.Value, bool) {
	switch kind {
	case schema.Required, schema.Functional:
		if len(vals) == 0 {
			return jsonv.Value{}, false
		}
		return EncodeVal(vals[0]), true
	default:
		switch len(vals) {
		case 0:
			return jsonv.Value{}, false
		case 1:
			return EncodeVal(vals[0]), true
		default:
			items := make([]jsonv.Value, len(vals))
			for i, v := range vals {
				items[i] = EncodeVal(v)
			}
			return jsonv.Array(items...), true
		}
	}
}

// encodeTagged renders the object with its concrete type discriminant. When
// the schema itself models "type" as a property and the object carries a
// value for it, that declared property wins and no synthetic key is added.
func (b *Binding) encodeTagged(o *Object) jsonv.Value {
	if pb, ok := b.propByTag("type"); ok {
		if p := o.props[pb.name]; p != nil && !p.empty() {
			return b.encodeObject(o)
		}
	}
	body := b.encodeObject(o)
	members := make([]jsonv.Member, 0, len(body.Members())+1)
	members = append(members, jsonv.Field("type", jsonv.String(b.typeName)))
	members = append(members, body.Members()...)
	return jsonv.Object(members...)
}

// Encode renders an object without a type discriminant.
func (r *Registry) Encode(o *Object) jsonv.Value { return o.binding.encodeObject(o) }

// EncodeTagged renders an object with its concrete type discriminant first.
func (r *Registry) EncodeTagged(o *Object) jsonv.Value { return o.binding.encodeTagged(o) }

// EncodeDocument renders a document: the @context key first when present,
// then the tagged body flattened into the same object.
func (r *Registry) EncodeDocument(d *Document) jsonv.Value {
	body := r.EncodeTagged(d.Body)
	if d.Context == nil {
		return body
	}
	members := make([]jsonv.Member, 0, len(body.Members())+1)
	members = append(members, jsonv.Field("@context", d.Context.Encode()))
	members = append(members, body.Members()...)
	return jsonv.Object(members...)
}
