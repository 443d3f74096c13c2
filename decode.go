package vocabind

import (
	"context"
	"strconv"
	"strings"

	"github.com/vocabind/vocabind/i18n"
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/schema"
)

// Decode decodes a JSON object against this exact type (no subtype
// dispatch). The full member list is scanned once; every recognized wire key
// (canonical tag or alias, for either half of a language container) feeds its
// property slot, unrecognized keys are ignored. All decode errors are
// terminal: no partial object is returned.
func (b *Binding) Decode(ctx context.Context, v jsonv.Value) (*Object, error) {
	if v.Kind() != jsonv.KindObject {
		return nil, typeIssue("expected object for type " + b.typeName)
	}
	obj := b.newObject()
	seenVal := make([]bool, len(b.props))
	seenLang := make([]bool, len(b.props))

	for _, m := range v.Members() {
		kr, ok := b.keyIndex[m.Key]
		if !ok {
			continue
		}
		pb := b.props[kr.idx]
		if kr.container {
			if pb.kind != schema.Normal && seenLang[kr.idx] {
				return nil, duplicateFieldIssue(pb.name)
			}
			seenLang[kr.idx] = true
			if err := b.decodeLangHalf(ctx, obj, pb, m.Key, m.Value); err != nil {
				return nil, err
			}
			continue
		}
		if pb.kind != schema.Normal && seenVal[kr.idx] {
			return nil, duplicateFieldIssue(pb.name)
		}
		seenVal[kr.idx] = true
		vals, err := b.decodeValueHalf(ctx, pb, m.Key, m.Value)
		if err != nil {
			return nil, err
		}
		p := obj.prop(pb.name)
		// Repeated Normal keys merge by list concatenation.
		p.vals = append(p.vals, vals...)
	}

	for _, pb := range b.props {
		if pb.kind != schema.Required {
			continue
		}
		p := obj.props[pb.name]
		if pb.containerTag != "" {
			// A Required language container is satisfied by either half.
			if p == nil || p.empty() {
				return nil, missingRequiredIssue(pb.name)
			}
			continue
		}
		if p == nil || len(p.vals) == 0 {
			return nil, missingRequiredIssue(pb.name)
		}
	}
	return obj, nil
}

// decodeValueHalf decodes the language-neutral key of a property. Normal
// kind accepts the 0-or-many shape (bare value or array); the other kinds
// take exactly one value.
func (b *Binding) decodeValueHalf(ctx context.Context, pb propBinding, wireKey string, v jsonv.Value) ([]Val, error) {
	if pb.kind != schema.Normal {
		val, err := b.reg.decodeValue(ctx, pb.vt, v)
		if err != nil {
			return nil, rebaseIssues("/"+wireKey, err)
		}
		return []Val{val}, nil
	}
	return b.decodeMany(ctx, pb, wireKey, v)
}

func (b *Binding) decodeMany(ctx context.Context, pb propBinding, wireKey string, v jsonv.Value) ([]Val, error) {
	if v.Kind() != jsonv.KindArray {
		val, err := b.reg.decodeValue(ctx, pb.vt, v)
		if err != nil {
			return nil, rebaseIssues("/"+wireKey, err)
		}
		return []Val{val}, nil
	}
	items := v.Items()
	vals := make([]Val, 0, len(items))
	for i, it := range items {
		val, err := b.reg.decodeValue(ctx, pb.vt, it)
		if err != nil {
			return nil, rebaseIssues("/"+wireKey+"/"+strconv.Itoa(i), err)
		}
		vals = append(vals, val)
	}
	return vals, nil
}

// decodeLangHalf decodes the language-map key of a language container. The
// union of language codes is taken across repeated keys; a later value for
// the same language overwrites the earlier one.
func (b *Binding) decodeLangHalf(ctx context.Context, obj *Object, pb propBinding, wireKey string, v jsonv.Value) error {
	if v.Kind() != jsonv.KindObject {
		return rebaseIssues("/"+wireKey, typeIssue("expected language map object"))
	}
	p := obj.prop(pb.name)
	for _, m := range v.Members() {
		var vals []Val
		var err error
		if pb.kind == schema.Normal {
			vals, err = b.decodeMany(ctx, pb, wireKey+"/"+m.Key, m.Value)
		} else {
			var one Val
			one, err = b.reg.decodeValue(ctx, pb.vt, m.Value)
			if err != nil {
				err = rebaseIssues("/"+wireKey+"/"+m.Key, err)
			}
			vals = []Val{one}
		}
		if err != nil {
			return err
		}
		p.setLang(m.Key, vals)
	}
	return nil
}

// DecodeVariant decodes a JSON object polymorphically: the "type"
// discriminant is resolved through the subtype closure of this base type
// (matching a type name or its URI; an array discriminant resolves to its
// first recognized entry). Unresolved or absent discriminants fall back to
// the base type itself.
func (b *Binding) DecodeVariant(ctx context.Context, v jsonv.Value) (*Object, error) {
	if v.Kind() != jsonv.KindObject {
		return nil, typeIssue("expected object for type " + b.typeName)
	}
	tag, found := b.scanDiscriminant(v)
	if found {
		if concrete, ok := b.variantIdx[tag]; ok {
			obj, err := b.reg.bindings[concrete].Decode(ctx, v)
			if err != nil {
				return nil, err
			}
			obj.tagged = true
			return obj, nil
		}
	}
	obj, err := b.Decode(ctx, v)
	if err != nil {
		return nil, Issues{Issue{
			Path:    "/type",
			Code:    CodeUnknownDiscriminant,
			Message: i18n.T(CodeUnknownDiscriminant, nil),
			Hint:    "got " + quoteTag(tag) + ", expected one of: " + strings.Join(b.subtypes, ", "),
			Cause:   err,
		}}
	}
	obj.tagged = true
	return obj, nil
}

// scanDiscriminant locates the discriminant among the object's members. A
// later "type" member overrides an earlier one; inside an array the first
// recognized entry wins, or the first string entry when none is recognized.
func (b *Binding) scanDiscriminant(v jsonv.Value) (string, bool) {
	tag := ""
	found := false
	for _, m := range v.Members() {
		if m.Key != "type" {
			continue
		}
		switch m.Value.Kind() {
		case jsonv.KindString:
			tag, _ = m.Value.Str()
			found = true
		case jsonv.KindArray:
			first := ""
			seen := false
			for _, it := range m.Value.Items() {
				s, ok := it.Str()
				if !ok {
					continue
				}
				if !seen {
					first, seen = s, true
				}
				if _, known := b.variantIdx[s]; known {
					first = s
					break
				}
			}
			if seen {
				tag, found = first, true
			}
		}
	}
	return tag, found
}

func quoteTag(tag string) string {
	if tag == "" {
		return "no type tag"
	}
	return `"` + tag + `"`
}

// Decode decodes v against the named exact type.
func (r *Registry) Decode(ctx context.Context, typeName string, v jsonv.Value) (*Object, error) {
	b, ok := r.bindings[typeName]
	if !ok {
		return nil, unknownTypeIssue(typeName)
	}
	return b.Decode(ctx, v)
}

// DecodeVariants decodes v against the subtype envelope of the named base
// type.
func (r *Registry) DecodeVariants(ctx context.Context, base string, v jsonv.Value) (*Object, error) {
	b, ok := r.bindings[base]
	if !ok {
		return nil, unknownTypeIssue(base)
	}
	return b.DecodeVariant(ctx, v)
}

// DecodeDocument decodes a wire document: an optional @context key combined
// with the flattened body of a typed object at the same object level. The
// body dispatches through the subtype envelope of base.
func (r *Registry) DecodeDocument(ctx context.Context, base string, v jsonv.Value) (*Document, error) {
	b, ok := r.bindings[base]
	if !ok {
		return nil, unknownTypeIssue(base)
	}
	if v.Kind() != jsonv.KindObject {
		return nil, typeIssue("expected document object")
	}
	var dctx *Context
	body := make([]jsonv.Member, 0, len(v.Members()))
	for _, m := range v.Members() {
		if m.Key == "@context" {
			c, err := DecodeContext(m.Value)
			if err != nil {
				return nil, err
			}
			dctx = c
			continue
		}
		body = append(body, m)
	}
	obj, err := b.DecodeVariant(ctx, jsonv.Object(body...))
	if err != nil {
		return nil, err
	}
	return &Document{Context: dctx, Body: obj}, nil
}

func duplicateFieldIssue(name string) Issues {
	return Issues{Issue{Path: "/" + name, Code: CodeDuplicateField, Message: i18n.T(CodeDuplicateField, nil), Hint: name}}
}

func missingRequiredIssue(name string) Issues {
	return Issues{Issue{Path: "/" + name, Code: CodeMissingRequired, Message: i18n.T(CodeMissingRequired, nil), Hint: name}}
}
