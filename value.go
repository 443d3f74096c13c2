package vocabind

import (
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/xsd"
)

// Val is a decoded property value. The concrete types are the scalar codecs,
// typed objects, and the sum-type primitives (OrVal, Remotable).
type Val interface {
	encode() jsonv.Value
}

// Str is a plain string or language-tag value.
type Str string

// Num is a JSON number kept in textual form so re-encoding is lossless.
type Num string

// BoolVal is a boolean value.
type BoolVal bool

// IRI is an identifier value (xsd:anyURI).
type IRI string

// DateTime is an xsd:dateTime value.
type DateTime struct{ xsd.DateTime }

// Duration is an xsd:duration value.
type Duration struct{ xsd.Duration }

// Unit is a length unit: one of the closed tokens (cm, feet, inches, km, m,
// miles) or an arbitrary unit URI. The zero wire value defaults to "m".
type Unit string

// Raw is an uninterpreted JSON subtree (value type "json").
type Raw struct{ V jsonv.Value }

func (s Str) encode() jsonv.Value      { return jsonv.String(string(s)) }
func (n Num) encode() jsonv.Value      { return jsonv.Number(string(n)) }
func (b BoolVal) encode() jsonv.Value  { return jsonv.Bool(bool(b)) }
func (i IRI) encode() jsonv.Value      { return jsonv.String(string(i)) }
func (d DateTime) encode() jsonv.Value { return jsonv.String(d.String()) }
func (d Duration) encode() jsonv.Value { return jsonv.String(d.String()) }
func (u Unit) encode() jsonv.Value     { return jsonv.String(string(u)) }
func (r Raw) encode() jsonv.Value      { return r.V }

// EncodeVal renders any decoded value back to its wire form. Encoding a value
// produced by a successful decode never fails.
func EncodeVal(v Val) jsonv.Value {
	if v == nil {
		return jsonv.Null()
	}
	return v.encode()
}

// valEqual is deep equality over decoded values.
func valEqual(a, b Val) bool {
	switch x := a.(type) {
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Num:
		y, ok := b.(Num)
		return ok && x == y
	case BoolVal:
		y, ok := b.(BoolVal)
		return ok && x == y
	case IRI:
		y, ok := b.(IRI)
		return ok && x == y
	case DateTime:
		y, ok := b.(DateTime)
		return ok && x.Equal(y.DateTime)
	case Duration:
		y, ok := b.(Duration)
		return ok && x.Duration == y.Duration
	case Unit:
		y, ok := b.(Unit)
		return ok && x == y
	case Raw:
		y, ok := b.(Raw)
		return ok && jsonv.Equal(x.V, y.V)
	case *Object:
		y, ok := b.(*Object)
		return ok && x.Equal(y)
	case *Remotable:
		y, ok := b.(*Remotable)
		return ok && x.Equal(y)
	case *OrVal:
		y, ok := b.(*OrVal)
		return ok && x.Branch == y.Branch && valEqual(x.V, y.V)
	case nil:
		return b == nil
	}
	return false
}

// objectIDOf extracts an identifier from a value: the identifier itself for a
// reference, or the value's own identifying property when inlined,
// recursively through sum types.
func objectIDOf(v Val) (string, bool) {
	switch x := v.(type) {
	case IRI:
		return string(x), x != ""
	case *Object:
		return x.ID()
	case *Remotable:
		return x.ObjectID()
	case *OrVal:
		return objectIDOf(x.V)
	}
	return "", false
}
