package vocabind

import "github.com/vocabind/vocabind/jsonv"

// Remotable is a value that may appear on the wire as a bare identifier
// string (a reference to an object not embedded here) or as a fully inlined
// value. Resolution tries the inline form first, then the identifier.
type Remotable struct {
	Ref    IRI // non-empty for the reference form
	Inline Val // non-nil for the inline form
}

// NewRef builds the reference form.
func NewRef(id string) *Remotable { return &Remotable{Ref: IRI(id)} }

// NewInline builds the inline form.
func NewInline(v Val) *Remotable { return &Remotable{Inline: v} }

// IsRef reports whether the value is a bare reference.
func (r *Remotable) IsRef() bool { return r.Inline == nil }

// ObjectID returns the identifier itself when the value is a reference, or
// the inlined value's own identifying property when inlined (recursively, if
// the inlined value is itself a resolution).
func (r *Remotable) ObjectID() (string, bool) {
	if r.Inline == nil {
		return string(r.Ref), r.Ref != ""
	}
	return objectIDOf(r.Inline)
}

// Equal is deep equality over both forms.
func (r *Remotable) Equal(o *Remotable) bool {
	if r.IsRef() != o.IsRef() {
		return false
	}
	if r.IsRef() {
		return r.Ref == o.Ref
	}
	return valEqual(r.Inline, o.Inline)
}

func (r *Remotable) encode() jsonv.Value {
	if r.Inline != nil {
		return EncodeVal(r.Inline)
	}
	return jsonv.String(string(r.Ref))
}
