// Package jsonv models a fully materialized JSON value tree.
//
// Unlike map[string]any, objects keep their members in wire order and may
// carry the same key more than once; the vocabulary's merge-on-duplicate-key
// decode rules depend on both.
package jsonv

import "sort"

// Kind enumerates JSON value kinds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is a single key/value pair of an object. Duplicate keys are legal.
type Member struct {
	Key   string
	Value Value
}

// Value is one node of a JSON tree. The zero value is JSON null.
type Value struct {
	kind Kind
	b    bool
	s    string // string payload, or number text for KindNumber
	arr  []Value
	obj  []Member
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number from its textual form. The text is emitted
// verbatim on encode.
func Number(text string) Value { return Value{kind: KindNumber, s: text} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a JSON array of the given items.
func Array(items ...Value) Value {
	return Value{kind: KindArray, arr: items}
}

// Object returns a JSON object with members in the given order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, obj: members}
}

// Field builds an object member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Kind reports the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload; ok is false for non-strings.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// NumberText returns the textual number payload; ok is false for non-numbers.
func (v Value) NumberText() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// BoolVal returns the boolean payload; ok is false for non-booleans.
func (v Value) BoolVal() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Items returns array items (nil for non-arrays).
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Members returns object members in wire order (nil for non-objects).
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Get returns the value of the first member with the given key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep equality. Object member order is not significant, but
// repeated occurrences of the same key compare pairwise in order.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		am := sortedMembers(a.obj)
		bm := sortedMembers(b.obj)
		for i := range am {
			if am[i].Key != bm[i].Key || !Equal(am[i].Value, bm[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

func sortedMembers(ms []Member) []Member {
	out := make([]Member, len(ms))
	copy(out, ms)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
