package vocabind

import (
	"github.com/vocabind/vocabind/i18n"
	"github.com/vocabind/vocabind/jsonv"
)

// Or is the ordered either-of sum type. Resolution tries a complete decode
// into L first, then into R against the same input; values decodable as both
// always resolve to L. This ordering is part of the contract.
type Or[L, R any] struct {
	left  *L
	right *R
}

// OrLeft builds a left-branch value.
func OrLeft[L, R any](v L) Or[L, R] { return Or[L, R]{left: &v} }

// OrRight builds a right-branch value.
func OrRight[L, R any](v R) Or[L, R] { return Or[L, R]{right: &v} }

// Left returns the left value when the left branch is held.
func (o Or[L, R]) Left() (L, bool) {
	if o.left != nil {
		return *o.left, true
	}
	var zero L
	return zero, false
}

// Right returns the right value when the right branch is held.
func (o Or[L, R]) Right() (R, bool) {
	if o.right != nil {
		return *o.right, true
	}
	var zero R
	return zero, false
}

// IsLeft reports which branch is held.
func (o Or[L, R]) IsLeft() bool { return o.left != nil }

// ResolveOr decodes v with left, and only if that fails, with right. Both
// attempts see the same materialized input; no partial state is shared. When
// both fail the combined error carries both underlying messages.
func ResolveOr[L, R any](v jsonv.Value, left func(jsonv.Value) (L, error), right func(jsonv.Value) (R, error)) (Or[L, R], error) {
	lv, lerr := left(v)
	if lerr == nil {
		return OrLeft[L, R](lv), nil
	}
	rv, rerr := right(v)
	if rerr == nil {
		return OrRight[L](rv), nil
	}
	return Or[L, R]{}, Issues{Issue{
		Path:    "/",
		Code:    CodeTypeMismatch,
		Message: i18n.T(CodeTypeMismatch, nil),
		Hint:    lerr.Error() + " and " + rerr.Error(),
	}}
}

// OrBranch names the resolved branch of an either-of value.
type OrBranch int

const (
	BranchLeft OrBranch = iota
	BranchRight
)

// OrVal is an either-of property value as produced by decode.
type OrVal struct {
	Branch OrBranch
	V      Val
}

func (o *OrVal) encode() jsonv.Value { return EncodeVal(o.V) }
