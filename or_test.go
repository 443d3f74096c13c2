package vocabind_test

import (
	"testing"

	vocabind "github.com/vocabind/vocabind"
	"github.com/vocabind/vocabind/jsonv"
)

func TestOr_Branches(t *testing.T) {
	l := vocabind.OrLeft[string, int]("hello")
	if !l.IsLeft() {
		t.Fatalf("want left")
	}
	if v, ok := l.Left(); !ok || v != "hello" {
		t.Fatalf("Left: got %q (%v)", v, ok)
	}
	if _, ok := l.Right(); ok {
		t.Fatalf("Right must be empty on a left value")
	}

	r := vocabind.OrRight[string](42)
	if r.IsLeft() {
		t.Fatalf("want right")
	}
	if v, ok := r.Right(); !ok || v != 42 {
		t.Fatalf("Right: got %d (%v)", v, ok)
	}
}

func TestResolveOr_LeftWinsWhenBothMatch(t *testing.T) {
	asInt := func(v jsonv.Value) (string, error) {
		s, _ := v.NumberText()
		return s, nil
	}
	// Both resolvers accept the input; the ordered contract picks the left.
	res, err := vocabind.ResolveOr(jsonv.Number("7"), asInt, asInt)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !res.IsLeft() {
		t.Fatalf("ambiguous input must resolve left")
	}
}

func TestResolveOr_CombinedError(t *testing.T) {
	fail := func(v jsonv.Value) (string, error) {
		return "", vocabind.Issues{{Code: vocabind.CodeInvalidType, Message: "nope"}}
	}
	_, err := vocabind.ResolveOr(jsonv.Null(), fail, fail)
	iss, ok := vocabind.AsIssues(err)
	if !ok || !iss.HasCode(vocabind.CodeTypeMismatch) {
		t.Fatalf("want type_mismatch, got %v", err)
	}
	if iss[0].Hint == "" {
		t.Fatalf("combined error must carry both branch failures")
	}
}
