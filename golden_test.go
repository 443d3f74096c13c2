package vocabind_test

import (
	"context"
	"os"
	"testing"

	vocabind "github.com/vocabind/vocabind"
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/schema"
)

func TestGolden_CreateNoteRoundTrip(t *testing.T) {
	s, err := schema.LoadFile("testdata/vocab.yml")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	reg, err := vocabind.Compile(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	raw, err := os.ReadFile("testdata/create_note.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	in, err := jsonv.DecodeBytes(raw)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	doc, err := reg.DecodeDocument(context.Background(), "Object", in)
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.Body.TypeName() != "Create" {
		t.Fatalf("want Create, got %s", doc.Body.TypeName())
	}
	v, ok := doc.Body.First("object")
	if !ok {
		t.Fatalf("object property missing")
	}
	rem, ok := v.(*vocabind.Remotable)
	if !ok || rem.IsRef() {
		t.Fatalf("want inline object, got %#v", v)
	}
	note, ok := rem.Inline.(*vocabind.Object)
	if !ok || note.TypeName() != "Note" {
		t.Fatalf("want inline Note, got %#v", rem.Inline)
	}
	if id, ok := note.ID(); !ok || id != "http://example.org/notes/1" {
		t.Fatalf("note id: got %q (%v)", id, ok)
	}

	out := reg.EncodeDocument(doc)
	if !jsonv.Equal(out, in) {
		t.Fatalf("round trip changed the document:\n%s", string(jsonv.EncodeBytes(out)))
	}
}
