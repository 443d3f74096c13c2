package vocabind_test

import (
	"context"
	"testing"

	vocabind "github.com/vocabind/vocabind"
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/schema"
)

// testVocab is a cut-down social vocabulary exercising every property shape:
// inheritance, language containers, sum types, remotables and the scalar
// codecs.
const testVocab = `
Object:
  uri: https://www.w3.org/ns/activitystreams#Object
  properties:
    id: {type: anyURI, kind: Functional}
    name: {type: string, container_tag: nameMap}
    summary: {type: string, container_tag: summaryMap}
    published: {type: dateTime, kind: Functional}
    duration: {type: duration, kind: Functional}
    attachment: {type: Remotable<Subtypes<Object>>}
    attributedTo: {type: "Or<anyURI, Subtypes<Object>>"}
Link:
  uri: https://www.w3.org/ns/activitystreams#Link
  properties:
    href: {type: anyURI, kind: Required}
    hreflang: {type: languageTag, kind: Functional}
Activity:
  uri: https://www.w3.org/ns/activitystreams#Activity
  extends: [Object]
  properties:
    actor: {type: "Or<anyURI, Subtypes<Object>>"}
    object: {type: Remotable<Subtypes<Object>>}
Note:
  uri: https://www.w3.org/ns/activitystreams#Note
  extends: [Object]
  properties:
    content: {type: string, container_tag: contentMap}
Question:
  extends: [Activity]
  properties:
    oneOf: {type: Remotable<Subtypes<Object>>}
    closed: {type: "Or<dateTime, boolean>", kind: Functional}
Place:
  extends: [Object]
  properties:
    radius: {type: number, kind: Functional}
    units: {type: unit, kind: Functional}
Tombstone:
  extends: [Object]
  except_properties: [attachment]
Profile:
  extends: [Object]
  preferred_property_name:
    summary: {default: about, container: aboutMap}
`

func mustRegistry(t *testing.T) *vocabind.Registry {
	t.Helper()
	s, err := schema.LoadBytes([]byte(testVocab))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	reg, err := vocabind.Compile(s)
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return reg
}

func mustParse(t *testing.T, src string) jsonv.Value {
	t.Helper()
	v, err := jsonv.DecodeBytes([]byte(src))
	if err != nil {
		t.Fatalf("parse %s: %v", src, err)
	}
	return v
}

func mustDecodeVariants(t *testing.T, reg *vocabind.Registry, base, src string) *vocabind.Object {
	t.Helper()
	obj, err := reg.DecodeVariants(context.Background(), base, mustParse(t, src))
	if err != nil {
		t.Fatalf("decode %s: %v", src, err)
	}
	return obj
}
