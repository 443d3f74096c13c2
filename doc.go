// Package vocabind binds a declarative vocabulary schema (ActivityStreams /
// JSON-LD style) to bidirectional JSON codecs:
//
//   - Compile resolves inheritance, subtype graphs and wire-key tables once
//     per schema and returns an immutable Registry of per-type bindings.
//   - Each binding decodes a generic JSON value tree (jsonv.Value) into a
//     typed Object and encodes it back, reproducing the vocabulary's wire
//     conventions (0-or-many collapsing, language containers, tagged
//     envelopes, reference-vs-inline values, @context shape preservation).
//   - Errors are reported through Issues (JSON Pointer, code, message).
//
// Design policy:
//   - Keep the public API in the root package; put the schema model under
//     schema/, the value tree under jsonv/, scalar codecs under xsd/, and the
//     CLI under cmd/vocabind.
//   - A Registry is never mutated after Compile; concurrent decode/encode
//     calls need no synchronization.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := schema.LoadBytes(doc)
//	reg, err := vocabind.Compile(s)
//	v, err := jsonv.DecodeBytes(wire)
//	obj, err := reg.Decode(ctx, "Note", v)
//	out := reg.Encode(obj)
package vocabind
