package jsonv

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeBytes materializes a JSON document into a Value tree. Object members
// are kept in wire order; duplicate keys are preserved, not collapsed.
func DecodeBytes(b []byte) (Value, error) {
	return DecodeReader(bytes.NewReader(b))
}

// DecodeReader materializes a single JSON document from r.
func DecodeReader(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("jsonv: trailing data after JSON document")
	}
	return v, nil
}

func readValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	return fromToken(dec, tok)
}

func fromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return Value{}, fmt.Errorf("jsonv: unexpected delimiter %q", t.String())
	case string:
		return String(t), nil
	case json.Number:
		return Number(string(t)), nil
	case float64:
		// UseNumber keeps numbers textual; this branch covers drivers that
		// hand back float64 anyway.
		return Number(fmt.Sprintf("%g", t)), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("jsonv: unexpected token %v", tok)
}

func readObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return Object(members...), nil
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonv: object key is not a string: %v", tok)
		}
		val, err := readValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Field(key, val))
	}
}

func readArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return Value{}, io.ErrUnexpectedEOF
			}
			return Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Array(items...), nil
		}
		v, err := fromToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
}
