package jsonv

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// EncodeBytes serializes a Value tree back to compact JSON. Object members are
// written in their stored order; number text is emitted verbatim.
func EncodeBytes(v Value) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.Bytes()
}

// EncodeIndent serializes a Value tree with indentation.
func EncodeIndent(v Value, prefix, indent string) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, EncodeBytes(v), prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v Value) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if v.s == "" {
			buf.WriteString("0")
		} else {
			buf.WriteString(v.s)
		}
	case KindString:
		writeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, it := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, it)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, m.Key)
			buf.WriteByte(':')
			writeValue(buf, m.Value)
		}
		buf.WriteByte('}')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	// Escaping is delegated to the JSON driver.
	b, err := json.Marshal(s)
	if err != nil {
		buf.WriteString(`""`)
		return
	}
	buf.Write(b)
}
