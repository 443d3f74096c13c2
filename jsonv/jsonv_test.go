package jsonv_test

import (
	"strings"
	"testing"

	"github.com/vocabind/vocabind/jsonv"
)

func TestDecodeBytes_PreservesMemberOrder(t *testing.T) {
	v, err := jsonv.DecodeBytes([]byte(`{"b":1,"a":2,"c":3}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	keys := []string{}
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	if got := strings.Join(keys, ","); got != "b,a,c" {
		t.Fatalf("want b,a,c got %s", got)
	}
}

func TestDecodeBytes_PreservesDuplicateKeys(t *testing.T) {
	v, err := jsonv.DecodeBytes([]byte(`{"k":"first","k":"second"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ms := v.Members()
	if len(ms) != 2 || ms[0].Key != "k" || ms[1].Key != "k" {
		t.Fatalf("both occurrences must survive, got %v", ms)
	}
	if s, _ := ms[1].Value.Str(); s != "second" {
		t.Fatalf("want second, got %v", ms[1].Value)
	}
}

func TestDecodeBytes_NumberTextVerbatim(t *testing.T) {
	v, err := jsonv.DecodeBytes([]byte(`{"n":1.50,"big":12345678901234567890}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, _ := v.Get("n")
	if txt, _ := n.NumberText(); txt != "1.50" {
		t.Fatalf("want 1.50 got %q", txt)
	}
	big, _ := v.Get("big")
	if txt, _ := big.NumberText(); txt != "12345678901234567890" {
		t.Fatalf("want full precision, got %q", txt)
	}
}

func TestDecodeBytes_TrailingDataRejected(t *testing.T) {
	if _, err := jsonv.DecodeBytes([]byte(`{"a":1} trailing`)); err == nil {
		t.Fatalf("trailing data must be rejected")
	}
}

func TestDecodeBytes_MalformedRejected(t *testing.T) {
	if _, err := jsonv.DecodeBytes([]byte(`{"a":`)); err == nil {
		t.Fatalf("truncated input must be rejected")
	}
}

func TestEncodeBytes_RoundTrip(t *testing.T) {
	const src = `{"s":"héllo","n":1.50,"b":true,"nul":null,"arr":[1,"two",{"k":"v"}]}`
	v, err := jsonv.DecodeBytes([]byte(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := jsonv.EncodeBytes(v)
	v2, err := jsonv.DecodeBytes(out)
	if err != nil {
		t.Fatalf("re-decode %s: %v", out, err)
	}
	if !jsonv.Equal(v, v2) {
		t.Fatalf("round trip changed the value: %s", out)
	}
}

func TestEqual_ObjectOrderInsensitive(t *testing.T) {
	a, _ := jsonv.DecodeBytes([]byte(`{"x":1,"y":2}`))
	b, _ := jsonv.DecodeBytes([]byte(`{"y":2,"x":1}`))
	if !jsonv.Equal(a, b) {
		t.Fatalf("member order must not matter")
	}
	c, _ := jsonv.DecodeBytes([]byte(`{"x":1,"y":3}`))
	if jsonv.Equal(a, c) {
		t.Fatalf("different values must not compare equal")
	}
}

func TestEqual_ArrayOrderSensitive(t *testing.T) {
	a, _ := jsonv.DecodeBytes([]byte(`[1,2]`))
	b, _ := jsonv.DecodeBytes([]byte(`[2,1]`))
	if jsonv.Equal(a, b) {
		t.Fatalf("array order must matter")
	}
}

func TestBuilders(t *testing.T) {
	v := jsonv.Object(
		jsonv.Field("name", jsonv.String("x")),
		jsonv.Field("tags", jsonv.Array(jsonv.String("a"), jsonv.String("b"))),
	)
	if got := string(jsonv.EncodeBytes(v)); got != `{"name":"x","tags":["a","b"]}` {
		t.Fatalf("got %s", got)
	}
	if !jsonv.Null().IsNull() {
		t.Fatalf("zero value must be null")
	}
}
