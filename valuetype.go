package vocabind

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vocabind/vocabind/i18n"
	"github.com/vocabind/vocabind/jsonv"
	"github.com/vocabind/vocabind/xsd"
)

// valType is a parsed value-type expression from a schema property's "type"
// field: a scalar name, a vocabulary type name, or one of the constructors
// Or<L,R>, Remotable<T>, Subtypes<T>.
type valType struct {
	name string
	args []valType
}

func (vt valType) String() string {
	if len(vt.args) == 0 {
		return vt.name
	}
	parts := make([]string, len(vt.args))
	for i, a := range vt.args {
		parts[i] = a.String()
	}
	return vt.name + "<" + strings.Join(parts, ", ") + ">"
}

// parseValType parses the `Name` / `Name<Arg, Arg>` grammar.
func parseValType(src string) (valType, error) {
	p := vtParser{src: src}
	vt, err := p.parse()
	if err != nil {
		return valType{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return valType{}, fmt.Errorf("trailing input in value type %q", src)
	}
	return vt, nil
}

type vtParser struct {
	src string
	pos int
}

func (p *vtParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *vtParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '<' || c == '>' || c == ',' || c == ' ' {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *vtParser) parse() (valType, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return valType{}, fmt.Errorf("empty value type in %q", p.src)
	}
	vt := valType{name: name}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '<' {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return valType{}, err
			}
			vt.args = append(vt.args, arg)
			p.skipSpace()
			if p.pos >= len(p.src) {
				return valType{}, fmt.Errorf("unterminated value type %q", p.src)
			}
			switch p.src[p.pos] {
			case ',':
				p.pos++
				continue
			case '>':
				p.pos++
			default:
				return valType{}, fmt.Errorf("unexpected %q in value type %q", p.src[p.pos], p.src)
			}
			break
		}
	}
	return vt, nil
}

// scalar value type names.
const (
	vtString      = "string"
	vtLanguageTag = "languageTag"
	vtBoolean     = "boolean"
	vtNumber      = "number"
	vtInteger     = "integer"
	vtAnyURI      = "anyURI"
	vtDateTime    = "dateTime"
	vtDuration    = "duration"
	vtJSON        = "json"
	vtUnit        = "unit"
)

func isScalarType(name string) bool {
	switch name {
	case vtString, vtLanguageTag, vtBoolean, vtNumber, vtInteger, vtAnyURI, vtDateTime, vtDuration, vtJSON, vtUnit:
		return true
	}
	return false
}

// checkValType validates an expression at compile time: constructor arities
// and that every plain name is a scalar or a schema type.
func (r *Registry) checkValType(vt valType) error {
	switch vt.name {
	case "Or":
		if len(vt.args) != 2 {
			return fmt.Errorf("Or takes two arguments, got %d", len(vt.args))
		}
		if err := r.checkValType(vt.args[0]); err != nil {
			return err
		}
		return r.checkValType(vt.args[1])
	case "Remotable", "Subtypes":
		if len(vt.args) != 1 {
			return fmt.Errorf("%s takes one argument, got %d", vt.name, len(vt.args))
		}
		if vt.name == "Subtypes" && len(vt.args[0].args) != 0 {
			return fmt.Errorf("Subtypes argument must be a type name, got %s", vt.args[0])
		}
		return r.checkValType(vt.args[0])
	default:
		if len(vt.args) != 0 {
			return fmt.Errorf("unknown constructor %q", vt.name)
		}
		if isScalarType(vt.name) {
			return nil
		}
		if _, ok := r.bindings[vt.name]; !ok {
			return fmt.Errorf("unknown value type %q", vt.name)
		}
		return nil
	}
}

// decodeValue decodes one JSON value against a value-type expression.
func (r *Registry) decodeValue(ctx context.Context, vt valType, v jsonv.Value) (Val, error) {
	switch vt.name {
	case "Or":
		res, err := ResolveOr(v,
			func(v jsonv.Value) (Val, error) { return r.decodeValue(ctx, vt.args[0], v) },
			func(v jsonv.Value) (Val, error) { return r.decodeValue(ctx, vt.args[1], v) },
		)
		if err != nil {
			return nil, err
		}
		if l, ok := res.Left(); ok {
			return &OrVal{Branch: BranchLeft, V: l}, nil
		}
		rv, _ := res.Right()
		return &OrVal{Branch: BranchRight, V: rv}, nil
	case "Remotable":
		res, err := ResolveOr(v,
			func(v jsonv.Value) (Val, error) { return r.decodeValue(ctx, vt.args[0], v) },
			func(v jsonv.Value) (Val, error) { return decodeScalar(valType{name: vtAnyURI}, v) },
		)
		if err != nil {
			return nil, err
		}
		if inline, ok := res.Left(); ok {
			return NewInline(inline), nil
		}
		ref, _ := res.Right()
		return NewRef(string(ref.(IRI))), nil
	case "Subtypes":
		b, ok := r.bindings[vt.args[0].name]
		if !ok {
			return nil, unknownTypeIssue(vt.args[0].name)
		}
		return b.DecodeVariant(ctx, v)
	default:
		if isScalarType(vt.name) {
			return decodeScalar(vt, v)
		}
		b, ok := r.bindings[vt.name]
		if !ok {
			return nil, unknownTypeIssue(vt.name)
		}
		return b.Decode(ctx, v)
	}
}

func unknownTypeIssue(name string) Issues {
	return Issues{Issue{Path: "/", Code: CodeUnknownValueType, Message: i18n.T(CodeUnknownValueType, nil), Hint: "unknown type " + name}}
}

func decodeScalar(vt valType, v jsonv.Value) (Val, error) {
	switch vt.name {
	case vtString, vtLanguageTag:
		s, ok := v.Str()
		if !ok {
			return nil, typeIssue("expected string")
		}
		return Str(s), nil
	case vtBoolean:
		b, ok := v.BoolVal()
		if !ok {
			return nil, typeIssue("expected boolean")
		}
		return BoolVal(b), nil
	case vtNumber:
		n, ok := v.NumberText()
		if !ok {
			return nil, typeIssue("expected number")
		}
		return Num(n), nil
	case vtInteger:
		n, ok := v.NumberText()
		if !ok {
			return nil, typeIssue("expected integer")
		}
		if _, err := strconv.ParseInt(n, 10, 64); err != nil {
			return nil, scalarIssue("not an integer: " + n)
		}
		return Num(n), nil
	case vtAnyURI:
		s, ok := v.Str()
		if !ok {
			return nil, typeIssue("expected identifier string")
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" {
			return nil, scalarIssue("not an absolute IRI: " + s)
		}
		return IRI(s), nil
	case vtDateTime:
		s, ok := v.Str()
		if !ok {
			return nil, typeIssue("expected dateTime string")
		}
		dt, err := xsd.ParseDateTime(s)
		if err != nil {
			return nil, scalarIssue(err.Error())
		}
		return DateTime{dt}, nil
	case vtDuration:
		s, ok := v.Str()
		if !ok {
			return nil, typeIssue("expected duration string")
		}
		d, err := xsd.ParseDuration(s)
		if err != nil {
			return nil, scalarIssue(err.Error())
		}
		return Duration{d}, nil
	case vtUnit:
		if v.IsNull() {
			return Unit("m"), nil
		}
		s, ok := v.Str()
		if !ok {
			return nil, typeIssue("expected unit string")
		}
		switch s {
		case "cm", "feet", "inches", "km", "m", "miles":
			return Unit(s), nil
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" {
			return nil, scalarIssue("not a unit token or URI: " + s)
		}
		return Unit(s), nil
	case vtJSON:
		return Raw{V: v}, nil
	}
	return nil, scalarIssue("unknown scalar type " + vt.name)
}

// zeroVal is the type-appropriate default used when upcasts must fill fields
// the subtype never had.
func (r *Registry) zeroVal(vt valType) Val {
	switch vt.name {
	case vtString, vtLanguageTag:
		return Str("")
	case vtBoolean:
		return BoolVal(false)
	case vtNumber, vtInteger:
		return Num("0")
	case vtAnyURI:
		return IRI("")
	case vtDateTime:
		return DateTime{}
	case vtDuration:
		return Duration{}
	case vtUnit:
		return Unit("m")
	case vtJSON:
		return Raw{V: jsonv.Null()}
	case "Or":
		return &OrVal{Branch: BranchLeft, V: r.zeroVal(vt.args[0])}
	case "Remotable":
		return NewRef("")
	case "Subtypes":
		if b, ok := r.bindings[vt.args[0].name]; ok {
			return b.newObject()
		}
	default:
		if b, ok := r.bindings[vt.name]; ok {
			return b.newObject()
		}
	}
	return Raw{V: jsonv.Null()}
}

func typeIssue(hint string) Issues {
	return Issues{Issue{Path: "/", Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: hint}}
}

func scalarIssue(hint string) Issues {
	return Issues{Issue{Path: "/", Code: CodeMalformedScalar, Message: i18n.T(CodeMalformedScalar, nil), Hint: hint}}
}
