package vocabind

import (
	"strconv"

	"github.com/vocabind/vocabind/i18n"
	"github.com/vocabind/vocabind/jsonv"
)

// Context preserves the syntactic shape of a JSON-LD @context key: an ordered
// list of identifiers plus a single merged inline term map. Original
// groupings of inline objects are not preserved; later inline terms overwrite
// earlier ones (last-write-wins).
type Context struct {
	ids    []string
	inline []jsonv.Member
}

// NewContext builds a context from identifier strings.
func NewContext(ids ...string) *Context { return &Context{ids: ids} }

// IDs returns the ordered identifier list.
func (c *Context) IDs() []string { return c.ids }

// Inline returns the merged inline term definitions in first-seen order.
func (c *Context) Inline() []jsonv.Member { return c.inline }

// AddInline merges one term definition, overwriting an existing term of the
// same name in place.
func (c *Context) AddInline(key string, v jsonv.Value) {
	for i, m := range c.inline {
		if m.Key == key {
			c.inline[i].Value = v
			return
		}
	}
	c.inline = append(c.inline, jsonv.Field(key, v))
}

// DecodeContext parses the three accepted wire shapes: a single identifier
// string, a single inline object, or an array mixing both.
func DecodeContext(v jsonv.Value) (*Context, error) {
	c := &Context{}
	switch v.Kind() {
	case jsonv.KindString:
		s, _ := v.Str()
		c.ids = append(c.ids, s)
	case jsonv.KindObject:
		for _, m := range v.Members() {
			c.AddInline(m.Key, m.Value)
		}
	case jsonv.KindArray:
		for i, el := range v.Items() {
			switch el.Kind() {
			case jsonv.KindString:
				s, _ := el.Str()
				c.ids = append(c.ids, s)
			case jsonv.KindObject:
				for _, m := range el.Members() {
					c.AddInline(m.Key, m.Value)
				}
			default:
				return nil, Issues{Issue{
					Path:    "/@context/" + strconv.Itoa(i),
					Code:    CodeInvalidType,
					Message: i18n.T(CodeInvalidType, nil),
					Hint:    "expected identifier string or term object",
				}}
			}
		}
	default:
		return nil, Issues{Issue{
			Path:    "/@context",
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected string, object or array",
		}}
	}
	return c, nil
}

// Encode re-emits the context by non-emptiness: inline-only as a bare object,
// a single identifier as a bare string, identifiers-only as an array of
// strings, and mixed content as the identifiers followed by exactly one
// trailing merged inline object.
func (c *Context) Encode() jsonv.Value {
	switch {
	case len(c.inline) == 0 && len(c.ids) == 1:
		return jsonv.String(c.ids[0])
	case len(c.inline) == 0:
		items := make([]jsonv.Value, len(c.ids))
		for i, id := range c.ids {
			items[i] = jsonv.String(id)
		}
		return jsonv.Array(items...)
	case len(c.ids) == 0:
		return jsonv.Object(c.inline...)
	default:
		items := make([]jsonv.Value, 0, len(c.ids)+1)
		for _, id := range c.ids {
			items = append(items, jsonv.String(id))
		}
		return jsonv.Array(append(items, jsonv.Object(c.inline...))...)
	}
}

// Document is a wire envelope combining an optional @context key with the
// flattened body of a typed object at the same object level.
type Document struct {
	Context *Context
	Body    *Object
}
