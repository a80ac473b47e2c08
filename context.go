package domctx

import (
	"time"

	"github.com/google/uuid"
)

// Pair is a stored reference to a domain column: the column name plus the
// encoded code it carried when the context was saved. A Pair whose Type is
// not a variable type holds a plain payload instead of a reference. Values
// is set when the context was saved under value-level matching.
type Pair struct {
	Name   string
	Type   VarType
	Values []string
}

func (p Pair) code() Code { return Code{Type: p.Type, Values: p.Values} }

// Value is one stored setting payload. Exactly one of the three fields is
// used: Pair for a single column reference, List for an ordered list of
// references, Raw for payloads that never touch the domain (selection
// indices, free text, plain numbers).
type Value struct {
	Pair *Pair
	List []Pair
	Raw  any
}

// PairValue stores a single (name, type) reference.
func PairValue(name string, t VarType) Value {
	return Value{Pair: &Pair{Name: name, Type: t}}
}

// ListValue stores an ordered list of references.
func ListValue(pairs ...Pair) Value {
	return Value{List: pairs}
}

// RawValue stores a payload that does not reference the domain.
func RawValue(v any) Value {
	return Value{Raw: v}
}

// Context is a saved snapshot of component settings keyed by the shape of
// the domain it was created for.
type Context struct {
	ID            string
	Time          time.Time
	Attributes    Encoding
	Metas         Encoding
	OrderedDomain []Pair
	Values        map[string]Value
}

// NewContext snapshots the given domain into a fresh context with no stored
// values.
func (h *Handler) NewContext(d Domain, attrs, metas Encoding) *Context {
	cols := d.Columns()
	ordered := make([]Pair, 0, len(cols))
	for _, v := range cols {
		ordered = append(ordered, Pair{Name: v.Name, Type: v.Type})
	}
	return &Context{
		ID:            uuid.NewString(),
		Time:          time.Now(),
		Attributes:    attrs,
		Metas:         metas,
		OrderedDomain: ordered,
		Values:        map[string]Value{},
	}
}
