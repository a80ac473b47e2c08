package domctx

import "slices"

// MatchMode selects how much of a column's definition participates in
// context matching.
type MatchMode int

const (
	MatchNone  MatchMode = iota // match on type tags only
	MatchClass                  // match category labels for discrete class vars
	MatchAll                    // match category labels for every discrete column
)

// Code is the encoded form of one domain column: its type tag and, when the
// match mode requests value-level matching, the ordered category labels.
type Code struct {
	Type   VarType
	Values []string
}

// Equal reports whether two codes match. When either side carries labels the
// label lists must be identical; otherwise the type tags must be.
func (c Code) Equal(o Code) bool {
	if c.Values != nil || o.Values != nil {
		return slices.Equal(c.Values, o.Values)
	}
	return c.Type == o.Type
}

// Encoding maps column names to their encoded codes.
type Encoding map[string]Code

// Equal reports deep equality of two encodings.
func (e Encoding) Equal(o Encoding) bool {
	if len(e) != len(o) {
		return false
	}
	for k, c := range e {
		oc, ok := o[k]
		if !ok || !c.Equal(oc) {
			return false
		}
	}
	return true
}

// EncodeDomain translates a domain into the attribute and meta encodings
// used for storage and matching. Class vars are encoded alongside the
// attributes. A side disabled by the handler's encode toggles comes back as
// an empty, non-nil encoding.
func (h *Handler) EncodeDomain(d Domain) (attrs, metas Encoding) {
	attrs = Encoding{}
	metas = Encoding{}
	if h.encodeAttrs {
		for _, v := range d.Attributes {
			attrs[v.Name] = h.encode(v, h.mode == MatchAll)
		}
		for _, v := range d.ClassVars {
			attrs[v.Name] = h.encode(v, h.mode != MatchNone)
		}
	}
	if h.encodeMetas {
		for _, v := range d.Metas {
			metas[v.Name] = h.encode(v, h.mode == MatchAll)
		}
	}
	return attrs, metas
}

func (h *Handler) encode(v Variable, withValues bool) Code {
	if withValues && v.Type == TypeDiscrete {
		return Code{Type: v.Type, Values: slices.Clone(v.Values)}
	}
	return Code{Type: v.Type}
}
