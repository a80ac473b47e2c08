// Package store persists per-component context lists as versioned JSON
// files and reloads them on demand, the file-backed counterpart of the
// in-memory matching in the root package.
package store

import (
	"time"

	json "github.com/goccy/go-json"
	domctx "github.com/reoring/domctx"
)

// FormatVersion is the wire version written into every context file.
const FormatVersion = 1

const (
	kindPair = "pair"
	kindList = "list"
	kindRaw  = "raw"
)

type fileV1 struct {
	Version  int         `json:"version"`
	Contexts []contextV1 `json:"contexts"`
}

type contextV1 struct {
	ID            string             `json:"id"`
	Time          time.Time          `json:"time"`
	Attributes    map[string]codeV1  `json:"attributes"`
	Metas         map[string]codeV1  `json:"metas"`
	OrderedDomain []pairV1           `json:"ordered_domain,omitempty"`
	Values        map[string]valueV1 `json:"values"`
}

type codeV1 struct {
	Type   int8     `json:"type"`
	Values []string `json:"values,omitempty"`
}

type pairV1 struct {
	Name   string   `json:"name"`
	Type   int8     `json:"type"`
	Values []string `json:"values,omitempty"`
}

type valueV1 struct {
	Kind string   `json:"kind"`
	Pair *pairV1  `json:"pair,omitempty"`
	List []pairV1 `json:"list,omitempty"`
	Raw  any      `json:"raw,omitempty"`
}

// EncodeContexts renders a context list into the versioned wire format.
func EncodeContexts(ctxs []*domctx.Context) ([]byte, error) {
	f := fileV1{Version: FormatVersion, Contexts: make([]contextV1, 0, len(ctxs))}
	for _, c := range ctxs {
		f.Contexts = append(f.Contexts, encodeContext(c))
	}
	return json.MarshalIndent(f, "", "  ")
}

// DecodeContexts parses the versioned wire format back into contexts. Parse
// failures and unknown versions come back as domctx.Issues.
func DecodeContexts(data []byte) ([]*domctx.Context, error) {
	var f fileV1
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, domctx.Issues{{
			Path:    "/",
			Code:    domctx.CodeParseError,
			Message: "context file is not valid JSON",
			Cause:   err,
		}}
	}
	if f.Version != FormatVersion {
		return nil, domctx.Issues{{
			Path:    "/version",
			Code:    domctx.CodeUnknownVersion,
			Message: "unsupported context file version",
			Params:  map[string]any{"got": f.Version, "want": FormatVersion},
		}}
	}
	out := make([]*domctx.Context, 0, len(f.Contexts))
	for i := range f.Contexts {
		c, err := decodeContext(&f.Contexts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func encodeContext(c *domctx.Context) contextV1 {
	w := contextV1{
		ID:         c.ID,
		Time:       c.Time,
		Attributes: encodeEncoding(c.Attributes),
		Metas:      encodeEncoding(c.Metas),
		Values:     make(map[string]valueV1, len(c.Values)),
	}
	for _, p := range c.OrderedDomain {
		w.OrderedDomain = append(w.OrderedDomain, encodePair(p))
	}
	for name, v := range c.Values {
		w.Values[name] = encodeValue(v)
	}
	return w
}

func decodeContext(w *contextV1) (*domctx.Context, error) {
	c := &domctx.Context{
		ID:         w.ID,
		Time:       w.Time,
		Attributes: decodeEncoding(w.Attributes),
		Metas:      decodeEncoding(w.Metas),
		Values:     make(map[string]domctx.Value, len(w.Values)),
	}
	for _, p := range w.OrderedDomain {
		c.OrderedDomain = append(c.OrderedDomain, decodePair(p))
	}
	for name, v := range w.Values {
		dv, err := decodeValue(name, v)
		if err != nil {
			return nil, err
		}
		c.Values[name] = dv
	}
	return c, nil
}

func encodeEncoding(e domctx.Encoding) map[string]codeV1 {
	out := make(map[string]codeV1, len(e))
	for name, code := range e {
		out[name] = codeV1{Type: int8(code.Type), Values: code.Values}
	}
	return out
}

func decodeEncoding(m map[string]codeV1) domctx.Encoding {
	out := make(domctx.Encoding, len(m))
	for name, code := range m {
		out[name] = domctx.Code{Type: domctx.VarType(code.Type), Values: code.Values}
	}
	return out
}

func encodePair(p domctx.Pair) pairV1 {
	return pairV1{Name: p.Name, Type: int8(p.Type), Values: p.Values}
}

func decodePair(p pairV1) domctx.Pair {
	return domctx.Pair{Name: p.Name, Type: domctx.VarType(p.Type), Values: p.Values}
}

func encodeValue(v domctx.Value) valueV1 {
	switch {
	case v.Pair != nil:
		p := encodePair(*v.Pair)
		return valueV1{Kind: kindPair, Pair: &p}
	case v.List != nil:
		list := make([]pairV1, 0, len(v.List))
		for _, p := range v.List {
			list = append(list, encodePair(p))
		}
		return valueV1{Kind: kindList, List: list}
	default:
		return valueV1{Kind: kindRaw, Raw: v.Raw}
	}
}

func decodeValue(name string, v valueV1) (domctx.Value, error) {
	switch v.Kind {
	case kindPair:
		if v.Pair == nil {
			return domctx.Value{}, domctx.Issues{{
				Path:    "/values/" + name,
				Code:    domctx.CodeParseError,
				Message: "pair value without a pair payload",
			}}
		}
		p := decodePair(*v.Pair)
		return domctx.Value{Pair: &p}, nil
	case kindList:
		list := make([]domctx.Pair, 0, len(v.List))
		for _, p := range v.List {
			list = append(list, decodePair(p))
		}
		return domctx.Value{List: list}, nil
	case kindRaw:
		return domctx.Value{Raw: normalizeRaw(v.Raw)}, nil
	default:
		return domctx.Value{}, domctx.Issues{{
			Path:    "/values/" + name,
			Code:    domctx.CodeInvalidType,
			Message: "unknown value kind",
			Params:  map[string]any{"got": v.Kind},
		}}
	}
}

// normalizeRaw folds JSON-decoded index lists back into []int so selection
// companions round-trip through the file format.
func normalizeRaw(raw any) any {
	list, ok := raw.([]any)
	if !ok {
		return raw
	}
	ints := make([]int, 0, len(list))
	for _, e := range list {
		n, ok := e.(float64)
		if !ok || n != float64(int(n)) {
			return raw
		}
		ints = append(ints, int(n))
	}
	return ints
}
