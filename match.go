package domctx

import "errors"

const (
	// PerfectMatch is returned when the candidate encodings are identical to
	// the ones stored in the context.
	PerfectMatch float64 = 2

	// MatchThreshold is the minimum score at which a stored context is worth
	// reusing via CloneContext.
	MatchThreshold float64 = 0.5

	// noValuesMatch is the score of a context that stores nothing to match.
	noValuesMatch float64 = 0.1
)

// errIncompatible aborts scoring when a required or selected reference
// cannot resolve.
var errIncompatible = errors.New("domctx: incompatible context")

// Match scores how well a saved context fits the candidate domain encodings.
// It returns PerfectMatch for structurally identical encodings, 0 for an
// incompatible context, 0.1 when the context stores nothing to match, and
// otherwise the fraction of stored references that resolve.
func (h *Handler) Match(ctx *Context, attrs, metas Encoding) float64 {
	if ctx.Attributes.Equal(attrs) && ctx.Metas.Equal(metas) {
		return PerfectMatch
	}

	matched, available := 0, 0
	for i := range h.settings {
		set := &h.settings[i]
		if set.NotAttribute {
			continue
		}
		v, ok := ctx.Values[set.Name]
		if !ok {
			continue
		}
		var m, a int
		var err error
		switch {
		case v.List != nil:
			m, a, err = h.matchList(set, ctx, v.List, attrs, metas)
		case v.Pair != nil:
			m, a, err = h.matchPair(set, *v.Pair, attrs, metas)
		}
		if err != nil {
			return 0
		}
		matched += m
		available += a
	}
	if available == 0 {
		return noValuesMatch
	}
	return float64(matched) / float64(available)
}

func (h *Handler) matchPair(set *Setting, p Pair, attrs, metas Encoding) (int, int, error) {
	if !p.Type.IsVariable() {
		return 0, 0, nil
	}
	if h.resolves(set, p, attrs, metas) {
		return 1, 1, nil
	}
	if set.Require == Required {
		return 0, 0, errIncompatible
	}
	return 0, 1, nil
}

func (h *Handler) matchList(set *Setting, ctx *Context, list []Pair, attrs, metas Encoding) (int, int, error) {
	selected := selectedIndices(ctx, set.Selected)
	matched := 0
	for i, p := range list {
		if h.resolves(set, p, attrs, metas) {
			matched++
			continue
		}
		if set.Require == Required || selected[i] {
			return 0, 0, errIncompatible
		}
	}
	return matched, len(list), nil
}

// resolves reports whether the stored reference still names a column with a
// matching code in the candidate encodings the setting is allowed to see.
func (h *Handler) resolves(set *Setting, p Pair, attrs, metas Encoding) bool {
	want := p.code()
	if !set.ExcludeAttributes {
		if got, ok := attrs[p.Name]; ok && got.Equal(want) {
			return true
		}
	}
	if set.IncludeMetas {
		if got, ok := metas[p.Name]; ok && got.Equal(want) {
			return true
		}
	}
	return false
}

// selectedIndices reads the companion index list of an IfSelected setting.
// Decoded raw payloads may surface as []any of numbers; both shapes are
// accepted.
func selectedIndices(ctx *Context, name string) map[int]bool {
	if name == "" {
		return nil
	}
	v, ok := ctx.Values[name]
	if !ok {
		return nil
	}
	switch raw := v.Raw.(type) {
	case []int:
		out := make(map[int]bool, len(raw))
		for _, i := range raw {
			out[i] = true
		}
		return out
	case []any:
		out := make(map[int]bool, len(raw))
		for _, e := range raw {
			switch n := e.(type) {
			case int:
				out[n] = true
			case float64:
				out[int(n)] = true
			}
		}
		return out
	default:
		return nil
	}
}
