package domctx

// CloneContext rewrites a saved context for a new domain. NotAttribute
// settings are carried verbatim, list references are filtered to the entries
// that still resolve (preserving order, with the companion selection indices
// remapped), and single references that no longer resolve are dropped. The
// old context is left untouched.
func (h *Handler) CloneContext(old *Context, d Domain, attrs, metas Encoding) *Context {
	ctx := h.NewContext(d, attrs, metas)
	ctx.Values = make(map[string]Value, len(old.Values))
	for name, v := range old.Values {
		ctx.Values[name] = v
	}

	for i := range h.settings {
		set := &h.settings[i]
		if set.NotAttribute {
			continue
		}
		v, ok := ctx.Values[set.Name]
		if !ok {
			continue
		}
		switch {
		case v.List != nil:
			kept, keptSel := h.filterList(set, ctx, v.List, attrs, metas)
			ctx.Values[set.Name] = Value{List: kept}
			if set.Selected != "" {
				if _, stored := ctx.Values[set.Selected]; stored {
					ctx.Values[set.Selected] = RawValue(keptSel)
				}
			}
		case v.Pair != nil:
			if v.Pair.Type.IsVariable() && !h.resolves(set, *v.Pair, attrs, metas) {
				delete(ctx.Values, set.Name)
			}
		}
	}
	return ctx
}

// filterList keeps the resolvable entries of a stored list in their original
// order and remaps the selected indices onto the surviving entries.
func (h *Handler) filterList(set *Setting, ctx *Context, list []Pair, attrs, metas Encoding) ([]Pair, []int) {
	selected := selectedIndices(ctx, set.Selected)
	kept := make([]Pair, 0, len(list))
	keptSel := make([]int, 0, len(selected))
	for i, p := range list {
		if !h.resolves(set, p, attrs, metas) {
			continue
		}
		if selected[i] {
			keptSel = append(keptSel, len(kept))
		}
		kept = append(kept, p)
	}
	return kept, keptSel
}
