package domctx

// FindOrCreate picks the stored context best suited to the domain. A perfect
// match is reused as is, a score above MatchThreshold is cloned for the new
// domain, and anything below yields a fresh empty context. The returned list
// replaces the caller's: the chosen context sits at the front (most recently
// used first) and clones keep their original alongside.
func (h *Handler) FindOrCreate(contexts []*Context, d Domain) (*Context, []*Context, float64) {
	attrs, metas := h.EncodeDomain(d)

	best, bestScore := -1, 0.0
	for i, c := range contexts {
		score := h.Match(c, attrs, metas)
		if score == PerfectMatch {
			best, bestScore = i, score
			break
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	var ctx *Context
	reused := false
	switch {
	case bestScore == PerfectMatch:
		ctx = contexts[best]
		reused = true
	case bestScore > MatchThreshold:
		ctx = h.CloneContext(contexts[best], d, attrs, metas)
	default:
		ctx = h.NewContext(d, attrs, metas)
	}

	out := make([]*Context, 0, len(contexts)+1)
	out = append(out, ctx)
	for i, c := range contexts {
		if reused && i == best {
			continue
		}
		out = append(out, c)
	}
	return ctx, out, bestScore
}
