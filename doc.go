package domctx

// Package domctx provides:
//
// - Encoding of dataset domains into compact per-column codes (EncodeDomain)
// - Scoring of saved contexts against a candidate domain (Match)
// - Rewriting of contexts for a close-but-different domain (CloneContext)
// - Best-context selection over a saved list (FindOrCreate)
//
// Design policy:
// - Keep only public APIs in the root package; persistence lives under store/
//   and the CLI under cmd/domctx.
// - A stable error model via Issues (path, code, message).
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	h := domctx.NewHandler(domctx.MatchValues(domctx.MatchClass))
//	_ = h.Bind(domctx.Settings{{Name: "selection", Require: domctx.Required}})
//
//	attrs, metas := h.EncodeDomain(domain)
//	score := h.Match(saved, attrs, metas)
//	if score > domctx.MatchThreshold && score < domctx.PerfectMatch {
//		saved = h.CloneContext(saved, domain, attrs, metas)
//	}
