package domctx

// Handler decides whether saved contexts still apply to a candidate domain.
// It encodes domains, scores contexts against them, and rewrites contexts
// when a close-but-imperfect domain arrives. A Handler is configured once
// and is safe for concurrent readers afterwards.
type Handler struct {
	mode        MatchMode
	encodeAttrs bool
	encodeMetas bool

	settings Settings
}

// Option configures a Handler.
type Option func(*Handler)

// MatchValues selects the value-level matching mode. Defaults to MatchNone.
func MatchValues(m MatchMode) Option {
	return func(h *Handler) { h.mode = m }
}

// EncodeAttributes toggles the attribute side of domain encoding. On by
// default.
func EncodeAttributes(on bool) Option {
	return func(h *Handler) { h.encodeAttrs = on }
}

// EncodeMetas toggles the meta side of domain encoding. Off by default.
func EncodeMetas(on bool) Option {
	return func(h *Handler) { h.encodeMetas = on }
}

// NewHandler builds a handler with no bound settings. Bind attaches the
// declarations before Match or CloneContext are used; an unbound handler
// still encodes domains and recognizes perfect matches.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{mode: MatchNone, encodeAttrs: true}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Bind installs the setting declarations the handler matches and clones by.
// It replaces any previously bound set and fails with Issues when the
// declarations are inconsistent.
func (h *Handler) Bind(ss Settings) error {
	if err := ss.Validate(); err != nil {
		return err
	}
	h.settings = append(Settings(nil), ss...)
	return nil
}
