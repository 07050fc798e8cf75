package renderer

// Override replaces the default mapping for one node kind. When an
// override is registered for a kind, every default policy for that kind
// is skipped, including the link/image allow-list checks; callers that
// override link or image handling take over the security checks
// themselves. Registration is last writer wins: assigning a kind in
// Config.Overrides replaces any previous override, and partial overrides
// are never merged with the defaults.
//
// The returned node is inserted in place of the default mapping. An
// override returning a zero Node (Type "") drops the construct from the
// tree.
type Override func(in OverrideInput) Node

// OverrideInput describes the markdown construct being mapped. Only the
// fields relevant to the kind are populated.
type OverrideInput struct {
	// Kind is the node kind the override was registered for.
	Kind NodeType

	// Destination is the link href or image source, for link and image
	// kinds.
	Destination string

	// Title is the link title, when present.
	Title string

	// Alt is the image alternative text.
	Alt string

	// Text is the flattened source text of the construct.
	Text string

	// Language is the detected code fence language, after LanguageMap
	// remapping.
	Language string

	// Level is the heading level, already clamped to the range the tree
	// exposes.
	Level int

	// Alignment is the table cell alignment ("left", "center", "right"),
	// empty when the column declares none.
	Alignment string

	// Checked is the parsed checkbox state for checkbox kinds.
	Checked bool

	// Content holds the default-converted children, ready for reuse.
	Content []Node
}

func (s *state) override(kind NodeType) (Override, bool) {
	override, ok := s.config.Overrides[kind]
	return override, ok
}

// overrideOr applies the override registered for in.Kind, or returns the
// default mapping. Every structural kind the mapper emits is consulted
// here; only text nodes and hard breaks always map structurally.
func (s *state) overrideOr(in OverrideInput, fallback Node) Node {
	if override, ok := s.override(in.Kind); ok {
		return override(in)
	}
	return fallback
}
