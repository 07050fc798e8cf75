package renderer

// Result holds the output of a render.
type Result struct {
	Root     Node      `json:"root"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes render warnings.
type WarningType string

const (
	WarningDisallowedLink  WarningType = "disallowed_link"
	WarningDisallowedImage WarningType = "disallowed_image"
	WarningUnknownNode     WarningType = "unknown_node"
)

// Warning represents a non-fatal issue encountered during a render.
// Disallowed destinations and unknown markdown constructs degrade to
// text rather than failing the render; the warning records what was
// dropped.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
