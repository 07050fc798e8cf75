package renderer

// NodeType identifies a render node kind.
type NodeType string

const (
	NodeDocument      NodeType = "document"
	NodeParagraph     NodeType = "paragraph"
	NodeHeading       NodeType = "heading"
	NodeBulletList    NodeType = "bulletList"
	NodeOrderedList   NodeType = "orderedList"
	NodeListItem      NodeType = "listItem"
	NodeLink          NodeType = "link"
	NodeImage         NodeType = "image"
	NodeEmphasis      NodeType = "emphasis"
	NodeStrong        NodeType = "strong"
	NodeStrikethrough NodeType = "strikethrough"
	NodeInlineCode    NodeType = "inlineCode"
	NodeCodeBlock     NodeType = "codeBlock"
	NodeBlockquote    NodeType = "blockquote"
	NodeTable         NodeType = "table"
	NodeTableRow      NodeType = "tableRow"
	NodeTableHeader   NodeType = "tableHeader"
	NodeTableCell     NodeType = "tableCell"
	NodeRule          NodeType = "rule"
	NodeHardBreak     NodeType = "hardBreak"
	NodeCheckbox      NodeType = "checkbox"
	NodeText          NodeType = "text"
	NodePlaceholder   NodeType = "placeholder"
)

// Node is one vertex of a render tree. A parent exclusively owns its
// Content children; trees are never shared between renders.
type Node struct {
	Type    NodeType       `json:"type"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
}

func newTextNode(textValue string) Node {
	return Node{
		Type: NodeText,
		Text: textValue,
	}
}

// appendInline appends next to content, merging adjacent text nodes and
// dropping empty ones.
func appendInline(content []Node, next Node) []Node {
	if next.Type == "" || (next.Type == NodeText && next.Text == "") {
		return content
	}

	if len(content) == 0 {
		return append(content, next)
	}

	last := &content[len(content)-1]
	if last.Type == NodeText && next.Type == NodeText {
		last.Text += next.Text
		return content
	}

	return append(content, next)
}
