package renderer

import "strings"

// PlainText flattens a render tree to readable text, the form a host UI
// hands to the clipboard. Block nodes are separated by blank lines,
// inline formatting is dropped, placeholders keep their alt text.
func PlainText(node Node) string {
	var sb strings.Builder
	writePlainText(&sb, node)
	return strings.TrimRight(sb.String(), "\n")
}

func writePlainText(sb *strings.Builder, node Node) {
	switch node.Type {
	case NodeText, NodePlaceholder:
		sb.WriteString(node.Text)

	case NodeHardBreak:
		sb.WriteString("\n")

	case NodeRule:
		sb.WriteString("---\n\n")

	case NodeImage:
		if alt, ok := node.Attrs["alt"].(string); ok {
			sb.WriteString(alt)
		}

	case NodeCheckbox:
		if checked, ok := node.Attrs["checked"].(bool); ok && checked {
			sb.WriteString("[x] ")
		} else {
			sb.WriteString("[ ] ")
		}

	case NodeCodeBlock:
		for _, child := range node.Content {
			writePlainText(sb, child)
		}
		sb.WriteString("\n\n")

	case NodeParagraph, NodeHeading:
		for _, child := range node.Content {
			writePlainText(sb, child)
		}
		sb.WriteString("\n\n")

	case NodeListItem, NodeTableRow:
		for _, child := range node.Content {
			writePlainText(sb, child)
		}
		sb.WriteString("\n")

	case NodeTableHeader, NodeTableCell:
		for _, child := range node.Content {
			writePlainText(sb, child)
		}
		sb.WriteString("\t")

	default:
		for _, child := range node.Content {
			writePlainText(sb, child)
		}
	}
}
