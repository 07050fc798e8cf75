package renderer

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertInlineChildren(parent ast.Node) ([]Node, error) {
	var content []Node

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		converted, err := s.convertInlineNode(child)
		if err != nil {
			return nil, err
		}
		for _, node := range converted {
			content = appendInline(content, node)
		}
	}

	return content, nil
}

func (s *state) convertInlineNode(node ast.Node) ([]Node, error) {
	switch typed := node.(type) {
	case *ast.Text:
		var content []Node
		textValue := string(typed.Value(s.source))
		if textValue != "" {
			content = append(content, newTextNode(textValue))
		}

		if typed.HardLineBreak() {
			content = append(content, Node{Type: NodeHardBreak})
		} else if typed.SoftLineBreak() {
			content = append(content, newTextNode(" "))
		}

		return content, nil

	case *ast.String:
		return []Node{
			newTextNode(string(typed.Value)),
		}, nil

	case *ast.Emphasis:
		kind := NodeEmphasis
		if typed.Level >= 2 {
			kind = NodeStrong
		}
		return s.convertInlineContainer(typed, kind)

	case *extast.Strikethrough:
		return s.convertInlineContainer(typed, NodeStrikethrough)

	case *ast.CodeSpan:
		return s.convertCodeSpanNode(typed)

	case *ast.Link:
		return s.convertLinkNode(typed)

	case *ast.AutoLink:
		return s.convertAutoLinkNode(typed)

	case *ast.Image:
		return s.convertImageNode(typed)

	case *extast.TaskCheckBox:
		return s.convertCheckboxNode(typed)

	case *ast.RawHTML:
		return s.convertRawHTMLNode(typed)

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node)
		}
		if s.config.Strict {
			return nil, fmt.Errorf("unknown markdown inline node: %s", node.Kind().String())
		}
		return s.warnUnknownInline(node), nil
	}
}

// convertRawHTMLNode drops inline HTML tag fragments. goldmark emits
// the text between an opening and closing tag as ordinary Text siblings,
// so only the markup disappears; the inner text survives on its own.
func (s *state) convertRawHTMLNode(node *ast.RawHTML) ([]Node, error) {
	nodeKind := node.Kind().String()
	if s.config.Strict {
		return nil, fmt.Errorf("unknown markdown inline node: %s", nodeKind)
	}

	s.addWarning(
		WarningUnknownNode,
		nodeKind,
		"inline HTML markup dropped",
	)
	return nil, nil
}

func (s *state) convertInlineContainer(node ast.Node, kind NodeType) ([]Node, error) {
	content, err := s.convertInlineChildren(node)
	if err != nil {
		return nil, err
	}

	if override, ok := s.override(kind); ok {
		return []Node{override(OverrideInput{
			Kind:    kind,
			Text:    string(node.Text(s.source)),
			Content: content,
		})}, nil
	}

	return []Node{{
		Type:    kind,
		Content: content,
	}}, nil
}

func (s *state) convertCodeSpanNode(node *ast.CodeSpan) ([]Node, error) {
	textValue := string(node.Text(s.source))

	if override, ok := s.override(NodeInlineCode); ok {
		return []Node{override(OverrideInput{
			Kind: NodeInlineCode,
			Text: textValue,
		})}, nil
	}

	inlineCode := Node{Type: NodeInlineCode}
	if textValue != "" {
		inlineCode.Content = []Node{newTextNode(textValue)}
	}
	return []Node{inlineCode}, nil
}

func (s *state) convertLinkNode(node *ast.Link) ([]Node, error) {
	content, err := s.convertInlineChildren(node)
	if err != nil {
		return nil, err
	}

	href := strings.TrimSpace(string(node.Destination))
	title := strings.TrimSpace(string(node.Title))
	label := string(node.Text(s.source))

	if override, ok := s.override(NodeLink); ok {
		return []Node{override(OverrideInput{
			Kind:        NodeLink,
			Destination: href,
			Title:       title,
			Text:        label,
			Content:     content,
		})}, nil
	}

	return s.linkOrText(href, title, label, content), nil
}

func (s *state) convertAutoLinkNode(node *ast.AutoLink) ([]Node, error) {
	label := string(node.Label(s.source))
	href := strings.TrimSpace(string(node.URL(s.source)))
	if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(href, "mailto:") {
		href = "mailto:" + href
	}

	if override, ok := s.override(NodeLink); ok {
		return []Node{override(OverrideInput{
			Kind:        NodeLink,
			Destination: href,
			Text:        label,
		})}, nil
	}

	return s.linkOrText(href, "", label, []Node{newTextNode(label)}), nil
}

// linkOrText applies the link allow-list: permitted destinations become
// a real link node, everything else degrades to the label text with the
// destination dropped entirely.
func (s *state) linkOrText(href, title, label string, content []Node) []Node {
	if href == "" || !s.config.linkAllowed(href) {
		if href != "" {
			s.warnDisallowedLink(href)
		}
		if label == "" {
			return nil
		}
		return []Node{newTextNode(label)}
	}

	attrs := map[string]any{
		"href": href,
	}
	if title != "" {
		attrs["title"] = title
	}

	return []Node{{
		Type:    NodeLink,
		Attrs:   attrs,
		Content: content,
	}}
}

func (s *state) convertImageNode(node *ast.Image) ([]Node, error) {
	src := strings.TrimSpace(string(node.Destination))
	alt := strings.TrimSpace(string(node.Text(s.source)))

	if override, ok := s.override(NodeImage); ok {
		return []Node{override(OverrideInput{
			Kind:        NodeImage,
			Destination: src,
			Alt:         alt,
			Title:       strings.TrimSpace(string(node.Title)),
		})}, nil
	}

	if src == "" || !s.config.imageAllowed(src) {
		if src != "" {
			s.warnDisallowedImage(src)
		}
		return []Node{{
			Type: NodePlaceholder,
			Text: alt,
		}}, nil
	}

	attrs := map[string]any{
		"src": src,
	}
	if alt != "" {
		attrs["alt"] = alt
	}

	return []Node{{
		Type:  NodeImage,
		Attrs: attrs,
	}}, nil
}

// convertCheckboxNode maps a task-list checkbox. The rendered checkbox
// is always disabled; the parsed checked state is preserved read-only
// and the tree never allows toggling.
func (s *state) convertCheckboxNode(node *extast.TaskCheckBox) ([]Node, error) {
	if override, ok := s.override(NodeCheckbox); ok {
		return []Node{override(OverrideInput{
			Kind:    NodeCheckbox,
			Checked: node.IsChecked,
		})}, nil
	}

	return []Node{{
		Type: NodeCheckbox,
		Attrs: map[string]any{
			"checked":  node.IsChecked,
			"disabled": true,
		},
	}}, nil
}
