package renderer

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertDocument(root ast.Node) (Node, error) {
	if err := s.checkContext(); err != nil {
		return Node{}, err
	}

	doc := Node{
		Type: NodeDocument,
	}

	content, err := s.convertBlockChildren(root)
	if err != nil {
		return Node{}, err
	}
	doc.Content = content

	return doc, nil
}

func (s *state) convertBlockChildren(parent ast.Node) ([]Node, error) {
	var content []Node

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.checkContext(); err != nil {
			return nil, err
		}

		converted, ok, err := s.convertBlockNode(child)
		if err != nil {
			return nil, err
		}
		if ok && converted.Type != "" {
			content = append(content, converted)
		}
	}

	return content, nil
}

func (s *state) convertBlockNode(node ast.Node) (Node, bool, error) {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.convertParagraphNode(typed)
	case *ast.TextBlock:
		return s.convertTextBlockNode(typed)
	case *ast.Heading:
		return s.convertHeadingNode(typed)
	case *ast.Blockquote:
		return s.convertBlockquoteNode(typed)
	case *ast.ThematicBreak:
		return s.overrideOr(
			OverrideInput{Kind: NodeRule},
			Node{Type: NodeRule},
		), true, nil
	case *ast.FencedCodeBlock:
		return s.convertFencedCodeBlockNode(typed)
	case *ast.CodeBlock:
		return s.convertCodeBlockNode(typed)
	case *ast.List:
		return s.convertListNode(typed)
	case *extast.Table:
		return s.convertTableNode(typed)
	default:
		return s.convertUnknownBlockNode(node)
	}
}

// blockLines concatenates the raw source lines of a block node. Block
// content is read from the node's line segments rather than the
// deprecated ast.Node.Text, whose block behavior is tied to the pinned
// goldmark release.
func (s *state) blockLines(node ast.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(s.source))
	}
	return sb.String()
}

// convertUnknownBlockNode degrades anything the mapper does not know,
// HTML blocks included, to a plain text paragraph. Raw HTML never
// reaches the tree as markup.
func (s *state) convertUnknownBlockNode(node ast.Node) (Node, bool, error) {
	nodeKind := node.Kind().String()
	if s.config.Strict {
		return Node{}, false, fmt.Errorf("unknown markdown block node: %s", nodeKind)
	}

	textValue := strings.TrimSpace(s.blockLines(node))
	if textValue == "" {
		return Node{}, false, nil
	}

	s.addWarning(
		WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown block node: %s", nodeKind),
	)

	return Node{
		Type: NodeParagraph,
		Content: []Node{
			newTextNode(textValue),
		},
	}, true, nil
}

func (s *state) warnUnknownInline(node ast.Node) []Node {
	textValue := strings.TrimSpace(string(node.Text(s.source)))
	if textValue == "" {
		return nil
	}

	nodeKind := node.Kind().String()
	s.addWarning(
		WarningUnknownNode,
		nodeKind,
		fmt.Sprintf("unsupported markdown inline node: %s", nodeKind),
	)

	return []Node{
		newTextNode(textValue),
	}
}
