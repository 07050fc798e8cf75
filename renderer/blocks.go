package renderer

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// languageRe matches the first word of a fence info string that is used
// as the language tag.
var languageRe = regexp.MustCompile(`^[A-Za-z0-9_]+`)

// defaultLanguage tags code fences with no usable info string.
const defaultLanguage = "text"

func (s *state) convertParagraphNode(node *ast.Paragraph) (Node, bool, error) {
	content, err := s.convertInlineChildren(node)
	if err != nil {
		return Node{}, false, err
	}

	return s.overrideOr(
		OverrideInput{Kind: NodeParagraph, Content: content},
		Node{Type: NodeParagraph, Content: content},
	), true, nil
}

func (s *state) convertTextBlockNode(node *ast.TextBlock) (Node, bool, error) {
	content, err := s.convertInlineChildren(node)
	if err != nil {
		return Node{}, false, err
	}

	return s.overrideOr(
		OverrideInput{Kind: NodeParagraph, Content: content},
		Node{Type: NodeParagraph, Content: content},
	), true, nil
}

func (s *state) convertHeadingNode(node *ast.Heading) (Node, bool, error) {
	content, err := s.convertInlineChildren(node)
	if err != nil {
		return Node{}, false, err
	}

	// The tree exposes four heading sizes; h5/h6 render at the smallest.
	level := node.Level
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}

	return s.overrideOr(
		OverrideInput{
			Kind:    NodeHeading,
			Level:   level,
			Text:    strings.TrimSpace(s.blockLines(node)),
			Content: content,
		},
		Node{
			Type: NodeHeading,
			Attrs: map[string]any{
				"level": level,
			},
			Content: content,
		},
	), true, nil
}

func (s *state) convertBlockquoteNode(node *ast.Blockquote) (Node, bool, error) {
	content, err := s.convertBlockChildren(node)
	if err != nil {
		return Node{}, false, err
	}

	return s.overrideOr(
		OverrideInput{Kind: NodeBlockquote, Content: content},
		Node{Type: NodeBlockquote, Content: content},
	), true, nil
}

func (s *state) convertFencedCodeBlockNode(node *ast.FencedCodeBlock) (Node, bool, error) {
	language := s.detectLanguage(string(node.Language(s.source)))
	textValue := strings.TrimRight(s.blockLines(node), "\n")

	return s.overrideOr(
		OverrideInput{
			Kind:     NodeCodeBlock,
			Language: language,
			Text:     textValue,
		},
		newCodeBlockNode(language, textValue),
	), true, nil
}

func (s *state) convertCodeBlockNode(node *ast.CodeBlock) (Node, bool, error) {
	textValue := strings.TrimRight(s.blockLines(node), "\n")

	return s.overrideOr(
		OverrideInput{
			Kind:     NodeCodeBlock,
			Language: defaultLanguage,
			Text:     textValue,
		},
		newCodeBlockNode(defaultLanguage, textValue),
	), true, nil
}

// detectLanguage extracts the language tag from a fence info string:
// the leading [A-Za-z0-9_]+ word, remapped through LanguageMap, with
// "text" as the fallback.
func (s *state) detectLanguage(info string) string {
	language := languageRe.FindString(strings.TrimSpace(info))
	if language == "" {
		language = defaultLanguage
	}
	if mapped, ok := s.config.LanguageMap[language]; ok {
		language = mapped
	}
	return language
}

func newCodeBlockNode(language, textValue string) Node {
	codeBlock := Node{
		Type: NodeCodeBlock,
		Attrs: map[string]any{
			"language": language,
		},
	}
	if textValue != "" {
		codeBlock.Content = []Node{
			newTextNode(textValue),
		}
	}
	return codeBlock
}
