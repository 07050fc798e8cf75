package renderer

import (
	"github.com/yuin/goldmark/ast"
)

func (s *state) convertListNode(node *ast.List) (Node, bool, error) {
	listNode := Node{
		Type: NodeBulletList,
	}
	if node.IsOrdered() {
		listNode.Type = NodeOrderedList
		if node.Start > 0 {
			listNode.Attrs = map[string]any{
				"start": node.Start,
			}
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		itemNode, ok, err := s.convertListItemNode(child)
		if err != nil {
			return Node{}, false, err
		}
		if ok && itemNode.Type != "" {
			listNode.Content = append(listNode.Content, itemNode)
		}
	}

	if len(listNode.Content) == 0 {
		return Node{}, false, nil
	}

	return s.overrideOr(
		OverrideInput{Kind: listNode.Type, Content: listNode.Content},
		listNode,
	), true, nil
}

// convertListItemNode maps one list item. Task-list checkboxes appear
// as the first inline child of the item's leading paragraph and are
// handled by the inline walk, so an item needs no special casing here.
func (s *state) convertListItemNode(node ast.Node) (Node, bool, error) {
	listItem, ok := node.(*ast.ListItem)
	if !ok {
		return Node{}, false, nil
	}

	content, err := s.convertBlockChildren(listItem)
	if err != nil {
		return Node{}, false, err
	}

	return s.overrideOr(
		OverrideInput{Kind: NodeListItem, Content: content},
		Node{Type: NodeListItem, Content: content},
	), true, nil
}
