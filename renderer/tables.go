package renderer

import (
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func (s *state) convertTableNode(node *extast.Table) (Node, bool, error) {
	table := Node{
		Type: NodeTable,
	}

	for row := node.FirstChild(); row != nil; row = row.NextSibling() {
		converted, ok, err := s.convertTableRowNode(row)
		if err != nil {
			return Node{}, false, err
		}
		if ok && converted.Type != "" {
			table.Content = append(table.Content, converted)
		}
	}

	if len(table.Content) == 0 {
		return Node{}, false, nil
	}

	return s.overrideOr(
		OverrideInput{Kind: NodeTable, Content: table.Content},
		table,
	), true, nil
}

func (s *state) convertTableRowNode(node ast.Node) (Node, bool, error) {
	row := Node{
		Type: NodeTableRow,
	}

	isHeader := false
	switch node.(type) {
	case *extast.TableHeader:
		isHeader = true
	case *extast.TableRow:
	default:
		return Node{}, false, nil
	}

	for cell := node.FirstChild(); cell != nil; cell = cell.NextSibling() {
		converted, ok, err := s.convertTableCellNode(cell, isHeader)
		if err != nil {
			return Node{}, false, err
		}
		if ok && converted.Type != "" {
			row.Content = append(row.Content, converted)
		}
	}

	if len(row.Content) == 0 {
		return Node{}, false, nil
	}

	return s.overrideOr(
		OverrideInput{Kind: NodeTableRow, Content: row.Content},
		row,
	), true, nil
}

func (s *state) convertTableCellNode(node ast.Node, isHeader bool) (Node, bool, error) {
	cell, ok := node.(*extast.TableCell)
	if !ok {
		return Node{}, false, nil
	}

	cellType := NodeTableCell
	if isHeader {
		cellType = NodeTableHeader
	}

	content, err := s.convertInlineChildren(cell)
	if err != nil {
		return Node{}, false, err
	}

	cellNode := Node{
		Type:    cellType,
		Content: content,
	}

	alignment := ""
	if cell.Alignment != extast.AlignNone {
		alignment = cell.Alignment.String()
		cellNode.Attrs = map[string]any{
			"alignment": alignment,
		}
	}

	return s.overrideOr(
		OverrideInput{Kind: cellType, Alignment: alignment, Content: content},
		cellNode,
	), true, nil
}
