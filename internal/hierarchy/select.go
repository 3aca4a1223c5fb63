package hierarchy

import (
	"github.com/cleared-dev/ledgertree/internal/model"
)

// Project derives the partial classification path for a selected node.
// Fields for depths 0..node.Depth come from the node's snapshot; deeper
// fields are null even when the snapshot carries values from its
// originating row. A selected tenant ledger becomes the parent of whatever
// is created under it.
func Project(node *model.TreeNode) model.Selection {
	sel := model.Selection{Value: node.Name, Depth: node.Depth}

	fields := [...]**string{
		&sel.Category,
		&sel.Group,
		&sel.SubGroup1,
		&sel.SubGroup2,
		&sel.SubGroup3,
		&sel.LedgerType,
	}
	for depth := 0; depth < len(fields) && depth <= node.Depth; depth++ {
		v := node.FullPath.Field(depth)
		*fields[depth] = &v
	}

	if node.IsCustom && node.LedgerID != nil {
		sel.ParentLedgerID = model.Int64(*node.LedgerID)
	}
	return sel
}

// Find returns the node reached by following names from the roots.
func Find(roots []*model.TreeNode, names ...string) (*model.TreeNode, bool) {
	if len(names) == 0 {
		return nil, false
	}

	var cur *model.TreeNode
	for _, r := range roots {
		if r.Name == names[0] {
			cur = r
			break
		}
	}
	if cur == nil {
		return nil, false
	}

	for _, name := range names[1:] {
		next, ok := cur.Child(name)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits every node depth-first in child order. Returning false from
// fn skips the node's children.
func Walk(roots []*model.TreeNode, fn func(n *model.TreeNode) bool) {
	for _, r := range roots {
		if fn(r) {
			Walk(r.Children, fn)
		}
	}
}

// Count returns the number of nodes in the forest.
func Count(roots []*model.TreeNode) int {
	n := 0
	Walk(roots, func(*model.TreeNode) bool {
		n++
		return true
	})
	return n
}
