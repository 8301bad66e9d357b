// Package treeview rebuilds parent/child hierarchies from the flat lists
// the CMS reports for folders and datasets.
package treeview

// Node wraps one input item together with its resolved children.
type Node[T any] struct {
	Item     T          `json:"item"`
	Children []*Node[T] `json:"children"`
}

// Build converts a flat list into a forest of root nodes. id and parentID
// extract the item's identifier and its parent's identifier. Items whose
// parent is absent from the input (or is the item itself) become roots.
// Child order follows input order; the function is pure and deterministic.
func Build[T any](items []T, id func(T) int, parentID func(T) int) []*Node[T] {
	nodes := make(map[int]*Node[T], len(items))
	ordered := make([]*Node[T], len(items))
	for i, item := range items {
		n := &Node[T]{Item: item, Children: []*Node[T]{}}
		nodes[id(item)] = n
		ordered[i] = n
	}

	var roots []*Node[T]
	for i, item := range items {
		pid := parentID(item)
		parent, ok := nodes[pid]
		if !ok || pid == id(item) {
			roots = append(roots, ordered[i])
			continue
		}
		parent.Children = append(parent.Children, ordered[i])
	}
	return roots
}
