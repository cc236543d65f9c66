// internal/tree/tree.go
package tree

// Node is one vertex of a Tree.
type Node[T any] struct {
	Value    T
	Children []*Node[T]
}

func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Add attaches child under n.
func (n *Node[T]) Add(child *Node[T]) {
	n.Children = append(n.Children, child)
}

// Tree tracks its root together with the number of levels discovered so
// far. A freshly built tree has depth 1: just the root.
type Tree[T any] struct {
	Root  *Node[T]
	Depth int
}

func New[T any](root T) *Tree[T] {
	return &Tree[T]{Root: NewNode(root), Depth: 1}
}

// Walk visits every value in breadth-first order, siblings in insertion
// order.
func (t *Tree[T]) Walk(fn func(T)) {
	q := NewQueue[*Node[T]]()
	q.Push(t.Root)
	for {
		n, ok := q.Pop()
		if !ok {
			return
		}
		for _, child := range n.Children {
			q.Push(child)
		}
		fn(n.Value)
	}
}

// Size counts the nodes in the tree.
func (t *Tree[T]) Size() int {
	count := 0
	t.Walk(func(T) { count++ })
	return count
}
