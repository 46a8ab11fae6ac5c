package forest

import (
	"errors"
	"strings"
)

// Node wraps one record and its ordered children.
// A Node is owned by exactly one parent; subtrees are never shared.
type Node[T any] struct {
	Item     T
	Children []*Node[T]
}

// Forest is an ordered sequence of root-level nodes.
type Forest[T any] []*Node[T]

// ErrSkipChildren may be returned by a Walk visitor to skip a node's subtree.
var ErrSkipChildren = errors.New("forest: skip children")

// Len returns the number of nodes in the subtree rooted at n, n included.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Len()
	}

	return total
}

// Height returns the number of levels in the subtree rooted at n.
// A leaf has height 1.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	h := 0
	for _, c := range n.Children {
		if ch := c.Height(); ch > h {
			h = ch
		}
	}

	return h + 1
}

// Len returns the total number of nodes in f.
func (f Forest[T]) Len() int {
	total := 0
	for _, n := range f {
		total += n.Len()
	}

	return total
}

// Height returns the height of the tallest tree in f.
func (f Forest[T]) Height() int {
	h := 0
	for _, n := range f {
		if nh := n.Height(); nh > h {
			h = nh
		}
	}

	return h
}

// Walk visits every node in pre-order, passing its level (0 for roots).
// Returning ErrSkipChildren skips the node's subtree; any other error aborts
// the walk and is returned.
func (f Forest[T]) Walk(fn func(n *Node[T], level int) error) error {
	for _, n := range f {
		if err := walk(n, 0, fn); err != nil {
			return err
		}
	}

	return nil
}

func walk[T any](n *Node[T], level int, fn func(*Node[T], int) error) error {
	if err := fn(n, level); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}

		return err
	}
	for _, c := range n.Children {
		if err := walk(c, level+1, fn); err != nil {
			return err
		}
	}

	return nil
}

// Flatten returns every item of f in pre-order.
func (f Forest[T]) Flatten() []T {
	out := make([]T, 0, f.Len())
	_ = f.Walk(func(n *Node[T], _ int) error {
		out = append(out, n.Item)
		return nil
	})

	return out
}

// Format renders f compactly as "[{a:[{b:[]}]},{c:[]}]" using label for items.
func (f Forest[T]) Format(label func(T) string) string {
	var sb strings.Builder
	format(&sb, f, label)

	return sb.String()
}

func format[T any](sb *strings.Builder, f Forest[T], label func(T) string) {
	sb.WriteByte('[')
	for i, n := range f {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('{')
		sb.WriteString(label(n.Item))
		sb.WriteByte(':')
		format(sb, Forest[T](n.Children), label)
		sb.WriteByte('}')
	}
	sb.WriteByte(']')
}
