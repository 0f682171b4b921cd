package tree

// Node is one vertex of a binary tree.
type Node struct {
	Val         int
	Left, Right *Node
}

// Preorder returns node values in root → left → right order.
func Preorder(root *Node) []int {
	var out []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n.Val)
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return out
}

// Inorder returns node values in left → root → right order.
func Inorder(root *Node) []int {
	var out []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Val)
		walk(n.Right)
	}
	walk(root)

	return out
}

// Postorder returns node values in left → right → root order.
func Postorder(root *Node) []int {
	var out []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		walk(n.Right)
		out = append(out, n.Val)
	}
	walk(root)

	return out
}

// Traversals returns the inorder, preorder, and postorder sequences of
// root in one call, in that order.
func Traversals(root *Node) (in, pre, post []int) {
	return Inorder(root), Preorder(root), Postorder(root)
}

// LevelOrder returns node values grouped by depth, shallowest first.
// Each inner slice holds one level left to right.  A nil root yields
// a nil result.
//
// The frontier queue is drained one full level at a time: the queue
// length at loop entry is exactly the size of the current level.
func LevelOrder(root *Node) [][]int {
	if root == nil {
		return nil
	}

	var out [][]int
	queue := []*Node{root}
	for len(queue) > 0 {
		level := make([]int, 0, len(queue))
		next := make([]*Node, 0, 2*len(queue))
		for _, n := range queue {
			level = append(level, n.Val)
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		out = append(out, level)
		queue = next
	}

	return out
}
