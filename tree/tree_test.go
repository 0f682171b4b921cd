package tree_test

import (
	"testing"

	"github.com/katalvlaran/algoprep/tree"
	"github.com/stretchr/testify/assert"
)

// sample builds the tree used across the traversal tests:
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
func sample() *tree.Node {
	return &tree.Node{
		Val: 1,
		Left: &tree.Node{
			Val:   2,
			Left:  &tree.Node{Val: 4},
			Right: &tree.Node{Val: 5},
		},
		Right: &tree.Node{
			Val:   3,
			Right: &tree.Node{Val: 6},
		},
	}
}

// TestDepthFirstOrders verifies the three recursive traversals.
func TestDepthFirstOrders(t *testing.T) {
	root := sample()

	assert.Equal(t, []int{1, 2, 4, 5, 3, 6}, tree.Preorder(root))
	assert.Equal(t, []int{4, 2, 5, 1, 3, 6}, tree.Inorder(root))
	assert.Equal(t, []int{4, 5, 2, 6, 3, 1}, tree.Postorder(root))
}

// TestTraversals verifies the combined helper matches the individual ones.
func TestTraversals(t *testing.T) {
	root := sample()
	in, pre, post := tree.Traversals(root)

	assert.Equal(t, tree.Inorder(root), in)
	assert.Equal(t, tree.Preorder(root), pre)
	assert.Equal(t, tree.Postorder(root), post)
}

// TestLevelOrder verifies per-level grouping and left-to-right order.
func TestLevelOrder(t *testing.T) {
	assert.Equal(t, [][]int{{1}, {2, 3}, {4, 5, 6}}, tree.LevelOrder(sample()))

	// right-leaning chain: one value per level
	chain := &tree.Node{Val: 1, Right: &tree.Node{Val: 2, Right: &tree.Node{Val: 3}}}
	assert.Equal(t, [][]int{{1}, {2}, {3}}, tree.LevelOrder(chain))

	assert.Equal(t, [][]int{{7}}, tree.LevelOrder(&tree.Node{Val: 7}))
}

// TestEmptyTree verifies nil-root behavior everywhere.
func TestEmptyTree(t *testing.T) {
	assert.Nil(t, tree.Preorder(nil))
	assert.Nil(t, tree.Inorder(nil))
	assert.Nil(t, tree.Postorder(nil))
	assert.Nil(t, tree.LevelOrder(nil))

	in, pre, post := tree.Traversals(nil)
	assert.Nil(t, in)
	assert.Nil(t, pre)
	assert.Nil(t, post)
}
