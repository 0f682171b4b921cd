// Package tree implements binary-tree traversal exercises: the three
// recursive depth-first orders (preorder, inorder, postorder), a
// combined helper returning all three, and queue-driven level-order
// traversal with per-level grouping.
//
// Trees are plain Node pointers with no parent links or bookkeeping;
// a nil root is a valid empty tree everywhere.
//
// Complexity: every traversal is O(n) time and O(h) memory for the
// recursion stack (O(w) queue memory for LevelOrder, where w is the
// widest level).
package tree
