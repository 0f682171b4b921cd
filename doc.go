// Package algoprep is a collection of classic interview-prep and
// competitive-programming exercises, each implemented as a standalone,
// independently testable Go package.
//
// 🚀 What is algoprep?
//
//	A library of textbook algorithms solved the way they are asked:
//		• Expression parsing: infix → postfix conversion + evaluators
//		• Array scans: Kadane, leaders, majority vote, longest run
//		• Sorting drills: selection sort, Dutch national flag
//		• Linked lists: k-group reversal, nth-from-end, digit addition
//		• Binary trees: the three DFS orders + level-order batching
//		• Container adaptation: stack over queues, queue over a list
//		• Constructive matrices: row/col-sum restore, ordering conditions
//		• Numerals: bijective base-26 columns, binary string addition
//
// ✨ Why choose algoprep?
//
//   - One exercise, one function – no framework, no shared state
//   - Strict by default – malformed input surfaces as sentinel errors,
//     never as garbage output
//   - Pure Go – no cgo, no hidden deps
//   - Every routine documents its complexity and is covered by tests
//
// Under the hood, everything is organized per exercise family:
//
//	postfix/  — infix → postfix conversion and expression evaluation
//	arrays/   — single-pass scanning exercises over integer slices
//	sortx/    — sorting exercises (selection sort, Dutch flag)
//	list/     — singly-linked-list pointer exercises
//	tree/     — binary-tree traversal exercises
//	adapt/    — container-adaptation exercises
//	matrices/ — constructive matrix exercises
//	numerals/ — positional-numeral exercises
//
// Quick example:
//
//	out, err := postfix.FromInfix("(a+b)*c")
//	// out == "ab+c*"
//
// Every package stands alone: import exactly what the exercise needs.
//
//	go get github.com/katalvlaran/algoprep
package algoprep
