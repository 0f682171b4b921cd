// Package postfix converts infix arithmetic expressions to postfix
// (Reverse Polish) notation and evaluates the results.
//
// 🚀 What is postfix notation?
//
//	In postfix form every operator follows its operands: "a+b*c"
//	becomes "abc*+".  No parentheses are needed, and evaluation is a
//	single left-to-right pass over the expression with one value stack.
//	It is the classic warm-up for operator-precedence parsing and the
//	execution model of many stack machines.
//
// ✨ Key features:
//   - single-scan shunting conversion with one auxiliary operator stack
//   - fixed precedence table: ^ (5), * / (4), + - (3)
//   - strict validation: unbalanced parentheses and unsupported
//     characters surface as sentinel errors instead of garbage output
//   - configurable associativity for '^' (left by convention here,
//     right via WithCaretAssoc(AssocRight))
//   - postfix and infix evaluators for verifying conversions
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algoprep/postfix"
//
//	out, err := postfix.FromInfix("(a+b)*c")
//	// out == "ab+c*"
//
//	val, err := postfix.EvalPostfix("ab+c*", map[byte]float64{
//	  'a': 1, 'b': 2, 'c': 3,
//	})
//	// val == 9
//
// Operands are single characters: letters bind through the variable
// map, digits bind to their own numeric value.  Whitespace between
// tokens is ignored.
//
// Performance:
//
//   - Time:   O(n) — every character is pushed and popped at most once
//   - Memory: O(n) — operator stack plus output buffer
package postfix
