package postfix

import (
	"fmt"
	"strings"
)

// precedence ranks the supported binary operators.  Higher pops first.
// The table is fixed for every invocation; nothing mutates it.
var precedence = map[byte]int{
	'^': 5,
	'*': 4,
	'/': 4,
	'+': 3,
	'-': 3,
}

// FromInfix converts a well-formed infix expression with
// single-character operands into its postfix equivalent.
//
// Algorithm (single left-to-right scan):
//  1. Operands (letters, digits) go straight to the output.
//  2. '(' is pushed unconditionally.
//  3. ')' pops operators to the output until the matching '('.
//  4. An operator pops every stacked operator of greater precedence —
//     and of equal precedence when the incoming operator is
//     left-associative — then pushes itself.
//  5. After the scan the stack is drained to the output.
//
// Whitespace is skipped.  Unbalanced parentheses return
// ErrUnbalancedParen; any other unsupported character returns
// ErrBadToken.  Empty input yields empty output.
//
// Complexity:
//
//   - Time:   O(n) — each character is pushed/popped at most once
//   - Memory: O(n) — operator stack plus output buffer
func FromInfix(expr string, opts ...Option) (string, error) {
	// 1. Resolve options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Call-local state: operator stack and output buffer
	stack := make([]byte, 0, len(expr))
	var out strings.Builder
	out.Grow(len(expr))

	// 3. Scan the input once
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case isOperand(c):
			out.WriteByte(c)

		case c == '(':
			stack = append(stack, c)

		case c == ')':
			// pop to the matching '('
			for len(stack) > 0 && stack[len(stack)-1] != '(' {
				out.WriteByte(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return "", fmt.Errorf("%w: ')' at offset %d has no '('", ErrUnbalancedParen, i)
			}
			stack = stack[:len(stack)-1] // discard '('

		case isOperator(c):
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top == '(' || !o.popsBefore(top, c) {
					break
				}
				out.WriteByte(top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, c)

		case c == ' ' || c == '\t':
			// token separator, nothing to emit

		default:
			return "", fmt.Errorf("%w: %q at offset %d", ErrBadToken, c, i)
		}
	}

	// 4. Drain remaining operators
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == '(' {
			return "", fmt.Errorf("%w: '(' never closed", ErrUnbalancedParen)
		}
		out.WriteByte(top)
	}

	return out.String(), nil
}

// popsBefore reports whether the stacked operator top must be emitted
// before the incoming operator is pushed.
func (o Options) popsBefore(top, incoming byte) bool {
	pt, pi := precedence[top], precedence[incoming]
	if pt != pi {
		return pt > pi
	}
	// equal precedence: only a right-associative incoming '^' waits
	if incoming == '^' && o.CaretAssoc == AssocRight {
		return false
	}

	return true
}

// isOperand reports whether c is a single-character operand.
func isOperand(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// isOperator reports whether c is one of the five supported operators.
func isOperator(c byte) bool {
	_, ok := precedence[c]
	return ok
}
