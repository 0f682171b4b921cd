package postfix

import (
	"fmt"
	"math"
)

// EvalPostfix evaluates a postfix expression over float64 values.
//
// Digits evaluate to their own value; letters are looked up in vars
// (ErrUnboundVariable when absent).  Operator/operand imbalance —
// including empty input — returns ErrMalformed, unsupported characters
// return ErrBadToken.  Division by zero follows IEEE-754 (±Inf, NaN).
//
// Complexity: O(n) time, O(n) memory for the value stack.
func EvalPostfix(expr string, vars map[byte]float64) (float64, error) {
	stack := make([]float64, 0, len(expr))

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c >= '0' && c <= '9':
			stack = append(stack, float64(c-'0'))

		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			v, ok := vars[c]
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, c)
			}
			stack = append(stack, v)

		case isOperator(c):
			if len(stack) < 2 {
				return 0, fmt.Errorf("%w: operator %q at offset %d lacks operands", ErrMalformed, c, i)
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, apply(c, lhs, rhs))

		case c == ' ' || c == '\t':
			// skip

		default:
			return 0, fmt.Errorf("%w: %q at offset %d", ErrBadToken, c, i)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values remain after scan", ErrMalformed, len(stack))
	}

	return stack[0], nil
}

// EvalInfix converts expr to postfix and evaluates the result.
// Conversion options (WithCaretAssoc) determine how '^' chains group.
func EvalInfix(expr string, vars map[byte]float64, opts ...Option) (float64, error) {
	converted, err := FromInfix(expr, opts...)
	if err != nil {
		return 0, err
	}

	return EvalPostfix(converted, vars)
}

// apply computes lhs OP rhs for one of the five supported operators.
func apply(op byte, lhs, rhs float64) float64 {
	switch op {
	case '+':
		return lhs + rhs
	case '-':
		return lhs - rhs
	case '*':
		return lhs * rhs
	case '/':
		return lhs / rhs
	default: // '^'
		return math.Pow(lhs, rhs)
	}
}
