// Package postfix defines options and error values for infix→postfix
// conversion and expression evaluation.
package postfix

import "errors"

// Sentinel errors for conversion and evaluation.
var (
	// ErrUnbalancedParen is returned when a ')' has no matching '('
	// or a '(' is still pending when the input ends.
	ErrUnbalancedParen = errors.New("postfix: unbalanced parenthesis")

	// ErrBadToken is returned for any character outside the supported
	// alphabet (letters, digits, + - * / ^, parentheses, whitespace).
	ErrBadToken = errors.New("postfix: unsupported token")

	// ErrMalformed is returned by the evaluators when operand and
	// operator counts do not line up (value-stack underflow, or
	// leftover values after the scan).
	ErrMalformed = errors.New("postfix: malformed expression")

	// ErrUnboundVariable is returned by the evaluators when a letter
	// operand has no entry in the variable map.
	ErrUnboundVariable = errors.New("postfix: unbound variable")
)

// Assoc selects how operators of equal precedence group.
type Assoc int

const (
	// AssocLeft groups equal-precedence operators left to right
	// (a^b^c parses as (a^b)^c).
	AssocLeft Assoc = iota

	// AssocRight groups right to left (a^b^c parses as a^(b^c)),
	// the usual mathematical convention for exponentiation.
	AssocRight
)

// Option configures conversion behavior via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of FromInfix.
type Options struct {
	// CaretAssoc controls how chains of '^' associate.  The default
	// is AssocLeft, matching the classical textbook formulation of
	// the algorithm; use AssocRight for mathematical exponentiation.
	// All other operators are always left-associative.
	CaretAssoc Assoc
}

// DefaultOptions returns Options with left-associative '^'.
func DefaultOptions() Options {
	return Options{CaretAssoc: AssocLeft}
}

// WithCaretAssoc sets the associativity used for the '^' operator.
func WithCaretAssoc(a Assoc) Option {
	return func(o *Options) { o.CaretAssoc = a }
}
