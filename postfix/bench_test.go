package postfix_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/algoprep/postfix"
)

// buildChain returns an operator chain "a+b*c^d..." of n operands.
func buildChain(n int) string {
	rnd := rand.New(rand.NewSource(42))
	ops := []byte{'+', '-', '*', '/', '^'}
	var sb strings.Builder
	sb.Grow(2 * n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(ops[rnd.Intn(len(ops))])
		}
		sb.WriteByte(byte('a' + rnd.Intn(26)))
	}

	return sb.String()
}

// buildNested returns a fully parenthesized left-leaning expression
// of n operands: "(((a+b)+c)+d)...".
func buildNested(n int) string {
	var sb strings.Builder
	sb.Grow(4 * n)
	for i := 1; i < n; i++ {
		sb.WriteByte('(')
	}
	sb.WriteByte('a')
	for i := 1; i < n; i++ {
		sb.WriteByte('+')
		sb.WriteByte(byte('a' + i%26))
		sb.WriteByte(')')
	}

	return sb.String()
}

// BenchmarkFromInfix_Chain measures conversion of a flat operator chain.
func BenchmarkFromInfix_Chain(b *testing.B) {
	expr := buildChain(1 << 12)

	b.ReportAllocs()
	b.SetBytes(int64(len(expr)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = postfix.FromInfix(expr)
	}
}

// BenchmarkFromInfix_Nested measures conversion of deep parenthesization.
func BenchmarkFromInfix_Nested(b *testing.B) {
	expr := buildNested(1 << 10)

	b.ReportAllocs()
	b.SetBytes(int64(len(expr)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = postfix.FromInfix(expr)
	}
}

// BenchmarkEvalPostfix measures evaluation of a converted chain of digits.
func BenchmarkEvalPostfix(b *testing.B) {
	rnd := rand.New(rand.NewSource(7))
	var sb strings.Builder
	for i := 0; i < 1<<12; i++ {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteByte(byte('1' + rnd.Intn(9)))
	}
	converted, err := postfix.FromInfix(sb.String())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(converted)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = postfix.EvalPostfix(converted, nil)
	}
}
