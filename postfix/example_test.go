package postfix_test

import (
	"fmt"

	"github.com/katalvlaran/algoprep/postfix"
)

// ExampleFromInfix demonstrates a plain conversion with precedence
// and parentheses in play.
func ExampleFromInfix() {
	for _, expr := range []string{"a+b*c", "(a+b)*c", "a+b+c"} {
		out, err := postfix.FromInfix(expr)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s → %s\n", expr, out)
	}
	// Output:
	// a+b*c → abc*+
	// (a+b)*c → ab+c*
	// a+b+c → ab+c+
}

// ExampleFromInfix_caretAssociativity shows both treatments of '^'.
func ExampleFromInfix_caretAssociativity() {
	left, _ := postfix.FromInfix("a^b^c")
	right, _ := postfix.FromInfix("a^b^c", postfix.WithCaretAssoc(postfix.AssocRight))
	fmt.Println(left)
	fmt.Println(right)
	// Output:
	// ab^c^
	// abc^^
}

// ExampleEvalInfix converts and evaluates in one step.
func ExampleEvalInfix() {
	vars := map[byte]float64{'a': 1, 'b': 2, 'c': 3}
	val, err := postfix.EvalInfix("(a+b)*c", vars)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(val)
	// Output:
	// 9
}
