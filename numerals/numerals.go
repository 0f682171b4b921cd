package numerals

import (
	"errors"
	"fmt"
)

// Sentinel errors for numeral decoding.
var (
	// ErrBadColumn is returned for an empty title or characters
	// outside A..Z.
	ErrBadColumn = errors.New("numerals: invalid column title")

	// ErrBadDigit is returned for characters outside 0 and 1.
	ErrBadDigit = errors.New("numerals: invalid binary digit")
)

// ColumnNumber decodes a spreadsheet column title into its 1-based
// index: "A"→1, "Z"→26, "AA"→27.  This is bijective base 26 — there
// is no zero digit, so each position contributes (c-'A'+1)·26^pos.
//
// Returns ErrBadColumn for empty input or non-A..Z characters.
func ColumnNumber(title string) (int, error) {
	if title == "" {
		return 0, fmt.Errorf("%w: empty title", ErrBadColumn)
	}
	out := 0
	for i := 0; i < len(title); i++ {
		c := title[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrBadColumn, c, i)
		}
		out = out*26 + int(c-'A'+1)
	}

	return out, nil
}

// AddBinary adds two binary numbers given as strings and returns the
// sum in the same form, most significant bit first.
//
// Ripple carry from the right: digits are summed pairwise with the
// carry, the result is built backwards and reversed once at the end.
// An empty operand reads as zero.  Returns ErrBadDigit for characters
// outside 0 and 1.
func AddBinary(a, b string) (string, error) {
	if a == "" && b == "" {
		return "0", nil
	}

	buf := make([]byte, 0, max(len(a), len(b))+1)
	carry := byte(0)
	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0; i, j = i-1, j-1 {
		sum := carry
		if i >= 0 {
			if a[i] != '0' && a[i] != '1' {
				return "", fmt.Errorf("%w: %q at offset %d", ErrBadDigit, a[i], i)
			}
			sum += a[i] - '0'
		}
		if j >= 0 {
			if b[j] != '0' && b[j] != '1' {
				return "", fmt.Errorf("%w: %q at offset %d", ErrBadDigit, b[j], j)
			}
			sum += b[j] - '0'
		}
		buf = append(buf, '0'+sum%2)
		carry = sum / 2
	}
	if carry != 0 {
		buf = append(buf, '1')
	}

	// reverse into most-significant-first order
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}
