package numerals_test

import (
	"testing"

	"github.com/katalvlaran/algoprep/numerals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColumnNumber covers single letters, carries across positions,
// and the validation policy.
func TestColumnNumber(t *testing.T) {
	cases := []struct {
		title string
		want  int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"ZY", 701},
		{"FXSHRXW", 2147483647},
	}
	for _, tc := range cases {
		got, err := numerals.ColumnNumber(tc.title)
		require.NoError(t, err, "title %q", tc.title)
		assert.Equal(t, tc.want, got, "title %q", tc.title)
	}

	_, err := numerals.ColumnNumber("")
	assert.ErrorIs(t, err, numerals.ErrBadColumn)

	_, err = numerals.ColumnNumber("Aa")
	assert.ErrorIs(t, err, numerals.ErrBadColumn, "lowercase is rejected, not folded")
}

// TestAddBinary covers carries, length mismatch, zeros, and validation.
func TestAddBinary(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"11", "1", "100"},
		{"1010", "1011", "10101"},
		{"0", "0", "0"},
		{"1", "", "1"},
		{"", "", "0"},
		{"1111", "1111", "11110"},
	}
	for _, tc := range cases {
		got, err := numerals.AddBinary(tc.a, tc.b)
		require.NoError(t, err, "%q + %q", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "%q + %q", tc.a, tc.b)
	}

	_, err := numerals.AddBinary("102", "1")
	assert.ErrorIs(t, err, numerals.ErrBadDigit)

	_, err = numerals.AddBinary("1", "x")
	assert.ErrorIs(t, err, numerals.ErrBadDigit)
}
