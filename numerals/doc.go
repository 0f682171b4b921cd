// Package numerals implements positional-numeral exercises: decoding
// spreadsheet column titles (bijective base 26) and adding binary
// numbers represented as strings.
//
// Both routines are strict about their alphabets — a character outside
// A..Z or 0/1 respectively is an error, never a silent wrap.
package numerals
