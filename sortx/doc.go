// Package sortx holds sorting exercises implemented for their own
// sake: selection sort and the Dutch national flag three-way
// partition.  These are teaching routines, not replacements for the
// standard library's sort — selection sort is deliberately O(n²).
//
// Both routines sort in place; callers that need the original order
// must copy first.
package sortx
