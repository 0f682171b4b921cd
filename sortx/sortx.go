package sortx

import (
	"errors"
	"fmt"
)

// ErrBadValue is returned by DutchFlag for elements outside {0, 1, 2}.
var ErrBadValue = errors.New("sortx: value outside {0,1,2}")

// Selection sorts nums in place with selection sort: for each position,
// find the minimum of the unsorted suffix and swap it into place.
//
// Complexity: O(n²) comparisons, O(1) memory, at most n-1 swaps.
func Selection(nums []int) {
	n := len(nums)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if nums[j] < nums[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			nums[i], nums[minIdx] = nums[minIdx], nums[i]
		}
	}
}

// DutchFlag sorts a slice of 0s, 1s, and 2s in place with a single
// three-pointer pass: low and mid start at the front, high at the
// back; 0s swap below low, 2s swap above high, 1s stay put.
//
// Returns ErrBadValue (and leaves the slice partially reordered) when
// an element outside {0,1,2} is encountered.
//
// Complexity: O(n) time, O(1) memory, one pass.
func DutchFlag(nums []int) error {
	low, mid, high := 0, 0, len(nums)-1
	for mid <= high {
		switch nums[mid] {
		case 0:
			nums[low], nums[mid] = nums[mid], nums[low]
			low++
			mid++
		case 1:
			mid++
		case 2:
			nums[mid], nums[high] = nums[high], nums[mid]
			high--
		default:
			return fmt.Errorf("%w: %d at index %d", ErrBadValue, nums[mid], mid)
		}
	}

	return nil
}
