package arrays

import "errors"

// Sentinel errors for scanning routines.
var (
	// ErrEmptyInput is returned when a routine that needs at least one
	// element receives an empty slice.
	ErrEmptyInput = errors.New("arrays: empty input")

	// ErrNoSecondLargest is returned when every element equals the
	// maximum, so no strictly smaller value exists.
	ErrNoSecondLargest = errors.New("arrays: no second largest element")
)

// Largest returns the maximum element of nums in one pass.
// Returns ErrEmptyInput for an empty slice.
func Largest(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	best := nums[0]
	for _, v := range nums[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// SecondLargest returns the largest value strictly smaller than the
// maximum, using a single two-champion scan.
// Returns ErrEmptyInput for fewer than two elements and
// ErrNoSecondLargest when all elements are equal.
func SecondLargest(nums []int) (int, error) {
	if len(nums) < 2 {
		return 0, ErrEmptyInput
	}
	best := nums[0]
	second, haveSecond := 0, false
	for _, v := range nums[1:] {
		switch {
		case v > best:
			second, haveSecond = best, true
			best = v
		case v < best && (!haveSecond || v > second):
			second, haveSecond = v, true
		}
	}
	if !haveSecond {
		return 0, ErrNoSecondLargest
	}

	return second, nil
}

// Leaders returns every element that is ≥ all elements to its right,
// in original order.  The rightmost element is always a leader.
//
// A right-to-left suffix-maximum scan makes this O(n) instead of the
// naive O(n²) pairwise comparison.
func Leaders(nums []int) []int {
	if len(nums) == 0 {
		return nil
	}
	// collect leaders right to left against the running suffix max
	out := make([]int, 0, 4)
	suffixMax := nums[len(nums)-1]
	out = append(out, suffixMax)
	for i := len(nums) - 2; i >= 0; i-- {
		if nums[i] >= suffixMax {
			suffixMax = nums[i]
			out = append(out, suffixMax)
		}
	}
	// restore original order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Majority returns the element occurring more than len(nums)/2 times
// using Boyer–Moore voting: a candidate pass followed by a counting
// pass to confirm the majority actually exists.
// The second return is false when no majority element exists.
func Majority(nums []int) (int, bool) {
	if len(nums) == 0 {
		return 0, false
	}
	// 1. Voting pass: the majority element, if any, survives
	candidate, count := nums[0], 0
	for _, v := range nums {
		switch {
		case count == 0:
			candidate, count = v, 1
		case v == candidate:
			count++
		default:
			count--
		}
	}
	// 2. Verification pass
	count = 0
	for _, v := range nums {
		if v == candidate {
			count++
		}
	}
	if count <= len(nums)/2 {
		return 0, false
	}

	return candidate, true
}

// MaxSubarraySum returns the maximum sum over all non-empty contiguous
// subarrays (Kadane's algorithm): keep a running sum, reset it to zero
// whenever it goes negative, and track the best prefix seen.
// Returns ErrEmptyInput for an empty slice.
func MaxSubarraySum(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}
	best := nums[0]
	sum := 0
	for _, v := range nums {
		sum += v
		if sum > best {
			best = sum
		}
		if sum < 0 {
			sum = 0
		}
	}

	return best, nil
}
