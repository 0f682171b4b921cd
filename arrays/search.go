package arrays

import "sort"

// LongestConsecutive returns the length of the longest run of
// consecutive integers contained in nums, in any order.
//
// Each value goes into a set; only run starts (values whose
// predecessor is absent) are expanded, so every element is visited at
// most twice.  O(n) time, O(n) memory.
func LongestConsecutive(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	seen := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		seen[v] = struct{}{}
	}

	longest := 1
	for v := range seen {
		if _, ok := seen[v-1]; ok {
			continue // not a run start
		}
		length := 1
		for x := v; ; x++ {
			if _, ok := seen[x+1]; !ok {
				break
			}
			length++
		}
		if length > longest {
			longest = length
		}
	}

	return longest
}

// IsSortedRotated reports whether nums is a non-decreasing sequence
// rotated by some offset (possibly zero).  A single circular pass
// counts descents; a rotated sorted array has at most one, at the
// rotation point.
func IsSortedRotated(nums []int) bool {
	n := len(nums)
	descents := 0
	for i := 0; i < n; i++ {
		if nums[i] > nums[(i+1)%n] {
			descents++
		}
	}

	return descents <= 1
}

// Floor returns the largest element of the sorted slice ≤ x.
// The second return is false when every element exceeds x.
func Floor(sorted []int, x int) (int, bool) {
	// first index with sorted[i] > x; floor sits just before it
	i := sort.SearchInts(sorted, x+1)
	if i == 0 {
		return 0, false
	}

	return sorted[i-1], true
}

// Ceil returns the smallest element of the sorted slice ≥ x.
// The second return is false when every element is below x.
func Ceil(sorted []int, x int) (int, bool) {
	i := sort.SearchInts(sorted, x)
	if i == len(sorted) {
		return 0, false
	}

	return sorted[i], true
}
