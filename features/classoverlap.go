package features

import "sort"

// ClassOverlap returns the sorted intersection of two class-code sets.
func ClassOverlap(a, b []int) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(a))
	for _, c := range a {
		set[c] = struct{}{}
	}
	var shared []int
	seen := make(map[int]struct{}, len(b))
	for _, c := range b {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := set[c]; ok {
			shared = append(shared, c)
		}
	}
	sort.Ints(shared)
	return shared
}
