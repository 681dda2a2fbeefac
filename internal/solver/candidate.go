package solver

import "sort"

// orderByCountDesc returns alphabet indices sorted by descending count.
// Ties keep alphabet order, so the ordering is fully deterministic.
func orderByCountDesc(counts []int) []int {
	idx := make([]int, len(counts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return counts[idx[i]] > counts[idx[j]]
	})
	return idx
}

// buildInitialCandidate lays out each symbol's full frequency count as a
// contiguous block, most frequent first. The largest block then occupies
// the lowest positions, which guarantees at least that many baseline
// matches since the secret is a permutation of the same multiset.
func buildInitialCandidate(a Alphabet, counts []int, n int) []byte {
	candidate := make([]byte, 0, n)
	for _, idx := range orderByCountDesc(counts) {
		for k := 0; k < counts[idx] && len(candidate) < n; k++ {
			candidate = append(candidate, a[idx])
		}
	}
	// Pad with the first symbol if counts under-fill n. Cannot happen
	// once the frequency sum check passed.
	for len(candidate) < n {
		candidate = append(candidate, a[0])
	}
	return candidate
}
