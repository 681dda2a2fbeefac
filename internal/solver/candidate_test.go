package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderByCountDesc(t *testing.T) {
	cases := []struct {
		name   string
		counts []int
		want   []int
	}{
		{
			name:   "distinct",
			counts: []int{1, 5, 3, 0, 2, 4},
			want:   []int{1, 5, 2, 4, 0, 3},
		},
		{
			// Equal counts keep alphabet order.
			name:   "ties_stable",
			counts: []int{1, 1, 1, 0, 0, 0},
			want:   []int{0, 1, 2, 3, 4, 5},
		},
		{
			name:   "mixed_ties",
			counts: []int{0, 2, 2, 1, 0, 1},
			want:   []int{1, 2, 3, 5, 0, 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := orderByCountDesc(tc.counts)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("orderByCountDesc(%v) mismatch (-want +got):\n%s", tc.counts, diff)
			}
		})
	}
}

func TestBuildInitialCandidate(t *testing.T) {
	a := DefaultAlphabet

	cases := []struct {
		name   string
		counts []int
		n      int
		want   string
	}{
		{
			name:   "blocks_by_frequency",
			counts: []int{1, 3, 2, 0, 0, 0},
			n:      6,
			want:   "AAACCB",
		},
		{
			name:   "tie_prefers_alphabet_order",
			counts: []int{1, 1, 1, 0, 0, 0},
			n:      3,
			want:   "BAC",
		},
		{
			// Under-filled counts pad with the first symbol.
			name:   "padding",
			counts: []int{0, 2, 0, 0, 0, 0},
			n:      4,
			want:   "AABB",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := string(buildInitialCandidate(a, tc.counts, tc.n))
			if got != tc.want {
				t.Fatalf("buildInitialCandidate(%v, %d) = %q, want %q", tc.counts, tc.n, got, tc.want)
			}
		})
	}
}
