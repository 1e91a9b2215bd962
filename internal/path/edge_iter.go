package path

import "iter"

// EdgePairs yields the index pairs (prev, cur) of a closed polyline with n
// points, starting with (n-1, 0) and ending with (n-2, n-1).
//
// Callers read the point at prev into a local copy before mutating the
// point at cur, so no two references into the arena are held at once.
func EdgePairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if n == 0 {
			return
		}
		prev := n - 1
		for cur := 0; cur < n; cur++ {
			if !yield(prev, cur) {
				return
			}
			prev = cur
		}
	}
}
