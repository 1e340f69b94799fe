package sheet

import "github.com/google/btree"

// fillCounter tracks, per row or per column, how many non-empty cells it
// currently holds. Invariant 6 requires a zero counter to be removed
// entirely, and §4.5 requires PrintableSize to answer in O(log n); a plain
// Go map gives the former for free but not the latter (it has no ordering),
// so the set of indices with a non-zero count is mirrored into a
// google/btree ordered tree purely to make Max() cheap — the counts
// themselves still live in the map.
type fillCounter struct {
	counts map[int]int
	index  *btree.BTreeG[int]
}

func newFillCounter() *fillCounter {
	return &fillCounter{
		counts: make(map[int]int),
		index:  btree.NewG(32, func(a, b int) bool { return a < b }),
	}
}

// inc increments the counter for key, inserting it into the ordered index
// on the 0->1 transition.
func (f *fillCounter) inc(key int) {
	if f.counts[key] == 0 {
		f.index.ReplaceOrInsert(key)
	}
	f.counts[key]++
}

// dec decrements the counter for key, removing it from both the map and
// the ordered index on the 1->0 transition.
func (f *fillCounter) dec(key int) {
	f.counts[key]--
	if f.counts[key] <= 0 {
		delete(f.counts, key)
		f.index.Delete(key)
	}
}

// max returns the largest key with a non-zero count, in O(log n).
func (f *fillCounter) max() (int, bool) {
	return f.index.Max()
}

// empty reports whether no key currently has a non-zero count.
func (f *fillCounter) empty() bool {
	return f.index.Len() == 0
}
