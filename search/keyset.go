package search

import "math/bits"

// KeySet is the set of collected keys, one bit per key letter ('a' is bit 0).
type KeySet uint32

// Has reports whether key bit b is in the set.
func (k KeySet) Has(b int) bool { return k&(1<<uint(b)) != 0 }

// With returns the set plus key bit b.
func (k KeySet) With(b int) KeySet { return k | 1<<uint(b) }

// Count returns the number of keys held.
func (k KeySet) Count() int { return bits.OnesCount32(uint32(k)) }

// String lists the held keys as letters, e.g. "abf".
func (k KeySet) String() string {
	out := make([]byte, 0, k.Count())
	for b := 0; b < 32; b++ {
		if k.Has(b) {
			out = append(out, byte('a'+b))
		}
	}

	return string(out)
}
