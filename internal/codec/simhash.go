package codec

// SimHash folds a fingerprint's items down to a single 32-bit summary: for
// each bit position, the sign of the sum of +1/-1 contributions (+1 when
// the bit is set in an item, -1 otherwise) across all items decides the
// output bit — bit k is set when that sum is >= 0, per spec.md §4.4/§8.
// An empty item list has every sum at exactly 0, so it hashes to
// 0xFFFFFFFF, not 0.
func SimHash(items []uint32) uint32 {
	var sums [32]int64
	for _, x := range items {
		for b := 0; b < 32; b++ {
			if x&(1<<uint(b)) != 0 {
				sums[b]++
			} else {
				sums[b]--
			}
		}
	}
	var out uint32
	for b := 0; b < 32; b++ {
		if sums[b] >= 0 {
			out |= 1 << uint(b)
		}
	}
	return out
}
