// Package matcher aligns two sub-fingerprint streams and reports the
// contiguous segments where they agree closely enough to call a match,
// per spec.md §4.5.
package matcher

import (
	"math/bits"
	"sort"

	"github.com/gofprint/gofprint/internal/dsp"
)

// minOverlap is the smallest candidate alignment overlap (in items)
// considered significant, per spec.md §4.5 "offsets with fewer than 80
// overlapping items are never candidates."
const minOverlap = 80

// bitErrorThreshold is the per-item Hamming-distance (out of 32 bits)
// below which an aligned item pair counts as agreeing, both for histogram
// voting and for segment carving.
const bitErrorThreshold = 14.4

// maxCandidateOffsets bounds how many histogram peaks are walked into
// segments, so a pathological input with many weak, tied offsets cannot
// blow up the cost of the O(bestOffsets * overlap) segment pass.
const maxCandidateOffsets = 8

// Segment is one aligned, scored region of agreement between two
// fingerprints.
type Segment struct {
	Pos1, Pos2 int // starting item index into fingerprint 1 and 2 respectively
	Duration   int // length in items
	Offset     int // Pos1 - Pos2, the alignment offset this segment was found at
	Score      int // 0..100, 100 == identical
}

// Align finds the best alignment offsets between a and b and returns the
// matching segments at each, after greedily suppressing overlapping
// segments by descending score (ties broken by ascending Pos1 then Pos2,
// per spec.md §9's Open Question resolution on segment precedence).
func Align(a, b []uint32) []Segment {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	hist := buildHistogram(a, b)
	offsets := topOffsets(hist)

	var all []Segment
	for _, o := range offsets {
		all = append(all, segmentsAtOffset(a, b, o)...)
	}
	return suppressOverlaps(all)
}

// buildHistogram counts, for every candidate offset o (b[j] aligned with
// a[o+j]), how many item pairs agree within bitErrorThreshold.
func buildHistogram(a, b []uint32) map[int]int {
	hist := make(map[int]int)
	for o := -(len(b) - 1); o <= len(a)-1; o++ {
		overlap := overlapLen(len(a), len(b), o)
		if overlap < minOverlap {
			continue
		}
		count := 0
		jStart := 0
		if o < 0 {
			jStart = -o
		}
		jEnd := len(b)
		if o+jEnd > len(a) {
			jEnd = len(a) - o
		}
		for j := jStart; j < jEnd; j++ {
			if float64(bits.OnesCount32(a[o+j]^b[j])) < bitErrorThreshold {
				count++
			}
		}
		if count > 0 {
			hist[o] = count
		}
	}
	return hist
}

func overlapLen(lenA, lenB, o int) int {
	start := 0
	if o < 0 {
		start = -o
	}
	end := lenB
	if o+end > lenA {
		end = lenA - o
	}
	if end < start {
		return 0
	}
	return end - start
}

// topOffsets returns up to maxCandidateOffsets offsets with the highest
// histogram counts, descending.
func topOffsets(hist map[int]int) []int {
	offsets := make([]int, 0, len(hist))
	for o := range hist {
		offsets = append(offsets, o)
	}
	sort.Slice(offsets, func(i, j int) bool {
		if hist[offsets[i]] != hist[offsets[j]] {
			return hist[offsets[i]] > hist[offsets[j]]
		}
		return offsets[i] < offsets[j]
	})
	if len(offsets) > maxCandidateOffsets {
		offsets = offsets[:maxCandidateOffsets]
	}
	return offsets
}

// segmentsAtOffset walks the per-item bit-error profile at a fixed offset,
// smooths it with an 8-item moving average, and carves out contiguous runs
// that stay below bitErrorThreshold into scored segments.
func segmentsAtOffset(a, b []uint32, o int) []Segment {
	jStart := 0
	if o < 0 {
		jStart = -o
	}
	jEnd := len(b)
	if o+jEnd > len(a) {
		jEnd = len(a) - o
	}
	if jEnd-jStart < minOverlap {
		return nil
	}

	n := jEnd - jStart
	raw := make([]float64, n)
	smoothed := make([]float64, n)
	avg := dsp.NewMovingAverage(8)
	for k := 0; k < n; k++ {
		j := jStart + k
		raw[k] = float64(bits.OnesCount32(a[o+j] ^ b[j]))
		smoothed[k] = avg.Push(raw[k])
	}

	var segs []Segment
	inRun := false
	runStart := 0
	flush := func(end int) {
		if !inRun {
			return
		}
		length := end - runStart
		if length >= minOverlap {
			var sum float64
			for k := runStart; k < end; k++ {
				sum += raw[k]
			}
			meanErr := sum / float64(length)
			score := int(rnd(100 * (1 - meanErr/32)))
			if score < 0 {
				score = 0
			}
			if score > 100 {
				score = 100
			}
			segs = append(segs, Segment{
				Pos1:     o + jStart + runStart,
				Pos2:     jStart + runStart,
				Duration: length,
				Offset:   o,
				Score:    score,
			})
		}
		inRun = false
	}
	for k := 0; k < n; k++ {
		below := smoothed[k] < bitErrorThreshold
		if below && !inRun {
			inRun = true
			runStart = k
		} else if !below && inRun {
			flush(k)
		}
	}
	flush(n)
	return segs
}

func rnd(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

// suppressOverlaps greedily keeps the highest-scoring segments, discarding
// any later segment whose item range in either fingerprint overlaps an
// already-kept segment's range.
func suppressOverlaps(segs []Segment) []Segment {
	sort.SliceStable(segs, func(i, j int) bool {
		if segs[i].Score != segs[j].Score {
			return segs[i].Score > segs[j].Score
		}
		if segs[i].Pos1 != segs[j].Pos1 {
			return segs[i].Pos1 < segs[j].Pos1
		}
		return segs[i].Pos2 < segs[j].Pos2
	})

	var kept []Segment
	for _, s := range segs {
		overlaps := false
		for _, k := range kept {
			if rangesOverlap(s.Pos1, s.Pos1+s.Duration, k.Pos1, k.Pos1+k.Duration) ||
				rangesOverlap(s.Pos2, s.Pos2+s.Duration, k.Pos2, k.Pos2+k.Duration) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, s)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Pos1 < kept[j].Pos1 })
	return kept
}

func rangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
