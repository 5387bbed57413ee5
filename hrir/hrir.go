// SPDX-License-Identifier: EPL-2.0

package hrir

// Pair is a binaural impulse-response pair for one direction.
type Pair struct {
	Left  []float32
	Right []float32
}

// Set holds one impulse-response pair per virtual speaker, every
// response already fitted to the decoder's tap length. A Set is built
// once during initialization and read-only afterward.
type Set struct {
	pairs []Pair
	taps  int
}

// NewSet fits each pair to taps coefficients (see FitLength) and
// collects them into a Set.
func NewSet(pairs []Pair, taps int) *Set {
	fitted := make([]Pair, len(pairs))
	for s, p := range pairs {
		fitted[s] = Pair{
			Left:  FitLength(p.Left, taps),
			Right: FitLength(p.Right, taps),
		}
	}
	return &Set{pairs: fitted, taps: taps}
}

// Speakers returns the number of pairs in the set.
func (s *Set) Speakers() int { return len(s.pairs) }

// Taps returns the fitted filter length.
func (s *Set) Taps() int { return s.taps }

// Split returns the left and right filters as per-speaker slices, the
// shape the decoder consumes. The returned slices alias the set.
func (s *Set) Split() (left, right [][]float32) {
	left = make([][]float32, len(s.pairs))
	right = make([][]float32, len(s.pairs))
	for i, p := range s.pairs {
		left[i] = p.Left
		right[i] = p.Right
	}
	return left, right
}

// Flatten returns the wire form of the set: for each speaker the left
// response followed by the right one, [L0, R0, L1, R1, ...], each of
// Taps values.
func (s *Set) Flatten() []float32 {
	flat := make([]float32, 0, len(s.pairs)*2*s.taps)
	for _, p := range s.pairs {
		flat = append(flat, p.Left...)
		flat = append(flat, p.Right...)
	}
	return flat
}

// SetFromFlat rebuilds a Set from its wire form for the given speaker
// count and tap length.
func SetFromFlat(flat []float32, speakers, taps int) (*Set, error) {
	if len(flat) != speakers*2*taps {
		return nil, ErrBadSetShape
	}
	pairs := make([]Pair, speakers)
	for s := 0; s < speakers; s++ {
		off := s * 2 * taps
		pairs[s] = Pair{
			Left:  flat[off : off+taps],
			Right: flat[off+taps : off+2*taps],
		}
	}
	return NewSet(pairs, taps), nil
}

// FitLength adapts an impulse response to exactly taps coefficients:
// longer responses are truncated, shorter ones zero-padded. The input
// is copied, never aliased.
func FitLength(ir []float32, taps int) []float32 {
	out := make([]float32, taps)
	copy(out, ir)
	return out
}
