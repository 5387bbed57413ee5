// SPDX-License-Identifier: EPL-2.0

package hrir

// Provider supplies a binaural impulse-response pair for a direction
// given as a unit vector in the head frame (+x front, +y left, +z up).
// A provider is bound to one sample rate at construction time.
//
// Repeated calls for the same direction must return identical filters;
// the decoder caches them once per virtual speaker and expects the
// cached set to stay representative.
type Provider interface {
	ImpulseResponse(x, y, z float64) (Pair, error)
}

// BuildSet queries p once per direction and fits every response to
// taps coefficients. It fails on the first provider error, leaving
// fallback policy to the caller: a set is built entirely from one
// provider or not at all, so the filter character stays consistent
// across speakers.
func BuildSet(p Provider, directions [][3]float64, taps int) (*Set, error) {
	pairs := make([]Pair, len(directions))
	for s, dir := range directions {
		pair, err := p.ImpulseResponse(dir[0], dir[1], dir[2])
		if err != nil {
			return nil, err
		}
		pairs[s] = pair
	}
	return NewSet(pairs, taps), nil
}
