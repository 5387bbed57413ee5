// SPDX-License-Identifier: EPL-2.0

package foa

import "math"

// DefaultSpeakers is the virtual loudspeaker count of the reference
// octagon layout.
const DefaultSpeakers = 8

// DecodeMatrix maps the ambisonic channels to virtual speaker feeds.
// Row s holds the decode coefficients for speaker s in ACN order
// [W, Y, Z, X].
type DecodeMatrix [][NumChannels]float32

// RingLayout returns n speaker azimuths evenly spaced around the
// horizontal plane, starting straight ahead and proceeding
// counterclockwise (toward the listener's left).
func RingLayout(n int) []float64 {
	az := make([]float64, n)
	for s := range az {
		az[s] = 2 * math.Pi * float64(s) / float64(n)
	}
	return az
}

// NewRingMatrix builds the decode matrix for horizontal speakers at the
// given azimuths. Row s is [1/√2, sin θs, 0, cos θs]: a basic SN3D
// sampling decoder with no elevation term.
func NewRingMatrix(azimuths []float64) DecodeMatrix {
	m := make(DecodeMatrix, len(azimuths))
	for s, az := range azimuths {
		m[s][ChW] = float32(invSqrt2)
		m[s][ChY] = float32(math.Sin(az))
		m[s][ChZ] = 0
		m[s][ChX] = float32(math.Cos(az))
	}
	return m
}

// DecodeMatrixFromFlat rebuilds a matrix from its flat wire form: four
// coefficients per speaker in ACN order, speaker 0 first. This is the
// layout used by the one-time decoder initialization payload.
func DecodeMatrixFromFlat(flat []float32) (DecodeMatrix, error) {
	if len(flat) == 0 || len(flat)%NumChannels != 0 {
		return nil, ErrBadMatrixShape
	}
	m := make(DecodeMatrix, len(flat)/NumChannels)
	for s := range m {
		copy(m[s][:], flat[s*NumChannels:])
	}
	return m, nil
}

// Flatten returns the wire form of m: four coefficients per speaker in
// ACN order, speaker 0 first.
func (m DecodeMatrix) Flatten() []float32 {
	flat := make([]float32, 0, len(m)*NumChannels)
	for s := range m {
		flat = append(flat, m[s][:]...)
	}
	return flat
}
