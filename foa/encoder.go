// SPDX-License-Identifier: EPL-2.0

package foa

import (
	"math"
	"sync/atomic"
)

// DefaultSmoothing is the per-sample one-pole coefficient used to glide
// the encoder direction toward its target. Smoothing the parameter, not
// the audio, removes the click that a hard direction jump would cause.
const DefaultSmoothing = 0.002

// Encoder converts a mono signal into a first-order ambisonic signal.
//
// The target direction may be updated at any time from a control
// goroutine via SetTarget; the audio goroutine picks up the latest
// value at the start of each Encode call and glides toward it sample by
// sample. There is no queue between the two sides: the handoff is a
// single atomically published value and the last write wins.
//
// All other state is owned by the audio side. An Encoder must not be
// shared between sources.
type Encoder struct {
	target atomic.Uint64 // packed float32 azimuth/elevation pair

	// smoothed direction, audio side only
	az, el float64

	alpha float64
}

// NewEncoder returns an encoder whose smoothed direction starts at d,
// using DefaultSmoothing.
func NewEncoder(d Direction) *Encoder {
	e := &Encoder{
		az:    d.Azimuth,
		el:    d.Elevation,
		alpha: DefaultSmoothing,
	}
	e.SetTarget(d)
	return e
}

// SetTarget publishes a new target direction. Safe to call from any
// goroutine; if several updates land within one block only the last one
// takes effect.
func (e *Encoder) SetTarget(d Direction) {
	e.target.Store(packDirection(d))
}

// Target returns the most recently published target direction.
func (e *Encoder) Target() Direction {
	return unpackDirection(e.target.Load())
}

// Encode converts len(src) mono samples into ambisonic frames, writing
// one frame per sample into dst. len(dst) must be at least len(src).
// The target direction is read once, at the start of the block.
//
// Out-of-range azimuth or elevation values are used as given; the
// trigonometry is defined for any real input, so no clamping happens
// here.
func (e *Encoder) Encode(src []float32, dst []Frame) {
	t := unpackDirection(e.target.Load())
	az, el := e.az, e.el

	for i, s := range src {
		az += (t.Azimuth - az) * e.alpha
		el += (t.Elevation - el) * e.alpha

		sf := float64(s)
		cosEl := math.Cos(el)
		dst[i][ChW] = float32(sf * invSqrt2)
		dst[i][ChY] = float32(sf * cosEl * math.Sin(az))
		dst[i][ChZ] = float32(sf * math.Sin(el))
		dst[i][ChX] = float32(sf * cosEl * math.Cos(az))
	}

	e.az, e.el = az, el
}

func packDirection(d Direction) uint64 {
	return uint64(math.Float32bits(float32(d.Azimuth)))<<32 |
		uint64(math.Float32bits(float32(d.Elevation)))
}

func unpackDirection(v uint64) Direction {
	return Direction{
		Azimuth:   float64(math.Float32frombits(uint32(v >> 32))),
		Elevation: float64(math.Float32frombits(uint32(v))),
	}
}
