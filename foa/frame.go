// SPDX-License-Identifier: EPL-2.0

package foa

import "math"

// Channel indices of a first-order ambisonic frame, ACN ordering.
const (
	ChW = 0 // omnidirectional
	ChY = 1 // left/right
	ChZ = 2 // up/down
	ChX = 3 // front/back
)

// NumChannels is the channel count of a first-order ambisonic stream.
const NumChannels = 4

// invSqrt2 is the SN3D gain of the W channel.
const invSqrt2 = 1.0 / math.Sqrt2

// Frame is one sample of a first-order ambisonic signal in ACN order
// [W, Y, Z, X]. Every producer and consumer of the shared bus relies on
// this ordering.
type Frame [NumChannels]float32

// Direction is a source direction relative to the listener's head.
// Azimuth is in radians, counterclockwise from straight ahead, so a
// positive azimuth places the direction to the listener's left.
// Elevation is in radians, positive upward.
type Direction struct {
	Azimuth   float64
	Elevation float64
}

// Vector returns the unit vector for d in the head-centered frame used
// throughout this module: +x front, +y left, +z up. This matches the
// coordinate convention of SOFA datasets, so dataset lookups can use it
// directly.
func (d Direction) Vector() (x, y, z float64) {
	cosEl := math.Cos(d.Elevation)
	x = cosEl * math.Cos(d.Azimuth)
	y = cosEl * math.Sin(d.Azimuth)
	z = math.Sin(d.Elevation)
	return x, y, z
}
