// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"math"
	"math/rand"
)

const (
	// maxDelaySamples is the largest interaural delay at the reference
	// rate, roughly 0.46 ms of acoustic path around the head.
	maxDelaySamples = 22
	referenceRate   = 48000

	// head-shadow attenuation of the far ear, -6 dB
	farEarGain = 0.501187

	// diffraction tail shape
	tailTaps  = 20
	tailDecay = 0.92
	tailGain  = 0.1

	// fixed seed so a direction always yields the same filter
	ditherSeed = 0x5edf0a11
)

// SyntheticProvider generates impulse responses from a simple spherical
// head model: the ear away from the source hears the signal later
// (interaural time difference) and quieter (interaural level
// difference), followed by a short decaying tail standing in for head
// diffraction. Elevation is ignored; the model is horizontal only.
//
// The tail is dithered with a fixed-seed pseudo-random sequence, so the
// provider is fully deterministic: the same direction produces the same
// filter on every call. It never fails and needs no external data,
// which makes it the fallback when a measured dataset is unavailable.
type SyntheticProvider struct {
	maxDelay int
}

// NewSyntheticProvider returns a provider for the given sample rate.
// The maximum interaural delay scales with the rate so the modeled time
// difference stays constant in seconds.
func NewSyntheticProvider(sampleRate int) *SyntheticProvider {
	delay := int(math.Round(maxDelaySamples * float64(sampleRate) / referenceRate))
	if delay < 1 {
		delay = 1
	}
	return &SyntheticProvider{maxDelay: delay}
}

// ImpulseResponse synthesizes the pair for the direction (x, y, z).
// Only the azimuth, atan2(y, x), participates.
func (p *SyntheticProvider) ImpulseResponse(x, y, z float64) (Pair, error) {
	az := math.Atan2(y, x)

	// Positive azimuth is to the listener's left: the left ear leads,
	// the right ear is delayed and shadowed.
	delay := int(math.Round(float64(p.maxDelay) * math.Sin(az)))

	length := p.maxDelay + 1 + tailTaps
	left := make([]float32, length)
	right := make([]float32, length)

	switch {
	case delay > 0:
		writeEar(left, 0, 1)
		writeEar(right, delay, farEarGain)
	case delay < 0:
		writeEar(left, -delay, farEarGain)
		writeEar(right, 0, 1)
	default:
		// dead center: no far ear, both hear the same
		writeEar(left, 0, 1)
		writeEar(right, 0, 1)
	}

	return Pair{Left: left, Right: right}, nil
}

// writeEar places the main impulse at the given offset and appends the
// diffraction tail behind it.
func writeEar(ir []float32, offset int, gain float64) {
	ir[offset] = float32(gain)

	rng := rand.New(rand.NewSource(ditherSeed))
	amp := gain * tailGain
	for k := 1; k <= tailTaps && offset+k < len(ir); k++ {
		amp *= tailDecay
		ir[offset+k] = float32(amp * (2*rng.Float64() - 1))
	}
}
