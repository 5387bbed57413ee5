// SPDX-License-Identifier: EPL-2.0

package foabin

import (
	"context"
	"fmt"

	"github.com/ik5/foabin/audio"
	"github.com/ik5/foabin/engine"
	"github.com/ik5/foabin/foa"
	"github.com/ik5/foabin/utils"
)

// PositionedSource pairs an audio source with the direction it should
// be heard from.
type PositionedSource struct {
	Source    audio.Source
	Direction foa.Direction
}

// RenderToStereo16 is a high-level convenience function that renders
// positioned mono sources to binaural stereo and collects the result as
// interleaved 16-bit PCM.
//
// The function builds the full pipeline:
//  1. Conforms every source to mono at sampleRate
//  2. Encodes each to first-order ambisonics at its direction
//  3. Sums them on the shared bus and decodes through the 8-speaker
//     virtual ring with the synthetic head model
//  4. Flushes the convolution tail and converts float32 to int16
//
// Parameters:
//   - sources: the sources to spatialize, each with a direction
//   - sampleRate: output sample rate in Hz (e.g., 44100, 48000)
//
// Returns the interleaved stereo samples (left first) and the output
// sample rate. With no sources the result is empty, not an error.
//
// Rendering runs offline: blocks are processed as fast as possible
// until every source is exhausted. For real-time use, or to render
// against a measured HRTF dataset, drive the engine package directly.
//
// Example:
//
//	left := foabin.PositionedSource{Source: src, Direction: foa.Direction{Azimuth: math.Pi / 2}}
//	pcm16, rate, err := foabin.RenderToStereo16([]foabin.PositionedSource{left}, 48000)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains interleaved stereo at 48kHz
func RenderToStereo16(sources []PositionedSource, sampleRate int) ([]int16, int, error) {
	if len(sources) == 0 {
		return nil, sampleRate, nil
	}

	eng, err := engine.New(engine.WithSampleRate(sampleRate))
	if err != nil {
		return nil, sampleRate, fmt.Errorf("%w", err)
	}
	defer eng.Close()

	for _, ps := range sources {
		eng.AddSource(ps.Source, ps.Direction)
	}

	if err := eng.Initialize(context.Background()); err != nil {
		return nil, sampleRate, fmt.Errorf("%w", err)
	}

	block := make([]float32, 2*eng.BlockSize())
	pcm16 := make([]int16, 0, 2*sampleRate) // assume ~1 second initially

	for eng.Active() > 0 {
		eng.Process(block)
		pcm16 = utils.AppendFloat32ToInt16(pcm16, block)
	}
	pcm16 = utils.AppendFloat32ToInt16(pcm16, eng.FlushTail())

	return pcm16, sampleRate, nil
}
