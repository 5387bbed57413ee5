// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/foabin/utils"
)

// Conform adapts any source into the shape the spatial engine consumes:
// mono, at the engine's sample rate. Multi-channel input is averaged
// down to one channel; rate conversion uses cubic interpolation with a
// simple one-pole low-pass when downsampling. A source that is already
// mono at the right rate is returned unchanged.
func Conform(src Source, sampleRate int) Source {
	if src.Channels() == 1 && src.SampleRate() == sampleRate {
		return src
	}

	ratio := float64(src.SampleRate()) / float64(sampleRate)
	c := &conformer{
		src:      src,
		dstRate:  sampleRate,
		ratio:    ratio,
		channels: src.Channels(),
		frameBuf: make([]float32, src.Channels()),
	}
	if ratio > 1 {
		// crude anti-aliasing for the downsampling case
		c.useFilter = true
		c.filterAlpha = 0.5
	}
	return c
}

// conformer streams mono samples at dstRate, interpolating between the
// four most recent downmixed input frames. window[1] and window[2]
// bracket the current output position.
type conformer struct {
	src      Source
	dstRate  int
	ratio    float64
	channels int

	window [4]float32
	primed bool
	pos    float64

	frameBuf []float32
	eof      bool
	drained  bool

	useFilter   bool
	filterAlpha float32
	filterState float32
}

func (c *conformer) SampleRate() int { return c.dstRate }
func (c *conformer) Channels() int   { return 1 }

func (c *conformer) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetchFrame reads one input frame, downmixes it, and shifts it into
// the window. After source EOF the last frame is held, so interpolation
// near the stream end stays defined.
func (c *conformer) fetchFrame() error {
	if c.eof {
		c.drained = true
		return io.EOF
	}

	n, err := c.src.ReadSamples(c.frameBuf)
	if n > 0 {
		var sum float32
		for _, v := range c.frameBuf[:n] {
			sum += v
		}
		mono := sum / float32(n)

		if c.useFilter {
			mono = c.filterAlpha*mono + (1-c.filterAlpha)*c.filterState
			c.filterState = mono
		}

		c.window[0], c.window[1], c.window[2] = c.window[1], c.window[2], c.window[3]
		c.window[3] = mono
	}

	if err == io.EOF {
		c.eof = true
		if n == 0 {
			c.drained = true
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// prime fills the window before the first output sample.
func (c *conformer) prime() error {
	for i := 0; i < 4; i++ {
		if err := c.fetchFrame(); err != nil {
			if err == io.EOF && i > 0 {
				// hold the last frame for the remaining slots
				for ; i < 4; i++ {
					c.window[0], c.window[1], c.window[2] = c.window[1], c.window[2], c.window[3]
				}
				break
			}
			return err
		}
	}
	c.primed = true
	return nil
}

// ReadSamples produces mono samples at the target rate.
func (c *conformer) ReadSamples(dst []float32) (int, error) {
	if !c.primed {
		if err := c.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for c.pos >= 1 {
			c.pos--
			if err := c.fetchFrame(); err != nil {
				if err == io.EOF {
					return written, io.EOF
				}
				return written, err
			}
		}
		if c.drained {
			return written, io.EOF
		}

		dst[written] = utils.CubicInterpolate(
			c.window[0], c.window[1], c.window[2], c.window[3],
			float32(c.pos),
		)
		written++
		c.pos += c.ratio
	}

	return written, nil
}
