// SPDX-License-Identifier: EPL-2.0

package foabin

import (
	"math"
	"testing"

	"github.com/ik5/foabin/foa"
	"github.com/ik5/foabin/internal/audiotest"
)

func TestRenderToStereo16_NoSources(t *testing.T) {
	t.Parallel()

	pcm16, rate, err := RenderToStereo16(nil, 48000)
	if err != nil {
		t.Fatalf("RenderToStereo16() error = %v", err)
	}
	if rate != 48000 {
		t.Errorf("rate = %d, want 48000", rate)
	}
	if len(pcm16) != 0 {
		t.Errorf("len = %d, want empty output for zero sources", len(pcm16))
	}
}

func TestRenderToStereo16_ProducesStereo(t *testing.T) {
	t.Parallel()

	sources := []PositionedSource{{
		Source:    audiotest.NewSineSource(48000, 1, 4800, 440),
		Direction: foa.Direction{Azimuth: math.Pi / 4},
	}}

	pcm16, rate, err := RenderToStereo16(sources, 48000)
	if err != nil {
		t.Fatalf("RenderToStereo16() error = %v", err)
	}
	if rate != 48000 {
		t.Errorf("rate = %d, want 48000", rate)
	}
	if len(pcm16) == 0 || len(pcm16)%2 != 0 {
		t.Fatalf("len = %d, want a non-empty even (interleaved stereo) count", len(pcm16))
	}

	var energy int64
	for _, s := range pcm16 {
		energy += int64(s) * int64(s)
	}
	if energy == 0 {
		t.Error("rendered output is silent")
	}
}

func TestRenderToStereo16_SilentInSilentOut(t *testing.T) {
	t.Parallel()

	sources := []PositionedSource{{
		Source:    audiotest.NewSilentSource(48000, 1, 4800),
		Direction: foa.Direction{Azimuth: -math.Pi / 3},
	}}

	pcm16, _, err := RenderToStereo16(sources, 48000)
	if err != nil {
		t.Fatalf("RenderToStereo16() error = %v", err)
	}
	for i, s := range pcm16 {
		if s != 0 {
			t.Fatalf("pcm16[%d] = %d, want exact silence", i, s)
		}
	}
}

// Two equal sources at opposite sides: the whole-chain directionality
// must survive the round trip to 16-bit.
func TestRenderToStereo16_OppositeSidesBalance(t *testing.T) {
	t.Parallel()

	render := func(azimuth float64) (left, right float64) {
		sources := []PositionedSource{{
			Source:    audiotest.NewSineSource(48000, 1, 4800, 440),
			Direction: foa.Direction{Azimuth: azimuth},
		}}
		pcm16, _, err := RenderToStereo16(sources, 48000)
		if err != nil {
			t.Fatalf("RenderToStereo16() error = %v", err)
		}
		for i := 0; i < len(pcm16); i += 2 {
			left += float64(pcm16[i]) * float64(pcm16[i])
			right += float64(pcm16[i+1]) * float64(pcm16[i+1])
		}
		return left, right
	}

	l, r := render(math.Pi / 2) // hard left
	if l <= r {
		t.Errorf("left source: energy L=%v R=%v, want left dominant", l, r)
	}
	l, r = render(-math.Pi / 2) // hard right
	if r <= l {
		t.Errorf("right source: energy L=%v R=%v, want right dominant", l, r)
	}
}
