// SPDX-License-Identifier: EPL-2.0

package hrir

import (
	"math"
	"testing"
)

func TestSyntheticProvider_Deterministic(t *testing.T) {
	t.Parallel()

	p := NewSyntheticProvider(48000)
	x, y, z := math.Cos(0.7), math.Sin(0.7), 0.0

	a, err := p.ImpulseResponse(x, y, z)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}
	b, err := p.ImpulseResponse(x, y, z)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}

	if len(a.Left) != len(b.Left) || len(a.Right) != len(b.Right) {
		t.Fatal("repeated calls returned different lengths")
	}
	for i := range a.Left {
		if a.Left[i] != b.Left[i] || a.Right[i] != b.Right[i] {
			t.Fatalf("tap %d differs between calls for the same direction", i)
		}
	}
}

func TestSyntheticProvider_FrontIsSymmetric(t *testing.T) {
	t.Parallel()

	p := NewSyntheticProvider(48000)
	pair, err := p.ImpulseResponse(1, 0, 0)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}

	for i := range pair.Left {
		if pair.Left[i] != pair.Right[i] {
			t.Fatalf("tap %d: left %v != right %v for a centered source",
				i, pair.Left[i], pair.Right[i])
		}
	}
	if pair.Left[0] != 1 {
		t.Errorf("leading tap = %v, want unit impulse", pair.Left[0])
	}
}

func TestSyntheticProvider_LateralDelayAndShadow(t *testing.T) {
	t.Parallel()

	p := NewSyntheticProvider(48000)

	// Hard left: left ear leads at full level, right ear arrives
	// maxDelay samples later, 6 dB down.
	pair, err := p.ImpulseResponse(0, 1, 0)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}

	if pair.Left[0] != 1 {
		t.Errorf("near ear leading tap = %v, want 1", pair.Left[0])
	}

	peak, peakAt := float32(0), -1
	for i, v := range pair.Right {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak, peakAt = a, i
		}
	}
	if peakAt != p.maxDelay {
		t.Errorf("far ear peak at tap %d, want %d", peakAt, p.maxDelay)
	}
	if math.Abs(float64(peak)-farEarGain) > 1e-3 {
		t.Errorf("far ear peak = %v, want ≈%v (-6 dB)", peak, farEarGain)
	}

	// Mirror image on the other side.
	mirror, err := p.ImpulseResponse(0, -1, 0)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}
	if mirror.Right[0] != 1 {
		t.Errorf("hard right: near ear leading tap = %v, want 1", mirror.Right[0])
	}
}

func TestSyntheticProvider_DelayScalesWithRate(t *testing.T) {
	t.Parallel()

	if got := NewSyntheticProvider(48000).maxDelay; got != 22 {
		t.Errorf("maxDelay at 48kHz = %d, want 22", got)
	}
	if got := NewSyntheticProvider(96000).maxDelay; got != 44 {
		t.Errorf("maxDelay at 96kHz = %d, want 44", got)
	}
	if got := NewSyntheticProvider(8000).maxDelay; got < 1 {
		t.Errorf("maxDelay at 8kHz = %d, want >= 1", got)
	}
}

func TestSyntheticProvider_TailDecays(t *testing.T) {
	t.Parallel()

	p := NewSyntheticProvider(48000)
	pair, err := p.ImpulseResponse(1, 0, 0)
	if err != nil {
		t.Fatalf("ImpulseResponse() error = %v", err)
	}

	// Diffraction tail sits behind the impulse, well below it.
	var tailPeak float64
	for _, v := range pair.Left[1:] {
		tailPeak = math.Max(tailPeak, math.Abs(float64(v)))
	}
	if tailPeak == 0 {
		t.Error("tail is all zero, expected low-level diffraction taps")
	}
	if tailPeak >= tailGain {
		t.Errorf("tail peak = %v, want below %v", tailPeak, tailGain)
	}
}
