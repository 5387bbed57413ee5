// SPDX-License-Identifier: EPL-2.0

package foa

import (
	"math"
	"testing"
)

func TestEncoder_FrontImpulse(t *testing.T) {
	t.Parallel()

	// Initial direction equals the target, so there is no smoothing
	// ramp: sample 0 must come out exactly as the front projection.
	enc := NewEncoder(Direction{})

	src := []float32{1, 0, 0, 0}
	dst := make([]Frame, len(src))
	enc.Encode(src, dst)

	if math.Abs(float64(dst[0][ChW])-1/math.Sqrt2) > 1e-6 {
		t.Errorf("W = %v, want ≈0.7071", dst[0][ChW])
	}
	if math.Abs(float64(dst[0][ChY])) > 1e-6 {
		t.Errorf("Y = %v, want 0", dst[0][ChY])
	}
	if math.Abs(float64(dst[0][ChZ])) > 1e-6 {
		t.Errorf("Z = %v, want 0", dst[0][ChZ])
	}
	if math.Abs(float64(dst[0][ChX])-1) > 1e-6 {
		t.Errorf("X = %v, want 1", dst[0][ChX])
	}

	for i := 1; i < len(dst); i++ {
		if dst[i] != (Frame{}) {
			t.Errorf("dst[%d] = %v, want silence after the impulse", i, dst[i])
		}
	}
}

func TestEncoder_ZeroInputZeroOutput(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(Direction{Azimuth: 1.3, Elevation: -0.4})

	src := make([]float32, 256)
	dst := make([]Frame, len(src))
	enc.Encode(src, dst)

	for i, f := range dst {
		if f != (Frame{}) {
			t.Fatalf("dst[%d] = %v, want zero for zero input", i, f)
		}
	}
}

func TestEncoder_SmoothingConverges(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(Direction{})
	enc.SetTarget(Direction{Azimuth: math.Pi / 2})

	src := make([]float32, 8192)
	for i := range src {
		src[i] = 1
	}
	dst := make([]Frame, len(src))
	enc.Encode(src, dst)

	// Early output still close to the front projection.
	if math.Abs(float64(dst[0][ChY])) > 0.01 {
		t.Errorf("dst[0].Y = %v, want ≈0 right after the jump", dst[0][ChY])
	}

	// After thousands of samples the direction has glided to the
	// target: Y ≈ sin(π/2) = 1, X ≈ 0.
	last := dst[len(dst)-1]
	if math.Abs(float64(last[ChY])-1) > 0.01 {
		t.Errorf("final Y = %v, want ≈1", last[ChY])
	}
	if math.Abs(float64(last[ChX])) > 0.01 {
		t.Errorf("final X = %v, want ≈0", last[ChX])
	}

	// The glide is monotonic on this path; no overshoot clicks.
	for i := 1; i < len(dst); i++ {
		if dst[i][ChY]+1e-6 < dst[i-1][ChY] {
			t.Fatalf("Y not monotonic at %d: %v -> %v", i, dst[i-1][ChY], dst[i][ChY])
		}
	}
}

func TestEncoder_LastWriteWins(t *testing.T) {
	t.Parallel()

	enc := NewEncoder(Direction{})
	enc.SetTarget(Direction{Azimuth: 1})
	enc.SetTarget(Direction{Azimuth: -2, Elevation: 0.5})

	got := enc.Target()
	if math.Abs(got.Azimuth+2) > 1e-6 || math.Abs(got.Elevation-0.5) > 1e-6 {
		t.Errorf("Target() = %+v, want the last published value", got)
	}
}

func TestEncoder_OutOfRangeDirectionTolerated(t *testing.T) {
	t.Parallel()

	// Values outside the documented ranges are used as given; the
	// trigonometry stays well-defined.
	enc := NewEncoder(Direction{Azimuth: 17.5, Elevation: -9})

	src := []float32{1, -1, 0.5}
	dst := make([]Frame, len(src))
	enc.Encode(src, dst)

	for i, f := range dst {
		for c, v := range f {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Fatalf("dst[%d][%d] = %v, want finite", i, c, v)
			}
		}
	}
}
