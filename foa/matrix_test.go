// SPDX-License-Identifier: EPL-2.0

package foa

import (
	"math"
	"testing"
)

func TestRingLayout_EvenSpacing(t *testing.T) {
	t.Parallel()

	az := RingLayout(8)
	if len(az) != 8 {
		t.Fatalf("len = %d, want 8", len(az))
	}
	if az[0] != 0 {
		t.Errorf("az[0] = %v, want 0 (straight ahead)", az[0])
	}
	step := math.Pi / 4
	for s := 1; s < len(az); s++ {
		if math.Abs(az[s]-az[s-1]-step) > 1e-12 {
			t.Errorf("az[%d]-az[%d] = %v, want %v", s, s-1, az[s]-az[s-1], step)
		}
	}
}

func TestNewRingMatrix_Rows(t *testing.T) {
	t.Parallel()

	az := RingLayout(8)
	m := NewRingMatrix(az)

	for s, theta := range az {
		want := [NumChannels]float64{1 / math.Sqrt2, math.Sin(theta), 0, math.Cos(theta)}
		for c := range want {
			if math.Abs(float64(m[s][c])-want[c]) > 1e-6 {
				t.Errorf("m[%d][%d] = %v, want %v", s, c, m[s][c], want[c])
			}
		}
	}
}

// Decoding an encoded unit sample should feed the speaker whose azimuth
// matches the source direction harder than any other speaker.
func TestDecodeMatrix_PeaksAtMatchingSpeaker(t *testing.T) {
	t.Parallel()

	az := RingLayout(8)
	m := NewRingMatrix(az)

	for s, theta := range az {
		enc := NewEncoder(Direction{Azimuth: theta})
		dst := make([]Frame, 1)
		enc.Encode([]float32{1}, dst)
		f := dst[0]

		best, bestFeed := -1, float32(math.Inf(-1))
		for r := range m {
			feed := f[ChW]*m[r][ChW] + f[ChY]*m[r][ChY] +
				f[ChZ]*m[r][ChZ] + f[ChX]*m[r][ChX]
			if feed > bestFeed {
				best, bestFeed = r, feed
			}
		}
		if best != s {
			t.Errorf("source at speaker %d azimuth peaks at speaker %d", s, best)
		}
	}
}

func TestDecodeMatrixFromFlat_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewRingMatrix(RingLayout(4))
	got, err := DecodeMatrixFromFlat(m.Flatten())
	if err != nil {
		t.Fatalf("DecodeMatrixFromFlat() error = %v", err)
	}
	if len(got) != len(m) {
		t.Fatalf("speakers = %d, want %d", len(got), len(m))
	}
	for s := range m {
		if got[s] != m[s] {
			t.Errorf("row %d = %v, want %v", s, got[s], m[s])
		}
	}
}

func TestDecodeMatrixFromFlat_BadShape(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 5, 0} {
		if _, err := DecodeMatrixFromFlat(make([]float32, n)); err == nil {
			t.Errorf("DecodeMatrixFromFlat(len %d) expected error", n)
		}
	}
}
