// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOgg feeds canned interleaved float32 samples.
type fakeOgg struct {
	data     []float32
	pos      int
	rate     int
	channels int
}

func (f *fakeOgg) SampleRate() int { return f.rate }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_PassesInterleavedSamples(t *testing.T) {
	t.Parallel()

	data := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	s := &source{
		dec:        &fakeOgg{data: data, rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	dst := make([]float32, len(data))
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(data) {
		t.Fatalf("n = %d, want %d", n, len(data))
	}
	for i := range data {
		if dst[i] != data[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], data[i])
		}
	}
}

func TestSource_TruncatesToWholeFrames(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &fakeOgg{data: make([]float32, 10), rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	// Odd destination length: only whole stereo frames are read.
	n, err := s.ReadSamples(make([]float32, 5))
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("n = %d, want 4 (two whole frames)", n)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:      &fakeOgg{rate: 48000, channels: 1},
		channels: 1,
	}

	n, err := s.ReadSamples(make([]float32, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream"))); err == nil {
		t.Error("Decode(garbage) expected error")
	}
}
