// SPDX-License-Identifier: EPL-2.0

package foa

import "sync/atomic"

// DefaultTaps is the HRIR length the reference layout convolves with.
const DefaultTaps = 128

// Decoder renders the 4-channel ambisonic bus to stereo through a ring
// of virtual speakers. Each bus frame is decoded to per-speaker feeds
// via the decode matrix, each feed is convolved with that speaker's
// binaural impulse-response pair, and the convolutions are summed and
// normalized by the speaker count.
//
// A decoder starts out uninitialized and emits silence. Init publishes
// the decode matrix and filters atomically, so it may complete while
// another goroutine is already calling Decode; the first block after
// publication produces sound. Calling Init again simply replaces the
// tables.
//
// The per-speaker delay lines and the shared cursor are owned by the
// audio side: Decode must only ever run on one goroutine at a time.
type Decoder struct {
	tables atomic.Pointer[decodeTables]

	speakers int
	taps     int

	// delay lines holding the last taps decoded samples per speaker,
	// all indexed by the one shared cursor
	rings  [][]float32
	cursor int
}

// decodeTables is the immutable data published by Init.
type decodeTables struct {
	matrix      DecodeMatrix
	left, right [][]float32
}

// NewDecoder returns an uninitialized decoder for the given virtual
// speaker count and filter tap length. All per-speaker state is
// allocated here; Decode never allocates.
func NewDecoder(speakers, taps int) *Decoder {
	d := &Decoder{
		speakers: speakers,
		taps:     taps,
		rings:    make([][]float32, speakers),
	}
	for s := range d.rings {
		d.rings[s] = make([]float32, taps)
	}
	return d
}

// Speakers returns the virtual speaker count fixed at construction.
func (d *Decoder) Speakers() int { return d.speakers }

// Taps returns the filter length fixed at construction.
func (d *Decoder) Taps() int { return d.taps }

// Ready reports whether Init has published valid tables.
func (d *Decoder) Ready() bool {
	return d.tables.Load() != nil
}

// Init validates and publishes the decode matrix and the per-speaker
// impulse-response pairs. left[s] and right[s] must each hold exactly
// Taps coefficients. Init may run concurrently with Decode; blocks
// processed before publication come out silent.
func (d *Decoder) Init(matrix DecodeMatrix, left, right [][]float32) error {
	if len(matrix) != d.speakers || len(left) != d.speakers || len(right) != d.speakers {
		return ErrSpeakerCount
	}
	t := &decodeTables{
		matrix: make(DecodeMatrix, d.speakers),
		left:   make([][]float32, d.speakers),
		right:  make([][]float32, d.speakers),
	}
	copy(t.matrix, matrix)
	for s := 0; s < d.speakers; s++ {
		if len(left[s]) != d.taps || len(right[s]) != d.taps {
			return ErrFilterLength
		}
		t.left[s] = append([]float32(nil), left[s]...)
		t.right[s] = append([]float32(nil), right[s]...)
	}
	d.tables.Store(t)
	return nil
}

// Decode consumes len(in) bus frames and writes interleaved stereo
// samples into dst, which must hold at least 2*len(in) values. While
// uninitialized the output is silence.
func (d *Decoder) Decode(in []Frame, dst []float32) {
	n := len(in)
	t := d.tables.Load()
	if t == nil {
		clear(dst[:2*n])
		return
	}

	taps := d.taps
	scale := float32(1) / float32(d.speakers)
	cursor := d.cursor

	for i := 0; i < n; i++ {
		f := in[i]
		var sumL, sumR float32

		for s := 0; s < d.speakers; s++ {
			row := &t.matrix[s]
			feed := f[ChW]*row[ChW] + f[ChY]*row[ChY] +
				f[ChZ]*row[ChZ] + f[ChX]*row[ChX]

			ring := d.rings[s]
			ring[cursor] = feed

			hl, hr := t.left[s], t.right[s]
			var convL, convR float32
			idx := cursor
			for k := 0; k < taps; k++ {
				v := ring[idx]
				convL += v * hl[k]
				convR += v * hr[k]
				idx--
				if idx < 0 {
					idx = taps - 1
				}
			}
			sumL += convL
			sumR += convR
		}

		dst[2*i] = sumL * scale
		dst[2*i+1] = sumR * scale

		cursor++
		if cursor == taps {
			cursor = 0
		}
	}

	d.cursor = cursor
}
