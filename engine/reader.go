// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader returns an endless io.Reader over the engine's stereo output
// as little-endian float32 bytes, the sample format playback backends
// such as oto consume directly. Reads drive Process, so the returned
// reader must only be used from the audio callback; it never returns
// io.EOF, since an engine with nothing to play reads as silence.
func (e *Engine) Reader() io.Reader {
	return &streamReader{
		e:   e,
		buf: make([]float32, 2*e.cfg.blockSize),
	}
}

type streamReader struct {
	e   *Engine
	buf []float32
}

func (r *streamReader) Read(p []byte) (int, error) {
	// whole stereo frames only: 8 bytes per frame
	total := len(p) / 8 * 8
	if total == 0 {
		return 0, nil
	}

	for off := 0; off < total; {
		samples := min(len(r.buf), (total-off)/4)
		r.e.Process(r.buf[:samples])
		for _, v := range r.buf[:samples] {
			binary.LittleEndian.PutUint32(p[off:], math.Float32bits(v))
			off += 4
		}
	}
	return total, nil
}
