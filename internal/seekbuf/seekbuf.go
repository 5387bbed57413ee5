// SPDX-License-Identifier: EPL-2.0

// Package seekbuf adapts a plain io.Reader to io.ReadSeeker by buffering
// the whole stream in memory, for decoder libraries that need to seek.
package seekbuf

import (
	"fmt"
	"io"
)

// FromReader returns r unchanged when it already seeks, otherwise a
// ReadSeeker over an in-memory copy of r.
func FromReader(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering stream: %w", err)
	}
	return &seekBuffer{data: data}, nil
}

type seekBuffer struct {
	data   []byte
	offset int64
}

func (b *seekBuffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.offset + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}
	b.offset = pos
	return pos, nil
}
