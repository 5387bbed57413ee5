// SPDX-License-Identifier: EPL-2.0

package foa

// Bus is the shared summation point between encoders and the decoder.
// Encoders add their frames channel by channel; no gain compensation is
// applied for the number of contributing sources. The decoder's fixed
// speaker-count normalization is the only scaling in the chain.
//
// A Bus is owned by whoever drives the audio graph and is touched only
// from the audio goroutine.
type Bus struct {
	frames []Frame
}

// NewBus returns a bus holding blockSize frames, cleared.
func NewBus(blockSize int) *Bus {
	return &Bus{frames: make([]Frame, blockSize)}
}

// Clear zeroes the bus. Call once per block before accumulating.
func (b *Bus) Clear() {
	for i := range b.frames {
		b.frames[i] = Frame{}
	}
}

// Accumulate adds src frame by frame onto the bus. Only the first
// min(len(src), blockSize) frames are summed. With no Accumulate calls
// since the last Clear the bus is silence.
func (b *Bus) Accumulate(src []Frame) {
	n := min(len(src), len(b.frames))
	for i := 0; i < n; i++ {
		b.frames[i][ChW] += src[i][ChW]
		b.frames[i][ChY] += src[i][ChY]
		b.frames[i][ChZ] += src[i][ChZ]
		b.frames[i][ChX] += src[i][ChX]
	}
}

// Frames returns the bus content for the current block. The slice is
// reused across blocks; do not retain it.
func (b *Bus) Frames() []Frame {
	return b.frames
}
