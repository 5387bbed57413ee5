// SPDX-License-Identifier: EPL-2.0

// Package foa implements the first-order ambisonic signal path: mono
// sources are encoded to a 4-channel B-format stream, summed on a
// shared bus, and decoded to stereo through virtual loudspeakers and
// per-speaker binaural filters.
//
// # Channel Order
//
// Ambisonic frames use ACN ordering [W, Y, Z, X] with SN3D gains. The
// channel constants ChW, ChY, ChZ and ChX index a Frame; every stage in
// the chain assumes this ordering.
//
// # Signal Flow
//
//	mono ──Encoder(az, el)──► Frame ──Bus(+)──► Decoder ──► stereo
//
// One Encoder per source smooths its direction and projects the mono
// sample onto the four ambisonic channels. The Bus adds all encoder
// outputs. A single Decoder turns the bus into virtual speaker feeds
// via a DecodeMatrix, convolves each feed with that speaker's
// head-related impulse response and folds everything down to a left and
// right channel.
//
// # Real-Time Use
//
// Encode, Accumulate and Decode neither allocate nor block; all buffers
// are fixed at construction. Direction updates cross from a control
// goroutine into the audio path through a lock-free last-write-wins
// handoff in the Encoder. The Decoder emits silence until Init
// publishes its tables, so initialization can run concurrently with an
// already-live audio callback.
//
// Filters come from the hrir package; the engine package composes the
// pieces into a runnable graph.
package foa
