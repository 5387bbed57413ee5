// SPDX-License-Identifier: EPL-2.0

// Package engine wires sources, encoders, the ambisonic bus and the
// binaural decoder into a runnable graph with an explicit lifetime.
//
// # Typical Use
//
//	eng, err := engine.New(engine.WithSampleRate(48000))
//	track := eng.AddSource(src, foa.Direction{Azimuth: math.Pi / 2})
//	go eng.Initialize(context.Background())
//
//	// audio callback, once per block:
//	eng.Process(stereoBuf)
//
//	track.SetPosition(foa.Direction{Azimuth: 0})
//
// # The Two Sides
//
// Process is the real-time side: per block it reads each track, encodes,
// sums onto the bus and decodes to stereo, without allocating, locking
// or doing I/O. Everything else is the control side. The only values
// that cross between them while running are the per-track target
// directions (lock-free, last write wins) and the decoder tables
// (published atomically once by Initialize). Until those tables exist
// the engine emits silence, which is why Initialize may safely run
// while the callback is already live.
//
// # Filters
//
// Initialize obtains one impulse-response pair per virtual speaker from
// an hrir.Provider. With WithDataset a measured dataset is tried first,
// bounded by WithInitTimeout; on failure or timeout the engine logs the
// cause and falls back to the synthetic head model for every speaker.
// No failure here, nor anywhere on the audio path, stops the audio.
package engine
