// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives feeding the spatial
// engine.
//
// # Source Interface
//
// The Source interface is the unit of audio input:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders return a Source; any Source can feed the engine.
// Samples are interleaved float32 in [-1, 1], and io.EOF marks the end
// of a stream.
//
// # Conforming Input
//
// The engine consumes mono at a single rate. Conform wraps an arbitrary
// source accordingly:
//
//	mono := audio.Conform(src, 48000)
//	buf := make([]float32, 128)
//	n, err := mono.ReadSamples(buf)
//
// Channel downmix averages the input channels; rate conversion uses
// cubic interpolation. Sources already in engine shape pass through
// untouched.
//
// # Format Registry
//
// The Registry lets callers resolve a decoder from a format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The root foabin package provides a registry pre-populated with every
// built-in format.
package audio
