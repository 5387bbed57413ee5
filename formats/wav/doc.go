// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes PCM WAV streams.
//
// Decoding uses github.com/go-audio/wav and accepts 8/16/24/32-bit
// PCM; the decoder returns an audio.Source delivering float32 samples.
// WriteWAV16 writes interleaved 16-bit PCM at any channel count, which
// covers both mono fixtures and the stereo output of a binaural render:
//
//	var out bytes.Buffer
//	wav.WriteWAV16(&out, 48000, 2, stereoPCM)
package wav
