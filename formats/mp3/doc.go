// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio.Source values.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// The decoder always produces stereo 16-bit PCM internally, converted
// here to interleaved float32.
package mp3
