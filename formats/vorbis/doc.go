// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio.Source values.
//
// This package uses github.com/jfreymuth/oggvorbis, which decodes
// straight to interleaved float32, so samples pass through without a
// PCM conversion step.
package vorbis
