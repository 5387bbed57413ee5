// SPDX-License-Identifier: EPL-2.0

// Package foabin renders mono sources to binaural stereo through
// first-order ambisonics: each source is encoded to a 4-channel
// B-format stream at its own direction, summed on a shared bus, and
// decoded for headphones through a ring of eight virtual loudspeakers
// convolved with head-related impulse responses.
//
// # Quick Start
//
// The simplest way to spatialize audio is RenderToStereo16:
//
//	// Decode a source file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("voice.wav")
//	src, _ := decoder.Decode(file)
//
//	// Place it 90° to the listener's left and render
//	sources := []foabin.PositionedSource{{
//	    Source:    src,
//	    Direction: foa.Direction{Azimuth: math.Pi / 2},
//	}}
//	pcm16, rate, _ := foabin.RenderToStereo16(sources, 48000)
//
//	// pcm16 is now interleaved stereo 16-bit PCM at 48kHz
//
// # Real-Time Rendering
//
// For live output, build an engine and drive it from an audio callback:
//
//	eng, _ := engine.New(engine.WithSampleRate(48000))
//	track := eng.AddSource(src, foa.Direction{})
//	go eng.Initialize(context.Background())
//
//	// per audio block:
//	eng.Process(stereoBlock)
//
//	// from the UI, at any time:
//	track.SetPosition(foa.Direction{Azimuth: -math.Pi / 4})
//
// The engine emits silence until initialization finishes, so the
// callback can start immediately. Direction changes are lock-free and
// smoothed, so dragging a source never clicks.
//
// # Measured HRTFs
//
// By default filters come from a synthetic head model. A measured
// dataset (e.g. a SOFA file opened by an external binding) can be
// supplied through engine.WithDataset; if it fails to open or times
// out, the engine logs the reason and falls back to the synthetic
// model. Audio keeps flowing either way.
//
// # Source Formats
//
// Decoders for WAV, MP3, Ogg Vorbis and AIFF live under formats/; all
// return an audio.Source, and DefaultRegistry maps the usual file
// extensions to them. Any sample rate or channel count is accepted;
// the engine conforms every source to mono at its own rate.
//
// # Packages
//
//   - foa: encoder, bus, decode matrix and binaural decoder
//   - hrir: impulse-response model, synthetic and dataset providers
//   - engine: graph composition, lifecycle, real-time processing
//   - audio: Source interface, conforming stage, decoder registry
//   - formats/...: format decoders and the WAV writer
package foabin
