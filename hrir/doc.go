// SPDX-License-Identifier: EPL-2.0

// Package hrir models head-related impulse responses and the providers
// that produce them.
//
// A Provider answers one question: given a unit-vector direction, what
// filter pair does each ear hear from there? Two implementations exist:
//
//   - SyntheticProvider derives the pair analytically from a spherical
//     head model (interaural delay, head-shadow attenuation, a short
//     diffraction tail). It needs no data and never fails.
//   - DatasetProvider queries an externally supplied measured dataset
//     through the opaque Dataset interface. Opening the dataset can
//     fail; callers then fall back to the synthetic provider for every
//     speaker rather than mixing filter characters.
//
// Responses of either origin are fitted to the decoder's fixed tap
// length with FitLength (truncate or zero-pad) and collected into an
// immutable Set shared read-only with the audio path.
package hrir
