// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/foabin/foa"
	"github.com/ik5/foabin/hrir"
)

// Defaults used by New when no option overrides them.
const (
	DefaultSampleRate  = 48000
	DefaultBlockSize   = 128
	DefaultInitTimeout = 5 * time.Second
)

// Option mutates construction-time engine parameters.
type Option func(*config) error

type config struct {
	sampleRate  int
	blockSize   int
	taps        int
	speakers    int
	initTimeout time.Duration
	opener      hrir.Opener
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		sampleRate:  DefaultSampleRate,
		blockSize:   DefaultBlockSize,
		taps:        foa.DefaultTaps,
		speakers:    foa.DefaultSpeakers,
		initTimeout: DefaultInitTimeout,
		logger:      slog.Default(),
	}
}

// WithSampleRate sets the engine sample rate in Hz.
func WithSampleRate(rate int) Option {
	return func(cfg *config) error {
		if rate <= 0 {
			return fmt.Errorf("%w: sample rate %d", ErrBadOption, rate)
		}
		cfg.sampleRate = rate
		return nil
	}
}

// WithBlockSize sets the number of frames processed per block.
func WithBlockSize(frames int) Option {
	return func(cfg *config) error {
		if frames <= 0 {
			return fmt.Errorf("%w: block size %d", ErrBadOption, frames)
		}
		cfg.blockSize = frames
		return nil
	}
}

// WithTaps sets the binaural filter length in samples. Longer filters
// raise decode cost linearly; taps and speaker count dominate the cost
// of the whole pipeline.
func WithTaps(taps int) Option {
	return func(cfg *config) error {
		if taps <= 0 {
			return fmt.Errorf("%w: taps %d", ErrBadOption, taps)
		}
		cfg.taps = taps
		return nil
	}
}

// WithSpeakers sets the virtual loudspeaker count of the decode ring.
func WithSpeakers(n int) Option {
	return func(cfg *config) error {
		if n < 2 {
			return fmt.Errorf("%w: speakers %d", ErrBadOption, n)
		}
		cfg.speakers = n
		return nil
	}
}

// WithDataset supplies an opener for a measured HRTF dataset. When
// opening fails or exceeds the initialization timeout, the engine falls
// back to the synthetic head model for every speaker.
func WithDataset(open hrir.Opener) Option {
	return func(cfg *config) error {
		if open == nil {
			return fmt.Errorf("%w: nil dataset opener", ErrBadOption)
		}
		cfg.opener = open
		return nil
	}
}

// WithInitTimeout bounds how long Initialize waits on the dataset
// opener before falling back.
func WithInitTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return fmt.Errorf("%w: init timeout %s", ErrBadOption, d)
		}
		cfg.initTimeout = d
		return nil
	}
}

// WithLogger sets the logger used for initialization diagnostics. The
// audio path itself never logs.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrBadOption)
		}
		cfg.logger = l
		return nil
	}
}
