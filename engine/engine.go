// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ik5/foabin/audio"
	"github.com/ik5/foabin/foa"
	"github.com/ik5/foabin/hrir"
)

// Engine composes the spatial signal path: each added source is
// conformed to mono at the engine rate, encoded to first-order
// ambisonics at its own direction, summed on the shared bus, and
// decoded to stereo through the virtual speaker ring.
//
// An engine has an explicit lifetime: construct it with New, add
// sources, run Initialize once, drive Process from the audio callback,
// and Close when done. There is no global instance.
//
// Process is the real-time side. It never allocates, locks, logs, or
// performs I/O, and until Initialize publishes the decoder tables it
// produces silence instead of blocking. Everything else (AddSource,
// Initialize, Close) belongs to the control side and must not run
// concurrently with Process, with one exception: Initialize may overlap
// a live Process loop, which is the normal startup order. Direction
// changes go through Track.SetPosition, which is safe at any time.
type Engine struct {
	cfg config

	tracks []*Track
	bus    *foa.Bus
	dec    *foa.Decoder

	monoBuf  []float32
	frameBuf []foa.Frame
}

// Track is one spatialized source within an engine.
type Track struct {
	src audio.Source
	enc *foa.Encoder

	done bool
	err  error
}

// SetPosition publishes a new direction for the track. Safe to call
// from any goroutine; updates take effect at the next block, smoothed
// over the following samples. When several updates land within one
// block the last one wins.
func (t *Track) SetPosition(d foa.Direction) {
	t.enc.SetTarget(d)
}

// Done reports whether the track's source is exhausted.
func (t *Track) Done() bool { return t.done }

// Err returns the read error that ended the track early, if any.
// A normal end of stream leaves Err nil.
func (t *Track) Err() error { return t.err }

// New constructs an engine. The zero option set gives 48 kHz, 128-frame
// blocks, 8 virtual speakers with 128-tap filters, and the synthetic
// head model.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Engine{
		cfg:      cfg,
		bus:      foa.NewBus(cfg.blockSize),
		dec:      foa.NewDecoder(cfg.speakers, cfg.taps),
		monoBuf:  make([]float32, cfg.blockSize),
		frameBuf: make([]foa.Frame, cfg.blockSize),
	}, nil
}

// SampleRate returns the engine sample rate in Hz.
func (e *Engine) SampleRate() int { return e.cfg.sampleRate }

// BlockSize returns the frames processed per block.
func (e *Engine) BlockSize() int { return e.cfg.blockSize }

// Taps returns the binaural filter length.
func (e *Engine) Taps() int { return e.cfg.taps }

// Ready reports whether Initialize has published the decoder tables.
func (e *Engine) Ready() bool { return e.dec.Ready() }

// AddSource attaches src at direction d and returns its track. The
// source is conformed to mono at the engine rate if needed. Not safe
// while Process is running.
func (e *Engine) AddSource(src audio.Source, d foa.Direction) *Track {
	t := &Track{
		src: audio.Conform(src, e.cfg.sampleRate),
		enc: foa.NewEncoder(d),
	}
	e.tracks = append(e.tracks, t)
	return t
}

// Active returns the number of tracks still producing samples.
func (e *Engine) Active() int {
	n := 0
	for _, t := range e.tracks {
		if !t.done {
			n++
		}
	}
	return n
}

// Initialize builds the decode matrix and the binaural filter set and
// publishes them to the decoder. With a dataset opener configured it
// tries the dataset first, bounded by the initialization timeout; any
// failure is logged and recovered by using the synthetic head model for
// all speakers, so Initialize only returns an error when the decoder
// rejects the built tables, which indicates a bug rather than bad data.
//
// Run it once before or concurrently with the first Process calls;
// blocks processed before it completes come out silent.
func (e *Engine) Initialize(ctx context.Context) error {
	provider, release := e.resolveProvider(ctx)
	defer release()

	azimuths := foa.RingLayout(e.cfg.speakers)
	dirs := make([][3]float64, len(azimuths))
	for s, az := range azimuths {
		x, y, z := foa.Direction{Azimuth: az}.Vector()
		dirs[s] = [3]float64{x, y, z}
	}

	set, err := hrir.BuildSet(provider, dirs, e.cfg.taps)
	if err != nil {
		// A lookup failure after a successful open still falls back
		// whole-sale; partial sets never reach the decoder.
		e.cfg.logger.Warn("hrir lookup failed, using synthetic head model", "error", err)
		set, _ = hrir.BuildSet(hrir.NewSyntheticProvider(e.cfg.sampleRate), dirs, e.cfg.taps)
	}

	left, right := set.Split()
	return e.dec.Init(foa.NewRingMatrix(azimuths), left, right)
}

// resolveProvider picks the dataset when one opens in time, otherwise
// the synthetic model. The returned release func closes the dataset
// once the filter set has been built; for the synthetic model it is a
// no-op.
func (e *Engine) resolveProvider(ctx context.Context) (hrir.Provider, func()) {
	synthetic := func() (hrir.Provider, func()) {
		return hrir.NewSyntheticProvider(e.cfg.sampleRate), func() {}
	}
	if e.cfg.opener == nil {
		return synthetic()
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.initTimeout)
	defer cancel()

	ds, err := openDataset(ctx, e.cfg.opener, e.cfg.sampleRate)
	if err != nil {
		e.cfg.logger.Warn("hrtf dataset unavailable, using synthetic head model",
			slog.Any("error", err))
		return synthetic()
	}

	p, err := hrir.NewDatasetProvider(ds)
	if err != nil {
		e.cfg.logger.Warn("hrtf dataset rejected, using synthetic head model",
			slog.Any("error", err))
		ds.Close()
		return synthetic()
	}
	return p, func() { ds.Close() }
}

// openDataset runs the opener bounded by ctx. A dataset that arrives
// after the deadline is closed in the background.
func openDataset(ctx context.Context, open hrir.Opener, rate int) (hrir.Dataset, error) {
	type result struct {
		ds  hrir.Dataset
		err error
	}
	ch := make(chan result, 1)
	go func() {
		ds, err := open(rate)
		ch <- result{ds: ds, err: err}
	}()

	select {
	case r := <-ch:
		return r.ds, r.err
	case <-ctx.Done():
		go func() {
			if r := <-ch; r.ds != nil {
				r.ds.Close()
			}
		}()
		return nil, ctx.Err()
	}
}

// Process renders len(dst)/2 frames of interleaved stereo into dst.
// dst length must be even. The buffer is always filled: exhausted
// tracks, an uninitialized decoder, or an engine with no sources all
// contribute silence. No condition here is fatal; a source read error
// ends that track and the rest keep playing.
func (e *Engine) Process(dst []float32) {
	frames := len(dst) / 2
	block := e.cfg.blockSize

	for done := 0; done < frames; {
		n := min(block, frames-done)

		e.bus.Clear()
		for _, t := range e.tracks {
			if t.done {
				continue
			}
			got := e.readTrack(t, n)
			if got == 0 {
				continue
			}
			t.enc.Encode(e.monoBuf[:got], e.frameBuf[:got])
			e.bus.Accumulate(e.frameBuf[:got])
		}

		e.dec.Decode(e.bus.Frames()[:n], dst[2*done:2*(done+n)])
		done += n
	}
}

// readTrack fills monoBuf with up to n samples from t, zero-padding a
// short final read. Errors mark the track done; the audio path never
// propagates them.
func (e *Engine) readTrack(t *Track, n int) int {
	got := 0
	for got < n {
		m, err := t.src.ReadSamples(e.monoBuf[got:n])
		got += m
		if err == io.EOF {
			t.done = true
			break
		}
		if err != nil {
			t.done = true
			t.err = err
			break
		}
		if m == 0 {
			break
		}
	}
	clear(e.monoBuf[got:n])
	return got
}

// FlushTail renders the convolution tail left in the decoder delay
// lines after all tracks have ended: exactly Taps frames of stereo.
// The returned slice is freshly allocated; offline renders append it
// after the last Process block.
func (e *Engine) FlushTail() []float32 {
	tail := make([]float32, 2*e.cfg.taps)
	e.Process(tail)
	return tail
}

// Close releases every track source.
func (e *Engine) Close() error {
	var errs []error
	for _, t := range e.tracks {
		if err := t.src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
