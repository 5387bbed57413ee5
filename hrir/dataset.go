// SPDX-License-Identifier: EPL-2.0

package hrir

import "fmt"

// Dataset is an opened head-related transfer-function dataset, such as
// a SOFA file. The core depends only on this surface: a fixed filter
// length, a per-direction query, and release of resources. Format
// internals live behind the implementation.
//
// Directions are unit vectors in the head frame (+x front, +y left,
// +z up); an implementation backed by a dataset with a different
// convention must translate before the lookup.
type Dataset interface {
	// FilterLength returns the length of every response in the dataset.
	FilterLength() int
	// Filter returns the response pair measured nearest to (x, y, z).
	Filter(x, y, z float64) (Pair, error)
	// Close releases the dataset.
	Close() error
}

// Opener opens a dataset resampled to the given rate. Opening may
// involve I/O and can fail; it runs only during initialization, never
// on the audio path.
type Opener func(sampleRate int) (Dataset, error)

// DatasetProvider adapts an open Dataset to the Provider interface.
type DatasetProvider struct {
	ds Dataset
}

// NewDatasetProvider wraps ds. The caller keeps ownership of the
// dataset and closes it after the filter set has been built.
func NewDatasetProvider(ds Dataset) (*DatasetProvider, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if ds.FilterLength() <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrBadFilterLength, ds.FilterLength())
	}
	return &DatasetProvider{ds: ds}, nil
}

// FilterLength returns the dataset's native response length.
func (p *DatasetProvider) FilterLength() int {
	return p.ds.FilterLength()
}

// ImpulseResponse looks the direction up in the dataset.
func (p *DatasetProvider) ImpulseResponse(x, y, z float64) (Pair, error) {
	pair, err := p.ds.Filter(x, y, z)
	if err != nil {
		return Pair{}, fmt.Errorf("dataset lookup: %w", err)
	}
	return pair, nil
}
