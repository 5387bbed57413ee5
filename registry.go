// SPDX-License-Identifier: EPL-2.0

package foabin

import (
	"github.com/ik5/foabin/audio"
	"github.com/ik5/foabin/formats/aiff"
	"github.com/ik5/foabin/formats/mp3"
	"github.com/ik5/foabin/formats/vorbis"
	"github.com/ik5/foabin/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder
// registered under its usual file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}
