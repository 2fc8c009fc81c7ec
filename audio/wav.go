// This file is part of Geodash.
//
// Geodash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Geodash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Geodash.  If not, see <https://www.gnu.org/licenses/>.

package audio

import (
	"io"

	"github.com/geodash-fpga/geodash/curated"
	"github.com/go-audio/wav"
)

// WAVSource is a Source decoded from a WAV file. The first channel of a
// multi-channel file is used. Samples are scaled to 16 bits.
type WAVSource struct {
	data []int
	idx  int
	rate int
}

// NewWAVSource decodes the whole of the WAV data.
func NewWAVSource(r io.ReadSeeker) (*WAVSource, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf(SourceError, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(SourceError, err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}
	depth := int(dec.BitDepth)

	src := &WAVSource{
		data: make([]int, 0, len(buf.Data)/chans),
		rate: int(dec.SampleRate),
	}

	// first channel only
	for i := 0; i < len(buf.Data); i += chans {
		src.data = append(src.data, scale(buf.Data[i], depth))
	}

	return src, nil
}

// scale a sample of the given bit depth to 16 bits. eight bit WAV data is
// unsigned
func scale(v int, depth int) int {
	switch {
	case depth == 8:
		return (v - 128) << 8
	case depth > 16:
		return v >> (depth - 16)
	case depth < 16 && depth > 0:
		return v << (16 - depth)
	}
	return v
}

// Next implements the Source interface.
func (src *WAVSource) Next() (int16, error) {
	if src.idx >= len(src.data) {
		return 0, io.EOF
	}
	v := src.data[src.idx]
	src.idx++
	return int16(v), nil
}

// SampleRate implements the Source interface.
func (src *WAVSource) SampleRate() int {
	return src.rate
}

// Len returns the number of samples in the source.
func (src *WAVSource) Len() int {
	return len(src.data)
}
