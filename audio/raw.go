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
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

// RawSource reads interleaved 16-bit little-endian stereo samples. The right
// channel is discarded.
type RawSource struct {
	r    *bufio.Reader
	rate int
}

// NewRawSource is the preferred method of initialisation for the RawSource
// type.
func NewRawSource(r io.Reader, sampleRate int) *RawSource {
	return &RawSource{
		r:    bufio.NewReader(r),
		rate: sampleRate,
	}
}

// Next implements the Source interface. A final frame with a left sample but
// no right sample is still returned.
func (src *RawSource) Next() (int16, error) {
	var frame [4]byte
	n, err := io.ReadFull(src.r, frame[:])
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) && n >= 2 {
			return int16(binary.LittleEndian.Uint16(frame[:2])), nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(frame[:2])), nil
}

// SampleRate implements the Source interface.
func (src *RawSource) SampleRate() int {
	return src.rate
}
