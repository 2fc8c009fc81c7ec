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
	"github.com/hajimehoshi/go-mp3"
)

// NewMP3Source decodes MP3 data as it is needed. The go-mp3 decoder always
// produces 16-bit little-endian stereo, even for single channel files, so the
// decoded stream is read in the same way as a raw file.
func NewMP3Source(r io.Reader) (*RawSource, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(SourceError, err)
	}
	return NewRawSource(dec, dec.SampleRate()), nil
}
