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
	"os"
	"path/filepath"
	"strings"

	"github.com/geodash-fpga/geodash/curated"
)

// Source is a sequence of mono 16-bit samples. Next() returns io.EOF when the
// source is exhausted.
type Source interface {
	Next() (int16, error)
	SampleRate() int
}

// SourceError is the error pattern for problems opening or decoding a source.
const SourceError = "audio: %v"

// File is a Source read from a file. It must be closed after use.
type File struct {
	Source
	f *os.File
}

// Close the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}

// OpenSource opens the named file and chooses a decoder by extension: ".wav"
// and ".mp3" are decoded, anything else is raw interleaved 16-bit little-endian
// stereo at rawRate samples per second.
func OpenSource(filename string, rawRate int) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SourceError, err)
	}

	var src Source

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		src, err = NewWAVSource(f)
	case ".mp3":
		src, err = NewMP3Source(f)
	default:
		src = NewRawSource(f, rawRate)
	}

	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{Source: src, f: f}, nil
}
