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

// Package wavwriter captures audio samples and writes them to disk as a 16-bit
// mono WAV file. Samples are buffered in memory in their entirety and written
// when Close() is called. It is therefore only suitable for testing and
// diagnostics.
//
// With the simulated device backend the WavWriter is attached to the
// simulated FIFO so that the file contains exactly what the peripheral would
// have played.
package wavwriter

import (
	"io"
	"os"
	"sync"

	"github.com/geodash-fpga/geodash/curated"
	"github.com/geodash-fpga/geodash/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// WavWriter collects samples for writing to a WAV file.
type WavWriter struct {
	crit       sync.Mutex
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}, nil
}

// ConsumeSample implements the registers.FIFOSink interface.
func (aw *WavWriter) ConsumeSample(v int16) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	aw.buffer = append(aw.buffer, int(v))
}

// Len returns the number of samples collected.
func (aw *WavWriter) Len() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// Encode the collected samples as a WAV file to the io.WriteSeeker.
func (aw *WavWriter) Encode(w io.WriteSeeker) error {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	enc := wav.NewEncoder(w, aw.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Close writes the collected samples to the file named in New().
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", aw.Len(), aw.filename)

	return aw.Encode(f)
}
