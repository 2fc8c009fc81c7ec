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

package registers

import (
	"errors"
	"io"

	"github.com/geodash-fpga/geodash/curated"
)

// Error patterns returned by File.
const (
	NoFIFO         = "registers: no audio FIFO (layout %s)"
	UnknownField   = "registers: %v not in layout %s"
	RegionTooSmall = "registers: %s region too small (%d < %d bytes)"
)

// File is the register set of the peripherals: the video registers and the
// optional audio FIFO.
type File struct {
	layout Layout
	video  Region

	fifoData Region
	fifoCSR  Region
}

// NewFile is the preferred method of initialisation for the File type. The
// video region must be large enough for the layout.
func NewFile(layout Layout, video Region) (*File, error) {
	if video.Size() < layout.VideoSize {
		return nil, curated.Errorf(RegionTooSmall, "video", video.Size(), layout.VideoSize)
	}
	return &File{
		layout: layout,
		video:  video,
	}, nil
}

// AttachFIFO adds the audio FIFO windows. Fails if the layout has no FIFO.
func (f *File) AttachFIFO(data Region, csr Region) error {
	if !f.layout.FIFO {
		return curated.Errorf(NoFIFO, f.layout.Name)
	}
	if data.Size() < f.layout.FIFOSize {
		return curated.Errorf(RegionTooSmall, "fifo", data.Size(), f.layout.FIFOSize)
	}
	if csr.Size() < f.layout.CSRSize {
		return curated.Errorf(RegionTooSmall, "csr", csr.Size(), f.layout.CSRSize)
	}
	f.fifoData = data
	f.fifoCSR = csr
	return nil
}

// Layout returns the layout the File was created with.
func (f *File) Layout() Layout {
	return f.layout
}

// HasFIFO returns true if the FIFO windows have been attached.
func (f *File) HasFIFO() bool {
	return f.fifoData != nil && f.fifoCSR != nil
}

// Write the value to the field's register. The value is truncated to the
// register's significant bits. Exactly one store is made.
func (f *File) Write(field Field, value uint16) error {
	r, ok := f.layout.Register(field)
	if !ok {
		return curated.Errorf(UnknownField, field, f.layout.Name)
	}
	f.video.Store16(r.Offset, r.Mask(value))
	return nil
}

// PushSample stores one sample in the FIFO data port.
func (f *File) PushSample(v uint16) error {
	if !f.HasFIFO() {
		return curated.Errorf(NoFIFO, f.layout.Name)
	}
	f.fifoData.Store32(FIFOData, uint32(v))
	return nil
}

// ReadStatus loads the FIFO status register.
func (f *File) ReadStatus() (FifoStatus, error) {
	if !f.HasFIFO() {
		return 0, curated.Errorf(NoFIFO, f.layout.Name)
	}
	return FifoStatus(f.fifoCSR.Load32(CSRStatus) & StatusMask), nil
}

// ReadFillLevel loads the FIFO fill level register.
func (f *File) ReadFillLevel() (uint32, error) {
	if !f.HasFIFO() {
		return 0, curated.Errorf(NoFIFO, f.layout.Name)
	}
	return f.fifoCSR.Load32(CSRFillLevel), nil
}

// Close any region that implements io.Closer. The File should not be used
// afterwards.
func (f *File) Close() error {
	var errs []error
	for _, r := range []Region{f.video, f.fifoData, f.fifoCSR} {
		if c, ok := r.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
