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

// OpenMMIO maps the windows of the layout from the device file, normally
// /dev/mem. The FIFO bases are ignored if the layout has no FIFO.
func OpenMMIO(layout Layout, path string, videoBase uint64, fifoBase uint64, csrBase uint64) (*File, error) {
	video, err := NewMMIO(path, videoBase, layout.VideoSize)
	if err != nil {
		return nil, err
	}

	f, err := NewFile(layout, video)
	if err != nil {
		video.Close()
		return nil, err
	}

	if !layout.FIFO {
		return f, nil
	}

	data, err := NewMMIO(path, fifoBase, layout.FIFOSize)
	if err != nil {
		f.Close()
		return nil, err
	}
	csr, err := NewMMIO(path, csrBase, layout.CSRSize)
	if err != nil {
		data.Close()
		f.Close()
		return nil, err
	}

	err = f.AttachFIFO(data, csr)
	if err != nil {
		data.Close()
		csr.Close()
		f.Close()
		return nil, err
	}

	return f, nil
}

// NewSimulated creates a File with a Memory region for the video registers.
// The SimulatedFIFO is attached if the layout has a FIFO and fifo is not nil.
func NewSimulated(layout Layout, fifo *SimulatedFIFO) (*File, *Memory, error) {
	mem := NewMemory(layout.VideoSize)
	f, err := NewFile(layout, mem)
	if err != nil {
		return nil, nil, err
	}
	if layout.FIFO && fifo != nil {
		err = f.AttachFIFO(fifo.DataRegion(), fifo.CSRRegion())
		if err != nil {
			return nil, nil, err
		}
	}
	return f, mem, nil
}
