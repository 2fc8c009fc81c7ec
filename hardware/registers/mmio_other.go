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

//go:build !linux

package registers

import (
	"errors"

	"github.com/geodash-fpga/geodash/curated"
)

// MMIO is a Region mapped from a physical address window. Only available on
// linux.
type MMIO struct{}

// NewMMIO always fails on this platform.
func NewMMIO(path string, base uint64, size uint32) (*MMIO, error) {
	return nil, curated.Errorf(MappingError, path, base, errors.New("not supported on this platform"))
}

// Size implements the Region interface.
func (m *MMIO) Size() uint32 { return 0 }

// Store16 implements the Region interface.
func (m *MMIO) Store16(offset uint32, v uint16) {}

// Store32 implements the Region interface.
func (m *MMIO) Store32(offset uint32, v uint32) {}

// Load32 implements the Region interface.
func (m *MMIO) Load32(offset uint32) uint32 { return 0 }

// Close implements the io.Closer interface.
func (m *MMIO) Close() error { return nil }
