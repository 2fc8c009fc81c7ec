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

//go:build linux

package registers

import (
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/geodash-fpga/geodash/curated"
	"golang.org/x/sys/unix"
)

// MMIO is a Region mapped from a physical address window, normally through
// /dev/mem.
type MMIO struct {
	mem []byte

	// offset of the window within the page aligned mapping
	start uint32
	size  uint32
}

// NewMMIO maps size bytes of the device file at the physical base address.
// The base does not need to be page aligned.
func NewMMIO(path string, base uint64, size uint32) (*MMIO, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(MappingError, path, base, err)
	}

	// the mapping outlives the file descriptor
	defer f.Close()

	pageSize := uint64(os.Getpagesize())
	aligned := base &^ (pageSize - 1)
	start := uint32(base - aligned)

	mem, err := unix.Mmap(int(f.Fd()), int64(aligned), int(start+size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, curated.Errorf(MappingError, path, base, err)
	}

	return &MMIO{
		mem:   mem,
		start: start,
		size:  size,
	}, nil
}

func (m *MMIO) ptr(offset uint32) unsafe.Pointer {
	return unsafe.Pointer(&m.mem[m.start+offset])
}

// Size implements the Region interface.
func (m *MMIO) Size() uint32 {
	return m.size
}

// Store16 implements the Region interface.
func (m *MMIO) Store16(offset uint32, v uint16) {
	store16(m.ptr(offset), v)
}

// Store32 implements the Region interface.
func (m *MMIO) Store32(offset uint32, v uint32) {
	atomic.StoreUint32((*uint32)(m.ptr(offset)), v)
}

// Load32 implements the Region interface.
func (m *MMIO) Load32(offset uint32) uint32 {
	return atomic.LoadUint32((*uint32)(m.ptr(offset)))
}

// Close unmaps the window.
func (m *MMIO) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	m.mem = nil
	return err
}

// there is no sixteen bit atomic store. the store must not be merged with or
// elided in favour of neighbouring stores
//
//go:noinline
func store16(p unsafe.Pointer, v uint16) {
	*(*uint16)(p) = v
}
