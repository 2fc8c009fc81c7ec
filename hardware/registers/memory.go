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
	"encoding/binary"
	"fmt"
	"sync"
)

// Op is the kind of a recorded access.
type Op int

// List of valid Op values.
const (
	OpStore16 Op = iota
	OpStore32
	OpLoad32
)

func (op Op) String() string {
	switch op {
	case OpStore16:
		return "store16"
	case OpStore32:
		return "store32"
	case OpLoad32:
		return "load32"
	}
	return "unknown"
}

// Access is one recorded access to a Memory region.
type Access struct {
	Op     Op
	Offset uint32
	Value  uint32
}

func (a Access) String() string {
	return fmt.Sprintf("%s %#02x %#04x", a.Op, a.Offset, a.Value)
}

// Memory is an in-process Region backed by a byte slice. Every access is
// recorded in order. Safe for concurrent use.
type Memory struct {
	crit     sync.Mutex
	data     []byte
	accesses []Access
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(size uint32) *Memory {
	return &Memory{
		data: make([]byte, size),
	}
}

// Size implements the Region interface.
func (m *Memory) Size() uint32 {
	return uint32(len(m.data))
}

// Store16 implements the Region interface.
func (m *Memory) Store16(offset uint32, v uint16) {
	m.crit.Lock()
	defer m.crit.Unlock()
	binary.LittleEndian.PutUint16(m.data[offset:], v)
	m.accesses = append(m.accesses, Access{Op: OpStore16, Offset: offset, Value: uint32(v)})
}

// Store32 implements the Region interface.
func (m *Memory) Store32(offset uint32, v uint32) {
	m.crit.Lock()
	defer m.crit.Unlock()
	binary.LittleEndian.PutUint32(m.data[offset:], v)
	m.accesses = append(m.accesses, Access{Op: OpStore32, Offset: offset, Value: v})
}

// Load32 implements the Region interface.
func (m *Memory) Load32(offset uint32) uint32 {
	m.crit.Lock()
	defer m.crit.Unlock()
	v := binary.LittleEndian.Uint32(m.data[offset:])
	m.accesses = append(m.accesses, Access{Op: OpLoad32, Offset: offset, Value: v})
	return v
}

// Peek16 returns the value at the offset without recording an access.
func (m *Memory) Peek16(offset uint32) uint16 {
	m.crit.Lock()
	defer m.crit.Unlock()
	return binary.LittleEndian.Uint16(m.data[offset:])
}

// Poke32 sets the value at the offset without recording an access. Used to
// prepare values for Load32().
func (m *Memory) Poke32(offset uint32, v uint32) {
	m.crit.Lock()
	defer m.crit.Unlock()
	binary.LittleEndian.PutUint32(m.data[offset:], v)
}

// Accesses returns a copy of the recorded accesses, oldest first.
func (m *Memory) Accesses() []Access {
	m.crit.Lock()
	defer m.crit.Unlock()
	return append([]Access(nil), m.accesses...)
}

// ClearAccesses forgets all recorded accesses. Memory contents are
// unchanged.
func (m *Memory) ClearAccesses() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.accesses = m.accesses[:0]
}
