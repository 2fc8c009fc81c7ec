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
	"fmt"
	"strings"

	"github.com/geodash-fpga/geodash/curated"
)

// Field identifies a register in the video peripheral.
type Field int

// List of valid Field values.
const (
	PlayerY Field = iota
	XShift
	BackgroundR
	BackgroundG
	BackgroundB
	MapBlock
	Flags
	OutputFlags
	ScrollOffset
	numFields
)

var fieldNames = [numFields]string{
	"player_y",
	"x_shift",
	"bg_r",
	"bg_g",
	"bg_b",
	"map_block",
	"flags",
	"output_flags",
	"scroll_offset",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Register describes where a field lives in the video region. Every register
// is sixteen bits wide on the bus but some only have eight significant bits.
type Register struct {
	Field  Field
	Offset uint32
	Width  int
}

// Mask returns the value truncated to the register's significant bits.
func (r Register) Mask(v uint16) uint16 {
	if r.Width >= 16 {
		return v
	}
	return v & (1<<r.Width - 1)
}

// Offsets in the FIFO windows. The data port is a 32-bit store. The CSR
// layout is that of the Avalon FIFO core.
const (
	FIFOData     = 0x00
	CSRFillLevel = 0x00
	CSRStatus    = 0x04
	StatusMask   = 0x3f
	fifoDataSize = 0x08
	fifoCSRSize  = 0x20
	videoSize    = 0x20
)

// Layout is a versioned register map. A layout is chosen once at start-up by
// name (see LayoutByName()) and never changes.
type Layout struct {
	Name      string
	Registers []Register
	VideoSize uint32

	// whether the layout includes the audio FIFO windows
	FIFO     bool
	FIFOSize uint32
	CSRSize  uint32
}

func (l Layout) String() string {
	s := strings.Builder{}
	s.WriteString(l.Name)
	s.WriteString(":")
	for _, r := range l.Registers {
		s.WriteString(fmt.Sprintf(" %s@%#02x", r.Field, r.Offset))
	}
	if l.FIFO {
		s.WriteString(" +fifo")
	}
	return s.String()
}

// Register returns the register for the field, if the layout has it.
func (l Layout) Register(f Field) (Register, bool) {
	for _, r := range l.Registers {
		if r.Field == f {
			return r, true
		}
	}
	return Register{}, false
}

var videoRegisters = []Register{
	{Field: PlayerY, Offset: 0x00, Width: 16},
	{Field: XShift, Offset: 0x02, Width: 16},
	{Field: BackgroundR, Offset: 0x04, Width: 8},
	{Field: BackgroundG, Offset: 0x06, Width: 8},
	{Field: BackgroundB, Offset: 0x08, Width: 8},
	{Field: MapBlock, Offset: 0x0a, Width: 8},
	{Field: Flags, Offset: 0x0c, Width: 8},
	{Field: OutputFlags, Offset: 0x0e, Width: 8},
	{Field: ScrollOffset, Offset: 0x10, Width: 16},
}

// LayoutV1 is the video peripheral on its own.
var LayoutV1 = Layout{
	Name:      "v1",
	Registers: videoRegisters,
	VideoSize: videoSize,
}

// LayoutV2 is the video peripheral and the audio FIFO.
var LayoutV2 = Layout{
	Name:      "v2",
	Registers: videoRegisters,
	VideoSize: videoSize,
	FIFO:      true,
	FIFOSize:  fifoDataSize,
	CSRSize:   fifoCSRSize,
}

// Layouts lists all known layouts.
var Layouts = []Layout{LayoutV1, LayoutV2}

// UnknownLayout is the error pattern for LayoutByName().
const UnknownLayout = "registers: unknown layout (%s)"

// LayoutByName returns the named layout. Names are case insensitive.
func LayoutByName(name string) (Layout, error) {
	for _, l := range Layouts {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Layout{}, curated.Errorf(UnknownLayout, name)
}
