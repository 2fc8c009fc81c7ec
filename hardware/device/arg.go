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

package device

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/geodash-fpga/geodash/hardware/registers"
)

// Arg is the argument record sent with every command. The whole record is
// sent but only the field named by the command is acted upon.
//
// The binary form is little-endian with no padding:
//
//	0x00 x_shift       u16
//	0x02 player_y      u16
//	0x04 bg_r          u8
//	0x05 bg_g          u8
//	0x06 bg_b          u8
//	0x07 map_block     u8
//	0x08 flags         u8
//	0x09 output_flags  u8
//	0x0a audio         u16
//	0x0c scroll_offset u16
type Arg struct {
	XShift       uint16
	PlayerY      uint16
	BackgroundR  uint8
	BackgroundG  uint8
	BackgroundB  uint8
	MapBlock     uint8
	Flags        uint8
	OutputFlags  uint8
	Audio        uint16
	ScrollOffset uint16
}

// ArgSize is the size of the binary form of Arg.
const ArgSize = 14

func (a Arg) String() string {
	return fmt.Sprintf("x=%d y=%d rgb=%02x%02x%02x blk=%d fl=%02x out=%02x aud=%04x scr=%d",
		a.XShift, a.PlayerY, a.BackgroundR, a.BackgroundG, a.BackgroundB,
		a.MapBlock, a.Flags, a.OutputFlags, a.Audio, a.ScrollOffset)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (a Arg) MarshalBinary() ([]byte, error) {
	b := bytes.NewBuffer(make([]byte, 0, ArgSize))
	if err := binary.Write(b, binary.LittleEndian, a); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (a *Arg) UnmarshalBinary(data []byte) error {
	if len(data) < ArgSize {
		return fmt.Errorf("device: argument record too short (%d bytes)", len(data))
	}
	return binary.Read(bytes.NewReader(data[:ArgSize]), binary.LittleEndian, a)
}

// Value returns the value of the record field that corresponds to the video
// register.
func (a Arg) Value(field registers.Field) uint16 {
	switch field {
	case registers.XShift:
		return a.XShift
	case registers.PlayerY:
		return a.PlayerY
	case registers.BackgroundR:
		return uint16(a.BackgroundR)
	case registers.BackgroundG:
		return uint16(a.BackgroundG)
	case registers.BackgroundB:
		return uint16(a.BackgroundB)
	case registers.MapBlock:
		return uint16(a.MapBlock)
	case registers.Flags:
		return uint16(a.Flags)
	case registers.OutputFlags:
		return uint16(a.OutputFlags)
	case registers.ScrollOffset:
		return a.ScrollOffset
	}
	return 0
}
