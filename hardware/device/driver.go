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
	"github.com/geodash-fpga/geodash/hardware/registers"
)

// Driver is an in-process Transport that acts on a registers.File directly.
// It behaves like the kernel driver: the argument record is copied and only
// the field named by the command is used.
type Driver struct {
	regs *registers.File
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(regs *registers.File) *Driver {
	return &Driver{regs: regs}
}

// Control implements the Transport interface.
func (d *Driver) Control(cmd Command, arg *Arg) (uint32, error) {
	var rec Arg
	if arg != nil {
		rec = *arg
	}

	if field, ok := cmd.Field(); ok {
		return 0, d.regs.Write(field, rec.Value(field))
	}

	switch cmd {
	case PushAudioSample:
		return 0, d.regs.PushSample(rec.Audio)
	case ReadFifoStatus:
		s, err := d.regs.ReadStatus()
		return uint32(s), err
	case ReadFifoFillLevel:
		return d.regs.ReadFillLevel()
	}

	return 0, ErrInvalidCommand
}

// Close the register file.
func (d *Driver) Close() error {
	return d.regs.Close()
}
