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
	"fmt"
	"unsafe"

	"github.com/geodash-fpga/geodash/hardware/registers"
)

// Command identifies one operation on the register file. The value of a
// Command is also the ioctl command number.
type Command int

// List of valid Command values.
const (
	SetXShift Command = iota
	SetPlayerY
	SetBackgroundR
	SetBackgroundG
	SetBackgroundB
	SetMapBlock
	SetFlags
	SetOutputFlags
	SetScrollOffset
	PushAudioSample
	ReadFifoFillLevel
	ReadFifoStatus
	numCommands
)

var commandNames = [numCommands]string{
	"SetXShift",
	"SetPlayerY",
	"SetBackgroundR",
	"SetBackgroundG",
	"SetBackgroundB",
	"SetMapBlock",
	"SetFlags",
	"SetOutputFlags",
	"SetScrollOffset",
	"PushAudioSample",
	"ReadFifoFillLevel",
	"ReadFifoStatus",
}

func (cmd Command) String() string {
	if !cmd.Valid() {
		return fmt.Sprintf("Command(%d)", int(cmd))
	}
	return commandNames[cmd]
}

// Valid returns true if the command is known.
func (cmd Command) Valid() bool {
	return cmd >= 0 && cmd < numCommands
}

// IsRead returns true if the command returns telemetry.
func (cmd Command) IsRead() bool {
	return cmd == ReadFifoFillLevel || cmd == ReadFifoStatus
}

// Field returns the video register written by the command. Returns false for
// the audio commands.
func (cmd Command) Field() (registers.Field, bool) {
	switch cmd {
	case SetXShift:
		return registers.XShift, true
	case SetPlayerY:
		return registers.PlayerY, true
	case SetBackgroundR:
		return registers.BackgroundR, true
	case SetBackgroundG:
		return registers.BackgroundG, true
	case SetBackgroundB:
		return registers.BackgroundB, true
	case SetMapBlock:
		return registers.MapBlock, true
	case SetFlags:
		return registers.Flags, true
	case SetOutputFlags:
		return registers.OutputFlags, true
	case SetScrollOffset:
		return registers.ScrollOffset, true
	}
	return 0, false
}

// ioctl request encoding. these values are the same for every architecture
// the board might use
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2
)

// Magic is the ioctl type of the geo_dash driver.
const Magic = 'q'

// the argument of every ioctl is a pointer, either to the argument record or
// to a uint32
const ptrSize = unsafe.Sizeof(uintptr(0))

func ioc(dir uintptr, typ uintptr, nr uintptr, size uintptr) uintptr {
	return dir<<iocDirShift | size<<iocSizeShift | typ<<iocTypeShift | nr<<iocNRShift
}

// Request returns the ioctl request number of the command. Writes are
// _IOW('q', n, geo_dash_arg_t *) and reads are _IOR('q', n, uint32_t *).
func (cmd Command) Request() uintptr {
	dir := uintptr(iocWrite)
	if cmd.IsRead() {
		dir = iocRead
	}
	return ioc(dir, Magic, uintptr(cmd), ptrSize)
}
