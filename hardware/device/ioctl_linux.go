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

package device

import (
	"os"
	"unsafe"

	"github.com/geodash-fpga/geodash/curated"
	"golang.org/x/sys/unix"
)

// IoctlTransport sends commands to the geo_dash kernel driver.
type IoctlTransport struct {
	f *os.File
}

// OpenIoctl opens the device file, normally /dev/geo_dash.
func OpenIoctl(path string) (*IoctlTransport, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, curated.Errorf(OpenError, path, err)
	}
	return &IoctlTransport{f: f}, nil
}

// Control implements the Transport interface.
func (t *IoctlTransport) Control(cmd Command, arg *Arg) (uint32, error) {
	if cmd.IsRead() {
		var v uint32
		err := t.ioctl(cmd.Request(), unsafe.Pointer(&v))
		return v, err
	}

	var rec [ArgSize]byte
	if arg != nil {
		b, err := arg.MarshalBinary()
		if err != nil {
			return 0, err
		}
		copy(rec[:], b)
	}
	return 0, t.ioctl(cmd.Request(), unsafe.Pointer(&rec[0]))
}

func (t *IoctlTransport) ioctl(req uintptr, p unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, t.f.Fd(), req, uintptr(p))
	switch errno {
	case 0:
		return nil
	case unix.EINVAL, unix.ENOTTY:
		return ErrInvalidCommand
	}
	return errno
}

// Close the device file.
func (t *IoctlTransport) Close() error {
	return t.f.Close()
}
