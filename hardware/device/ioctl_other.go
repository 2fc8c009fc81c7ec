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

package device

import (
	"errors"

	"github.com/geodash-fpga/geodash/curated"
)

// IoctlTransport sends commands to the geo_dash kernel driver. Only available
// on linux.
type IoctlTransport struct{}

// OpenIoctl always fails on this platform.
func OpenIoctl(path string) (*IoctlTransport, error) {
	return nil, curated.Errorf(OpenError, path, errors.New("not supported on this platform"))
}

// Control implements the Transport interface.
func (t *IoctlTransport) Control(cmd Command, arg *Arg) (uint32, error) {
	return 0, ErrInvalidCommand
}

// Close implements the io.Closer interface.
func (t *IoctlTransport) Close() error {
	return nil
}
