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

//go:build windows

package userinput

import (
	"fmt"
	"os"
)

// Terminal is not available on windows.
type Terminal struct{}

// OpenTerminal always fails on windows.
func OpenTerminal(_ *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("terminal: cbreak mode not supported on this platform")
}

// Read implements the io.Reader interface.
func (t *Terminal) Read(_ []byte) (int, error) {
	return 0, fmt.Errorf("terminal: not supported")
}

// Close does nothing on windows.
func (t *Terminal) Close() error {
	return nil
}
