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

//go:build !windows

package userinput

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal puts a terminal into cbreak mode for the Keyboard and restores it
// on Close().
type Terminal struct {
	input *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// OpenTerminal switches the terminal to cbreak mode. Fails if the file is
// not a terminal.
func OpenTerminal(input *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("terminal: no input file")
	}

	t := &Terminal{input: input}

	err := termios.Tcgetattr(t.input.Fd(), &t.canAttr)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	err = termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	return t, nil
}

// Read implements the io.Reader interface.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.input.Read(p)
}

// Close returns the terminal to canonical mode.
func (t *Terminal) Close() error {
	return termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}
