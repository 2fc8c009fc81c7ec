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
	"errors"
	"fmt"
)

// ErrInvalidCommand is returned by the far side for a command it does not
// know. It indicates a logic error and should not be retried.
var ErrInvalidCommand = errors.New("invalid command")

// OpenError is the error pattern for failures to open the device file. It is
// fatal at start-up.
const OpenError = "device: cannot open %s: %v"

// CommandError is returned by every Channel method when the command fails.
// The shadow copy is not changed by a failed command.
type CommandError struct {
	Command Command
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("device: %s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
