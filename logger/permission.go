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

package logger

// Permission is implemented by anything that makes log requests. An entry is
// only added if AllowLogging() returns true at the time of the request.
//
// The game loop and the audio pump log with their environment.Environment as
// the Permission. Code that runs outside of an environment, such as the mode
// selection in main, uses Allow.
type Permission interface {
	AllowLogging() bool
}

// a fixed answer to AllowLogging()
type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are Permissions that always or never allow logging.
var (
	Allow Permission = permission(true)
	Deny  Permission = permission(false)
)
