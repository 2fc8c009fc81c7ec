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

//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Address is unused in this build.
const Address = ""

// Server stands in for the stats server.
type Server struct{}

// Launch reports that the stats server is not available in this build.
func Launch(output io.Writer, _ string) *Server {
	fmt.Fprintln(output, "stats server not available (build with the statsview tag)")
	return &Server{}
}

// Stop does nothing.
func (s *Server) Stop() {}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
