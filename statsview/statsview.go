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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the stats server if no address is given to Launch().
const Address = "localhost:12680"

const url = "/debug/statsview"

// the game loop and the audio pump allocate very little. a short sampling
// interval is needed to see the collector running at all
const (
	sampleInterval = 500 // milliseconds
	maxPoints      = 120
)

// Server is a running stats server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
}

// Launch the stats server in a new goroutine. An empty addr means Address.
// Failure to listen is written to output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(
		viewer.WithAddr(addr),
		viewer.WithInterval(sampleInterval),
		viewer.WithMaxPoints(maxPoints),
	)

	s := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}

	go func() {
		if err := s.mgr.Start(); err != nil {
			fmt.Fprintf(output, "stats server stopped: %v\n", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at http://%s%s\n", addr, url)
	return s
}

// Stop the stats server.
func (s *Server) Stop() {
	s.mgr.Stop()
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
