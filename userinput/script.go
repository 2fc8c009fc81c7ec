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

package userinput

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/geodash-fpga/geodash/curated"
)

// Step is a snapshot held for a number of ticks.
type Step struct {
	Ticks   int
	Buttons Buttons
}

// Script replays a sequence of steps. Every call to Get() counts as one
// tick. Once the script is exhausted Get() returns an empty snapshot, unless
// Repeat is set.
type Script struct {
	crit  sync.Mutex
	steps []Step
	idx   int
	count int

	// start again from the first step when the script is exhausted
	Repeat bool
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

// Get implements the Input interface.
func (s *Script) Get() Buttons {
	s.crit.Lock()
	defer s.crit.Unlock()

	s.skip()
	if s.idx >= len(s.steps) && s.Repeat {
		s.idx = 0
		s.count = 0
		s.skip()
	}
	if s.idx >= len(s.steps) {
		return Buttons{}
	}

	s.count++
	return s.steps[s.idx].Buttons
}

// move past any completed steps
func (s *Script) skip() {
	for s.idx < len(s.steps) && s.count >= s.steps[s.idx].Ticks {
		s.idx++
		s.count = 0
	}
}

// Done returns true if the script is exhausted. A repeating script is never
// done unless it is empty.
func (s *Script) Done() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.idx >= len(s.steps) {
		return true
	}
	remaining := s.steps[s.idx].Ticks - s.count
	for _, st := range s.steps[s.idx+1:] {
		remaining += st.Ticks
	}
	if s.Repeat {
		for _, st := range s.steps[:s.idx] {
			remaining += st.Ticks
		}
	}
	return remaining <= 0
}

// Rewind starts the script again.
func (s *Script) Rewind() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.idx = 0
	s.count = 0
}

// ScriptError is returned by ParseScript for a malformed line.
const ScriptError = "script: line %d: %v"

// ParseScript reads a script, one step per line:
//
//	<ticks> [left] [right] [action] [start]
//
// A step with no buttons can be written with a dash. Blank lines and lines
// starting with # are ignored.
func ParseScript(r io.Reader) (*Script, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		ticks, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, curated.Errorf(ScriptError, ln, err)
		}
		if ticks < 0 {
			return nil, curated.Errorf(ScriptError, ln, "negative tick count")
		}

		var step Step
		step.Ticks = ticks
		for _, f := range fields[1:] {
			switch strings.ToLower(f) {
			case "left":
				step.Buttons.Left = true
			case "right":
				step.Buttons.Right = true
			case "action":
				step.Buttons.Action = true
			case "start":
				step.Buttons.Start = true
			case "-":
			default:
				return nil, curated.Errorf(ScriptError, ln, "unknown button: "+f)
			}
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ScriptError, ln, err)
	}

	return NewScript(steps...), nil
}
