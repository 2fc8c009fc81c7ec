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
	"strings"
	"sync"
)

// Buttons is a snapshot of the player's controls.
type Buttons struct {
	Left   bool
	Right  bool
	Action bool
	Start  bool
}

func (b Buttons) String() string {
	s := strings.Builder{}
	if b.Left {
		s.WriteString("left ")
	}
	if b.Right {
		s.WriteString("right ")
	}
	if b.Action {
		s.WriteString("action ")
	}
	if b.Start {
		s.WriteString("start ")
	}
	if s.Len() == 0 {
		return "-"
	}
	return strings.TrimSpace(s.String())
}

// Pressed returns the buttons that are down in b but were not down in prev.
func (b Buttons) Pressed(prev Buttons) Buttons {
	return Buttons{
		Left:   b.Left && !prev.Left,
		Right:  b.Right && !prev.Right,
		Action: b.Action && !prev.Action,
		Start:  b.Start && !prev.Start,
	}
}

// Input is implemented by anything that can provide the latest snapshot.
type Input interface {
	Get() Buttons
}

// State is the shared snapshot written by an input producer and read by the
// game.
type State struct {
	crit    sync.Mutex
	buttons Buttons
}

// Get returns a copy of the latest snapshot.
func (s *State) Get() Buttons {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.buttons
}

// Set replaces the snapshot.
func (s *State) Set(b Buttons) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.buttons = b
}

// Update changes the snapshot with the supplied function.
func (s *State) Update(f func(b *Buttons)) {
	s.crit.Lock()
	defer s.crit.Unlock()
	f(&s.buttons)
}
