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

// EventKeyboard is a key being pressed or released. Key names are the upper
// case letter for letter keys, otherwise one of "Space", "Enter", "Left",
// "Right", "Up", "Down".
type EventKeyboard struct {
	Key  string
	Down bool
}

// Controllers maps keyboard events onto the buttons in a State.
type Controllers struct {
	state *State

	// whether or not the last event was consumed as a button
	LastKeyHandled bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(state *State) *Controllers {
	return &Controllers{state: state}
}

// HandleEvent updates the State for the event. Events for keys that are not
// mapped to a button are ignored.
func (c *Controllers) HandleEvent(ev EventKeyboard) {
	var button func(b *Buttons) *bool

	switch ev.Key {
	case "A", "Left":
		button = func(b *Buttons) *bool { return &b.Left }
	case "D", "Right":
		button = func(b *Buttons) *bool { return &b.Right }
	case "Space", "W", "Up":
		button = func(b *Buttons) *bool { return &b.Action }
	case "Enter":
		button = func(b *Buttons) *bool { return &b.Start }
	default:
		c.LastKeyHandled = false
		return
	}

	c.LastKeyHandled = true
	c.state.Update(func(b *Buttons) {
		*button(b) = ev.Down
	})
}
