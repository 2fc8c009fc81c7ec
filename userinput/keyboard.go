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
	"errors"
	"io"
	"time"
)

// DefaultHold is how long a key is considered held after the most recent
// keypress. Long enough to bridge the gap before terminal auto-repeat begins.
const DefaultHold = 500 * time.Millisecond

// list of ASCII codes with special meaning
const (
	keyCarriageReturn = 13
	keyLineFeed       = 10
	keyEsc            = 27
	keySpace          = 32
	escCursor         = '['
)

// Keyboard is an input producer reading key presses from a terminal.
type Keyboard struct {
	ctrl *Controllers

	// how long a key is held after a keypress
	Hold time.Duration

	// time of the most recent press for every held key
	held map[string]time.Time

	// position in an escape sequence
	esc int
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard(state *State) *Keyboard {
	return &Keyboard{
		ctrl: NewControllers(state),
		Hold: DefaultHold,
		held: make(map[string]time.Time),
	}
}

// Feed a single byte from the terminal. Returns the name of the key that was
// pressed, or the empty string if the byte is part of an incomplete escape
// sequence or does not map to a key.
func (k *Keyboard) Feed(b byte, now time.Time) string {
	var key string

	switch k.esc {
	case 1:
		k.esc = 0
		if b == escCursor {
			k.esc = 2
		}
		return ""
	case 2:
		k.esc = 0
		switch b {
		case 'A':
			key = "Up"
		case 'B':
			key = "Down"
		case 'C':
			key = "Right"
		case 'D':
			key = "Left"
		}
	default:
		switch {
		case b == keyEsc:
			k.esc = 1
			return ""
		case b == keySpace:
			key = "Space"
		case b == keyCarriageReturn || b == keyLineFeed:
			key = "Enter"
		case b >= 'a' && b <= 'z':
			key = string(rune(b - 'a' + 'A'))
		case b >= 'A' && b <= 'Z':
			key = string(rune(b))
		}
	}

	if key == "" {
		return ""
	}

	k.held[key] = now
	k.ctrl.HandleEvent(EventKeyboard{Key: key, Down: true})
	return key
}

// Expire releases any key that has not been pressed within the hold period.
func (k *Keyboard) Expire(now time.Time) {
	for key, t := range k.held {
		if now.Sub(t) >= k.Hold {
			delete(k.held, key)
			k.ctrl.HandleEvent(EventKeyboard{Key: key, Down: false})
		}
	}
}

// releases every held key
func (k *Keyboard) releaseAll() {
	for key := range k.held {
		delete(k.held, key)
		k.ctrl.HandleEvent(EventKeyboard{Key: key, Down: false})
	}
}

// Run reads from r until quit is signalled or the reader is exhausted. All
// keys are released before returning. End of input is not an error.
func (k *Keyboard) Run(r io.Reader, quit <-chan bool) error {
	defer k.releaseAll()

	input := make(chan byte, 16)
	readErr := make(chan error, 1)
	done := make(chan bool)
	defer close(done)

	go func() {
		buf := make([]byte, 16)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				select {
				case input <- b:
				case <-done:
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	ticker := time.NewTicker(max(k.Hold/4, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case b := <-input:
			k.Feed(b, time.Now())
		case now := <-ticker.C:
			k.Expire(now)
		case err := <-readErr:
			// drain anything read before the error
			for {
				select {
				case b := <-input:
					k.Feed(b, time.Now())
					continue
				default:
				}
				break
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
