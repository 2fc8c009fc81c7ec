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

package game

// State of the game.
type State int

// List of valid State values.
const (
	Loading State = iota
	Ready
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return "unknown state"
}

// Flag returns the value published with the SetOutputFlags command.
func (s State) Flag() uint8 {
	switch s {
	case Loading:
		return 0x01
	case Ready:
		return 0x02
	case Playing:
		return 0x04
	case GameOver:
		return 0x08
	}
	return 0x00
}
