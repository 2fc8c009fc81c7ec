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

import "math"

// Colour is a background colour.
type Colour struct {
	R, G, B int32
}

// The background colour moves from StartColour to EndColour as the player
// progresses through the level.
var (
	StartColour = Colour{R: 0x20, G: 0x40, B: 0xc0}
	EndColour   = Colour{R: 0xc0, G: 0x20, B: 0x40}
)

// Background returns the background colour for the progress percentage. The
// progress is clamped to the range [0, 100].
func Background(progress int) (uint8, uint8, uint8) {
	p := int32(min(max(progress, 0), 100))
	return clampU8(lerp(StartColour.R, EndColour.R, p)),
		clampU8(lerp(StartColour.G, EndColour.G, p)),
		clampU8(lerp(StartColour.B, EndColour.B, p))
}

func lerp(from, to, pct int32) int32 {
	return from + (to-from)*pct/100
}

// saturate to the range of an 8 bit register
func clampU8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}

// saturate to the range of a 16 bit register
func clampU16(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
