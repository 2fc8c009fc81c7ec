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

// Package game is the fixed-rate simulation that drives the video
// peripheral. It owns the player physics, the scrolling tilemap and the state
// machine:
//
//	Loading --(level loaded)--> Ready --(start)--> Playing
//	Playing --(death or end of level)--> GameOver --(start)--> Ready
//
// The player and the tilemap are re-initialised every time the Ready state is
// entered.
//
// Every tick ends by publishing the game state to the hardware through the
// command channel, one register per command. A failed command is logged and
// the tick continues. Values are saturated to the width of the register they
// are written to.
//
// Screen coordinates are used for the player, so y grows downwards and the
// player's position is the top edge of the player sprite.
package game
