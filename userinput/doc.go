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

// Package userinput handles input from the player and turns it into the
// button snapshot read by the game once per tick.
//
// Input producers run in their own goroutine and publish to a State. The
// State is guarded by a mutex and the game only ever takes a copy of the
// latest snapshot, so the producer is never blocked by the game loop.
//
// The Keyboard producer reads the controlling terminal in cbreak mode.
// Terminals do not report key release so a key is considered held for a
// short period after the most recent keypress (or auto-repeat).
//
// The Script producer replays a fixed sequence of snapshots and is useful
// for demos and for driving the game deterministically.
package userinput
