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

// Package device is the boundary between the game logic and the register
// file. Every register is reached through a Channel, which has one method per
// command. Each command writes or reads exactly one register and commands are
// never batched.
//
// The Channel sends commands through a Transport. On the board the transport
// is an IoctlTransport, talking to the geo_dash kernel driver through its
// device file. For the mmio and simulated backends the transport is a Driver,
// which does in-process what the kernel driver does: copy the argument record
// and act on the one field that the command names.
//
// A Channel can be shared by the game loop and the audio pump. Commands are
// serialised so that no two commands interleave.
package device
