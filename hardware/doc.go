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

// Package hardware is the base package for access to the FPGA peripherals.
// It has no code of its own. The sub-packages are:
//
//	registers    the register file: layouts, memory mapped and simulated
//	             regions, and the audio FIFO
//	device       the command channel that serialises access to the
//	             register file, through the kernel driver or directly
//	preferences  the runtime preferences for the device, game and audio
//
// The game and the audio pump only ever use the device.Channel. How the
// channel reaches the peripherals is decided once at start-up.
package hardware
