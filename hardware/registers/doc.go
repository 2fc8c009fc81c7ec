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

// Package registers gives typed access to the memory-mapped registers of the
// geodash video peripheral and the audio sample FIFO.
//
// The registers are reached through a Region. Three kinds of region are
// provided: MMIO maps a window of physical memory (/dev/mem) and is what the
// board uses when the kernel driver is not loaded; Memory is an in-process
// region that records every access, used by the simulator and in tests; and
// the SimulatedFIFO, which behaves like the FIFO peripheral's data and CSR
// windows.
//
// A File owns the video region and, if the layout has one, the FIFO windows.
// Every call on a File is exactly one bounded-width store or load. Nothing is
// read back: the video registers are write-only and the caller must keep a
// shadow copy of anything it needs.
//
// A File is not safe for concurrent use. Access should be serialised by the
// caller, normally by the device.Channel.
package registers
