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

// Package audio streams a sound file into the audio FIFO of the peripheral.
//
// A Source decodes a file into a sequence of mono samples. Stereo sources
// contribute their left channel only. The Pump pushes samples one at a time
// through the device.Channel, pacing itself with the host clock, and
// periodically reads the FIFO telemetry for the log.
//
// The pump does not adapt its rate to the FIFO telemetry. Overflow and
// underflow are logged and counted but nothing else.
package audio
