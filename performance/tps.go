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

package performance

// CalcTPS takes the the number of ticks, the duration (in seconds) and the
// requested tick rate and returns the ticks-per-second and the accuracy of
// that value as a percentage.
func CalcTPS(numTicks int, duration float64, hz float32) (tps float64, accuracy float64) {
	if duration <= 0 || hz <= 0 {
		return 0, 0
	}
	tps = float64(numTicks) / duration
	accuracy = 100 * tps / float64(hz)
	return tps, accuracy
}
