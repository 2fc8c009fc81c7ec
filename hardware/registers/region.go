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

package registers

// Region is a window onto peripheral registers. Each call is exactly one
// access of the stated width. Offsets are relative to the start of the window
// and must be within Size() and aligned to the access width.
type Region interface {
	Store16(offset uint32, v uint16)
	Store32(offset uint32, v uint32)
	Load32(offset uint32) uint32
	Size() uint32
}
