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

import "strings"

// FifoStatus is the six bit status register of the audio FIFO.
//
//	bit 0  full
//	bit 1  empty
//	bit 2  almost empty
//	bit 3  almost full
//	bit 4  overflow (sticky)
//	bit 5  underflow (sticky)
type FifoStatus uint8

// List of status bits.
const (
	StatusFull        FifoStatus = 0x01
	StatusEmpty       FifoStatus = 0x02
	StatusAlmostEmpty FifoStatus = 0x04
	StatusAlmostFull  FifoStatus = 0x08
	StatusOverflow    FifoStatus = 0x10
	StatusUnderflow   FifoStatus = 0x20
)

var statusNames = []struct {
	bit  FifoStatus
	name string
}{
	{StatusFull, "FULL"},
	{StatusEmpty, "EMPTY"},
	{StatusAlmostEmpty, "ALMOSTEMPTY"},
	{StatusAlmostFull, "ALMOSTFULL"},
	{StatusOverflow, "OVERFLOW"},
	{StatusUnderflow, "UNDERFLOW"},
}

// Has returns true if all the bits in b are set.
func (s FifoStatus) Has(b FifoStatus) bool {
	return s&b == b
}

// Bits returns the names of the set bits, lowest bit first. Bits outside the
// status mask are ignored.
func (s FifoStatus) Bits() []string {
	var bits []string
	for _, n := range statusNames {
		if s&n.bit == n.bit {
			bits = append(bits, n.name)
		}
	}
	return bits
}

func (s FifoStatus) String() string {
	b := s.Bits()
	if len(b) == 0 {
		return "-"
	}
	return strings.Join(b, " ")
}
