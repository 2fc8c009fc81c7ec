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

package device_test

import (
	"testing"
	"unsafe"

	"github.com/geodash-fpga/geodash/hardware/device"
	"github.com/geodash-fpga/geodash/hardware/registers"
	"github.com/geodash-fpga/geodash/test"
)

func TestArgLayout(t *testing.T) {
	a := device.Arg{
		XShift:       0x0102,
		PlayerY:      0x0304,
		BackgroundR:  0x05,
		BackgroundG:  0x06,
		BackgroundB:  0x07,
		MapBlock:     0x08,
		Flags:        0x09,
		OutputFlags:  0x0a,
		Audio:        0x0b0c,
		ScrollOffset: 0x0d0e,
	}

	b, err := a.MarshalBinary()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(b), device.ArgSize)

	expected := []byte{
		0x02, 0x01, 0x04, 0x03,
		0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0c, 0x0b, 0x0e, 0x0d,
	}
	for i := range expected {
		test.ExpectEquality(t, b[i], expected[i], i)
	}

	var c device.Arg
	test.ExpectSuccess(t, c.UnmarshalBinary(b))
	test.ExpectEquality(t, c, a)

	test.ExpectFailure(t, c.UnmarshalBinary(b[:4]))
}

func TestArgValue(t *testing.T) {
	a := device.Arg{BackgroundG: 0x80, ScrollOffset: 1279}
	test.ExpectEquality(t, a.Value(registers.BackgroundG), uint16(0x80))
	test.ExpectEquality(t, a.Value(registers.ScrollOffset), uint16(1279))
	test.ExpectEquality(t, a.Value(registers.PlayerY), uint16(0))
}

func TestRequestNumbers(t *testing.T) {
	size := uintptr(unsafe.Sizeof(uintptr(0)))

	// _IOW('q', 0, geo_dash_arg_t *)
	test.ExpectEquality(t, device.SetXShift.Request(), 1<<30|size<<16|'q'<<8|0)

	// _IOW('q', 9, geo_dash_arg_t *)
	test.ExpectEquality(t, device.PushAudioSample.Request(), 1<<30|size<<16|'q'<<8|9)

	// _IOR('q', 10, uint32_t *) and _IOR('q', 11, uint32_t *)
	test.ExpectEquality(t, device.ReadFifoFillLevel.Request(), 2<<30|size<<16|'q'<<8|10)
	test.ExpectEquality(t, device.ReadFifoStatus.Request(), 2<<30|size<<16|'q'<<8|11)

	if size == 4 {
		test.ExpectEquality(t, device.SetXShift.Request(), uintptr(0x40047100))
		test.ExpectEquality(t, device.ReadFifoStatus.Request(), uintptr(0x8004710b))
	}
}

func TestCommandFields(t *testing.T) {
	seen := make(map[registers.Field]bool)
	for cmd := device.SetXShift; cmd.Valid(); cmd++ {
		f, ok := cmd.Field()
		if cmd == device.PushAudioSample || cmd.IsRead() {
			test.ExpectFailure(t, ok, cmd)
			continue
		}
		test.ExpectSuccess(t, ok, cmd)
		test.ExpectFailure(t, seen[f], cmd)
		seen[f] = true
	}
	test.ExpectEquality(t, len(seen), len(registers.LayoutV2.Registers))
	test.ExpectEquality(t, device.Command(99).String(), "Command(99)")
}
