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
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/geodash-fpga/geodash/hardware/device"
	"github.com/geodash-fpga/geodash/hardware/registers"
	"github.com/geodash-fpga/geodash/test"
)

func newSimulated(t *testing.T) (*device.Channel, *registers.Memory, *registers.SimulatedFIFO) {
	t.Helper()
	fifo := registers.NewSimulatedFIFO(64, 0)
	regs, mem, err := registers.NewSimulated(registers.LayoutV2, fifo)
	test.DemandSuccess(t, err)
	return device.NewChannel(device.NewDriver(regs)), mem, fifo
}

// every video command touches exactly one register
func TestOneRegisterPerCommand(t *testing.T) {
	ch, mem, _ := newSimulated(t)

	cmds := []struct {
		cmd   device.Command
		issue func() error
	}{
		{device.SetXShift, func() error { return ch.SetXShift(31) }},
		{device.SetPlayerY, func() error { return ch.SetPlayerY(384) }},
		{device.SetBackgroundR, func() error { return ch.SetBackgroundR(0x20) }},
		{device.SetBackgroundG, func() error { return ch.SetBackgroundG(0x40) }},
		{device.SetBackgroundB, func() error { return ch.SetBackgroundB(0xc0) }},
		{device.SetMapBlock, func() error { return ch.SetMapBlock(39) }},
		{device.SetFlags, func() error { return ch.SetFlags(0x05) }},
		{device.SetOutputFlags, func() error { return ch.SetOutputFlags(0x04) }},
		{device.SetScrollOffset, func() error { return ch.SetScrollOffset(1279) }},
	}

	for _, c := range cmds {
		mem.ClearAccesses()
		test.DemandSuccess(t, c.issue(), c.cmd)

		acc := mem.Accesses()
		test.DemandEquality(t, len(acc), 1, c.cmd)

		f, _ := c.cmd.Field()
		r, _ := registers.LayoutV2.Register(f)
		test.ExpectEquality(t, acc[0].Offset, r.Offset, c.cmd)
		test.ExpectEquality(t, ch.Issued(c.cmd), 1, c.cmd)
	}

	sh := ch.Shadow()
	test.ExpectEquality(t, sh.XShift, uint16(31))
	test.ExpectEquality(t, sh.PlayerY, uint16(384))
	test.ExpectEquality(t, sh.ScrollOffset, uint16(1279))
	test.ExpectEquality(t, sh.OutputFlags, uint8(0x04))
}

// issuing N commands touches each target register N times in issuance order
func TestIssuanceOrder(t *testing.T) {
	ch, mem, _ := newSimulated(t)

	const n = 50
	for i := range n {
		test.ExpectSuccess(t, ch.SetPlayerY(uint16(i)))
		test.ExpectSuccess(t, ch.SetXShift(uint16(i%32)))
		test.ExpectSuccess(t, ch.SetScrollOffset(uint16(i*4)))
	}

	py, _ := registers.LayoutV2.Register(registers.PlayerY)
	xs, _ := registers.LayoutV2.Register(registers.XShift)
	so, _ := registers.LayoutV2.Register(registers.ScrollOffset)

	acc := mem.Accesses()
	test.DemandEquality(t, len(acc), 3*n)
	for i := range n {
		test.ExpectEquality(t, acc[i*3].Offset, py.Offset)
		test.ExpectEquality(t, acc[i*3].Value, uint32(i))
		test.ExpectEquality(t, acc[i*3+1].Offset, xs.Offset)
		test.ExpectEquality(t, acc[i*3+1].Value, uint32(i%32))
		test.ExpectEquality(t, acc[i*3+2].Offset, so.Offset)
		test.ExpectEquality(t, acc[i*3+2].Value, uint32(i*4))
	}
}

func TestAudioCommands(t *testing.T) {
	ch, mem, fifo := newSimulated(t)

	for i := range 10 {
		test.ExpectSuccess(t, ch.PushAudioSample(uint16(i)))
	}

	// no video register is touched by audio commands
	test.ExpectEquality(t, len(mem.Accesses()), 0)

	n, err := ch.ReadFifoFillLevel()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(10))

	fifo.Drain(20)
	s, err := ch.ReadFifoStatus()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.String(), "EMPTY ALMOSTEMPTY UNDERFLOW")

	sh := ch.Shadow()
	test.ExpectEquality(t, sh.Audio, uint16(9))
	test.ExpectEquality(t, sh.FillLevel, uint32(10))
	test.ExpectEquality(t, sh.Status, s)
}

func TestInvalidCommand(t *testing.T) {
	ch, _, _ := newSimulated(t)

	_, err := ch.Issue(device.Command(99))
	test.ExpectSuccess(t, errors.Is(err, device.ErrInvalidCommand))

	var cerr *device.CommandError
	test.DemandSuccess(t, errors.As(err, &cerr))
	test.ExpectEquality(t, cerr.Command, device.Command(99))
}

func TestMissingFIFO(t *testing.T) {
	regs, _, err := registers.NewSimulated(registers.LayoutV1, nil)
	test.DemandSuccess(t, err)
	ch := device.NewChannel(device.NewDriver(regs))

	err = ch.PushAudioSample(1)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ch.Shadow().Audio, uint16(0))
	test.ExpectEquality(t, ch.Issued(device.PushAudioSample), 0)
}

// failingTransport fails every command after the first n
type failingTransport struct {
	n int
}

var errBus = errors.New("bus error")

func (f *failingTransport) Control(cmd device.Command, arg *device.Arg) (uint32, error) {
	if f.n <= 0 {
		return 0, errBus
	}
	f.n--
	return 0, nil
}

func TestShadowOnFailure(t *testing.T) {
	ch := device.NewChannel(&failingTransport{n: 1})

	test.ExpectSuccess(t, ch.SetXShift(7))
	err := ch.SetXShift(8)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, errBus))

	var cerr *device.CommandError
	test.DemandSuccess(t, errors.As(err, &cerr))
	test.ExpectEquality(t, cerr.Command, device.SetXShift)
	test.ExpectEquality(t, err.Error(), "device: SetXShift: bus error")

	test.ExpectEquality(t, ch.Shadow().XShift, uint16(7))
	test.ExpectEquality(t, ch.Issued(device.SetXShift), 1)
}

// overlapTransport detects two commands in flight at the same time
type overlapTransport struct {
	inflight atomic.Int32
	overlaps atomic.Int32
	count    int
}

func (o *overlapTransport) Control(cmd device.Command, arg *device.Arg) (uint32, error) {
	if o.inflight.Add(1) > 1 {
		o.overlaps.Add(1)
	}
	o.count++
	o.inflight.Add(-1)
	return 0, nil
}

func TestSerialisation(t *testing.T) {
	o := &overlapTransport{}
	ch := device.NewChannel(o)

	const n = 2000

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range n {
			_ = ch.SetPlayerY(uint16(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := range n {
			_ = ch.PushAudioSample(uint16(i))
		}
	}()
	wg.Wait()

	test.ExpectEquality(t, o.overlaps.Load(), int32(0))
	test.ExpectEquality(t, o.count, 2*n)
	test.ExpectEquality(t, ch.Issued(device.SetPlayerY), n)
	test.ExpectEquality(t, ch.Issued(device.PushAudioSample), n)
}
