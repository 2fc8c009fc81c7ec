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

import (
	"sync"
	"time"
)

// FIFOSink receives samples as the simulated peripheral consumes them.
type FIFOSink interface {
	ConsumeSample(v int16)
}

// SimulatedFIFO behaves like the audio FIFO peripheral. Samples are consumed
// at the playback sample rate according to the host clock. Consumption is
// calculated whenever the FIFO is accessed so there is no goroutine.
//
// The overflow and underflow bits are sticky and are cleared when the status
// register is read.
type SimulatedFIFO struct {
	crit sync.Mutex

	capacity    int
	almostEmpty int
	almostFull  int

	queue  []uint32
	sticky FifoStatus

	// consumption rate in samples per second. zero means samples are only
	// consumed by calls to Drain()
	rate int
	now  func() time.Time
	last time.Time

	// underflow is not possible until the first sample has been pushed
	started bool

	sink FIFOSink
}

// NewSimulatedFIFO is the preferred method of initialisation for the
// SimulatedFIFO type. The almost-empty and almost-full thresholds are set to a
// quarter and three quarters of the capacity.
func NewSimulatedFIFO(capacity int, sampleRate int) *SimulatedFIFO {
	if capacity < 1 {
		capacity = 1
	}
	f := &SimulatedFIFO{
		capacity:    capacity,
		almostEmpty: capacity / 4,
		almostFull:  capacity * 3 / 4,
		queue:       make([]uint32, 0, capacity),
		rate:        sampleRate,
		now:         time.Now,
	}
	f.last = f.now()
	return f
}

// SetThresholds changes the almost-empty and almost-full levels.
func (f *SimulatedFIFO) SetThresholds(almostEmpty int, almostFull int) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.almostEmpty = almostEmpty
	f.almostFull = almostFull
}

// SetSink sets the destination of consumed samples. Can be nil.
func (f *SimulatedFIFO) SetSink(sink FIFOSink) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.sink = sink
}

// SetClock replaces the clock used to calculate consumption.
func (f *SimulatedFIFO) SetClock(now func() time.Time) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.now = now
	f.last = now()
}

// Drain consumes up to n samples immediately.
func (f *SimulatedFIFO) Drain(n int) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.consume(n)
}

// Capacity of the FIFO in samples.
func (f *SimulatedFIFO) Capacity() int {
	return f.capacity
}

// consume n samples. must be called with the critical section locked
func (f *SimulatedFIFO) consume(n int) {
	if n <= 0 {
		return
	}
	if n > len(f.queue) {
		if f.started {
			f.sticky |= StatusUnderflow
		}
		n = len(f.queue)
	}
	if f.sink != nil {
		for _, v := range f.queue[:n] {
			f.sink.ConsumeSample(int16(v))
		}
	}
	f.queue = append(f.queue[:0], f.queue[n:]...)
}

// consume the samples that have been played since the last access. must be
// called with the critical section locked
func (f *SimulatedFIFO) update() {
	if f.rate <= 0 {
		return
	}
	now := f.now()
	due := int64(now.Sub(f.last)) * int64(f.rate) / int64(time.Second)
	if due <= 0 {
		return
	}
	f.last = f.last.Add(time.Duration(due * int64(time.Second) / int64(f.rate)))

	// nothing is played before the first push
	if !f.started {
		return
	}
	f.consume(int(min(due, int64(f.capacity)+1)))
}

func (f *SimulatedFIFO) push(v uint32) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.update()
	if !f.started {
		f.started = true
		f.last = f.now()
	}
	if len(f.queue) >= f.capacity {
		f.sticky |= StatusOverflow
		return
	}
	f.queue = append(f.queue, v)
}

func (f *SimulatedFIFO) status() FifoStatus {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.update()

	s := f.sticky
	f.sticky = 0

	n := len(f.queue)
	if n >= f.capacity {
		s |= StatusFull
	}
	if n == 0 {
		s |= StatusEmpty
	}
	if n <= f.almostEmpty {
		s |= StatusAlmostEmpty
	}
	if n >= f.almostFull {
		s |= StatusAlmostFull
	}
	return s
}

func (f *SimulatedFIFO) fill() uint32 {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.update()
	return uint32(len(f.queue))
}

// DataRegion returns the write port of the FIFO as a Region.
func (f *SimulatedFIFO) DataRegion() Region {
	return fifoData{f: f}
}

// CSRRegion returns the control and status registers of the FIFO as a Region.
func (f *SimulatedFIFO) CSRRegion() Region {
	return fifoCSR{f: f}
}

type fifoData struct {
	f *SimulatedFIFO
}

func (d fifoData) Size() uint32 {
	return fifoDataSize
}

func (d fifoData) Store16(offset uint32, v uint16) {
	if offset == FIFOData {
		d.f.push(uint32(v))
	}
}

func (d fifoData) Store32(offset uint32, v uint32) {
	if offset == FIFOData {
		d.f.push(v)
	}
}

func (d fifoData) Load32(_ uint32) uint32 {
	return 0
}

// offsets of the threshold registers in the CSR window
const (
	csrAlmostFull  = 0x10
	csrAlmostEmpty = 0x14
)

type fifoCSR struct {
	f *SimulatedFIFO
}

func (c fifoCSR) Size() uint32 {
	return fifoCSRSize
}

func (c fifoCSR) Store16(offset uint32, v uint16) {
	c.Store32(offset, uint32(v))
}

func (c fifoCSR) Store32(offset uint32, v uint32) {
	c.f.crit.Lock()
	defer c.f.crit.Unlock()
	switch offset {
	case csrAlmostFull:
		c.f.almostFull = int(v)
	case csrAlmostEmpty:
		c.f.almostEmpty = int(v)
	}
}

func (c fifoCSR) Load32(offset uint32) uint32 {
	switch offset {
	case CSRFillLevel:
		return c.f.fill()
	case CSRStatus:
		return uint32(c.f.status())
	case csrAlmostFull:
		c.f.crit.Lock()
		defer c.f.crit.Unlock()
		return uint32(c.f.almostFull)
	case csrAlmostEmpty:
		c.f.crit.Lock()
		defer c.f.crit.Unlock()
		return uint32(c.f.almostEmpty)
	}
	return 0
}
