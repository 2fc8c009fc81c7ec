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

// Package limiter paces a loop to a fixed rate. The game loop uses it to
// run at the tick rate and the audio pump uses it to push samples at the
// playback sample rate.
//
// By default high rates are batched: rather than sleeping on every tick,
// CheckTick() waits once every 1+hz/20 ticks for the combined duration.
// SetBatch() fixes the number of ticks between waits. A loop that writes
// straight to hardware registers must not run ticks back to back so the game
// loop waits on every tick and the audio pump in short batches that are well
// inside the depth of the FIFO.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter paces calls to CheckTick() to the rate set by SetLimit().
type Limiter struct {
	// whether to wait in CheckTick(). if false then CheckTick() returns
	// immediately but the actual rate is still measured
	Active bool

	// the rate sent to SetLimit()
	IdealHz atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker is set
	// when SetLimit() is called
	pulse *time.Ticker

	// the number of ticks before waiting on the pulse
	pulseCt      int
	pulseCtLimit int

	// fixed value for pulseCtLimit. zero means pulseCtLimit depends on the
	// rate
	batch int

	// the number of times CheckTick() has waited on the pulse
	Waits atomic.Int64

	// pulse that performs the rate measurement
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of ticks per second
	Measured atomic.Value // float32

	// don't wait for the specified number of ticks
	Nudge atomic.Int32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(hz float32) *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Millisecond * 1000),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.IdealHz.Store(float32(0.0))
	lmtr.SetLimit(hz)
	return lmtr
}

// SetLimit sets the number of ticks per second. A value of zero or less is
// ignored.
func (lmtr *Limiter) SetLimit(hz float32) {
	if hz <= 0.0 {
		return
	}

	lmtr.IdealHz.Store(hz)

	lmtr.pulseCt = 0
	if lmtr.batch > 0 {
		lmtr.pulseCtLimit = lmtr.batch
	} else {
		lmtr.pulseCtLimit = 1 + int(hz/20)
	}
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / hz * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// SetBatch sets the number of ticks between waits. A value of one waits on
// every tick. A value of zero or less restores the default batching.
func (lmtr *Limiter) SetBatch(n int) {
	lmtr.batch = max(n, 0)
	if hz := lmtr.IdealHz.Load().(float32); hz > 0 {
		lmtr.SetLimit(hz)
	}
}

// Batch returns the number of ticks between waits.
func (lmtr *Limiter) Batch() int {
	return lmtr.pulseCtLimit
}

// SetInterval is an alternative to SetLimit() for when the rate is expressed
// as the interval between ticks.
func (lmtr *Limiter) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	lmtr.SetLimit(float32(time.Second) / float32(interval))
}

// CheckTick should be called once per tick of the loop being limited.
func (lmtr *Limiter) CheckTick() {
	lmtr.measureCt++

	nudge := lmtr.Nudge.Load()
	if nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
			lmtr.Waits.Add(1)
		}
	}
}

// MeasureActual updates the Measured field once a second. It is cheap to call
// on every tick.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
