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

package limiter_test

import (
	"testing"
	"time"

	"github.com/geodash-fpga/geodash/limiter"
	"github.com/geodash-fpga/geodash/test"
)

// tolerance of measurement
const measurementTolerance = 0.05

const secondsPerTest = 2

func TestTicker(t *testing.T) {
	for _, hz := range []float32{60.0, 200.0} {
		lmtr := limiter.NewLimiter(hz)
		for range int(hz * secondsPerTest) {
			lmtr.CheckTick()
			lmtr.MeasureActual()
		}
		lmtr.Stop()

		rate := lmtr.Measured.Load().(float32)
		test.ExpectApproximate(t, float64(rate), float64(hz), measurementTolerance, hz)
	}
}

func TestInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(10.0)
	defer lmtr.Stop()
	lmtr.Active = false

	start := time.Now()
	for range 100 {
		lmtr.CheckTick()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
}

func TestNudge(t *testing.T) {
	lmtr := limiter.NewLimiter(1.0)
	defer lmtr.Stop()
	lmtr.Nudge.Store(50)

	start := time.Now()
	for range 50 {
		lmtr.CheckTick()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
	test.ExpectEquality(t, lmtr.Nudge.Load(), int32(0))
}

func TestInterval(t *testing.T) {
	lmtr := limiter.NewLimiter(60.0)
	defer lmtr.Stop()
	lmtr.SetInterval(time.Millisecond)
	test.ExpectEquality(t, lmtr.IdealHz.Load().(float32), float32(1000.0))

	// ignored
	lmtr.SetLimit(0)
	test.ExpectEquality(t, lmtr.IdealHz.Load().(float32), float32(1000.0))
}

func TestBatch(t *testing.T) {
	lmtr := limiter.NewLimiter(60.0)
	defer lmtr.Stop()

	// default batching for the rate
	test.ExpectEquality(t, lmtr.Batch(), 4)

	lmtr.SetBatch(1)
	test.ExpectEquality(t, lmtr.Batch(), 1)

	// one wait per tick. thirty ticks at 60Hz take half a second
	start := time.Now()
	for range 30 {
		lmtr.CheckTick()
	}
	test.ExpectEquality(t, lmtr.Waits.Load(), int64(30))
	test.ExpectSuccess(t, time.Since(start) >= 400*time.Millisecond)

	// the batch survives a change of rate
	lmtr.SetLimit(200.0)
	test.ExpectEquality(t, lmtr.Batch(), 1)

	lmtr.SetBatch(0)
	test.ExpectEquality(t, lmtr.Batch(), 11)
}

func TestBatchedWaits(t *testing.T) {
	lmtr := limiter.NewLimiter(1000.0)
	defer lmtr.Stop()
	lmtr.SetBatch(10)

	for range 100 {
		lmtr.CheckTick()
	}
	test.ExpectEquality(t, lmtr.Waits.Load(), int64(10))
}
