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

import (
	"fmt"
	"io"
	"time"

	"github.com/geodash-fpga/geodash/game"
	"github.com/geodash-fpga/geodash/limiter"
)

// LeadTime is the period before measurement begins. It allows the tick rate
// to settle down.
const LeadTime = 2 * time.Second

// brake is the number of ticks between checks of the timer. checking the
// timer channel is relatively expensive when running uncapped.
const brake = 16

// pacer wraps the real pacer (if any) and watches for the end of the lead
// time and the end of the measurement period. called from the game loop so
// the game state can be read without locking
type pacer struct {
	g     *game.Game
	inner game.Pacer
	timer chan bool
	quit  chan bool
	ended bool

	brake     int
	startTick int
}

func (p *pacer) CheckTick() {
	if p.inner != nil {
		p.inner.CheckTick()
	}

	p.brake++
	if p.brake < brake {
		return
	}
	p.brake = 0

	select {
	case v := <-p.timer:
		// true indicates the end of the measurement period. false indicates
		// the end of the lead time
		if v {
			if !p.ended {
				p.ended = true
				close(p.quit)
			}
		} else {
			p.startTick = p.g.Ticks
		}
	default:
	}
}

// Check the performance of the game loop. The game must have been loaded.
//
// The loop runs for the lead time and then for the duration. The rate is
// limited to hz unless uncapped is true. Profiling is performed as defined by
// the Profile argument.
func Check(output io.Writer, profile Profile, g *game.Game, hz float32, uncapped bool, lead time.Duration, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	p := &pacer{
		g:     g,
		timer: make(chan bool),
		quit:  make(chan bool),
	}

	if !uncapped {
		lmtr := limiter.NewLimiter(hz)
		lmtr.SetBatch(1)
		defer lmtr.Stop()
		p.inner = lmtr
	}

	g.SetPacer(p)
	defer g.SetPacer(nil)

	var endTick int

	runner := func() error {
		done := make(chan bool)
		defer close(done)

		go func() {
			select {
			case <-time.After(lead):
			case <-done:
				return
			}
			select {
			case p.timer <- false:
			case <-done:
				return
			}
			select {
			case <-time.After(duration):
			case <-done:
				return
			}
			select {
			case p.timer <- true:
			case <-done:
			}
		}()

		err := g.Run(p.quit)
		endTick = g.Ticks
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numTicks := endTick - p.startTick
	tps, accuracy := CalcTPS(numTicks, duration.Seconds(), hz)
	if uncapped {
		fmt.Fprintf(output, "%.2f tps (%d ticks in %.2f seconds) uncapped\n", tps, numTicks, duration.Seconds())
	} else {
		fmt.Fprintf(output, "%.2f tps (%d ticks in %.2f seconds) %.1f%%\n", tps, numTicks, duration.Seconds(), accuracy)
	}

	return nil
}
