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

package audio

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/geodash-fpga/geodash/curated"
	"github.com/geodash-fpga/geodash/environment"
	"github.com/geodash-fpga/geodash/hardware/registers"
	"github.com/geodash-fpga/geodash/limiter"
	"github.com/geodash-fpga/geodash/logger"
)

const logTag = "audio"

// samples are pushed in batches that last about this long. at 48kHz a batch
// is 48 samples, a small fraction of the FIFO
const batchPeriod = time.Millisecond

// Prefill is the number of samples pushed without waiting when the pump
// starts, so that the FIFO never runs dry between batches.
const Prefill = 384

// Channel is the part of the device.Channel used by the Pump.
type Channel interface {
	PushAudioSample(v uint16) error
	ReadFifoStatus() (registers.FifoStatus, error)
	ReadFifoFillLevel() (uint32, error)
}

// Pacer is called after every sample and blocks until the next sample, or
// batch of samples, is due.
type Pacer interface {
	CheckTick()
}

// Stats are the counts collected by the Pump.
type Stats struct {
	Pushed          int
	Polls           int
	Overflows       int
	Underflows      int
	TelemetryErrors int
	LastStatus      registers.FifoStatus
	LastFillLevel   uint32
}

// Pump pushes samples from a Source into the audio FIFO.
type Pump struct {
	env *environment.Environment
	ch  Channel
	src Source

	pacer Pacer

	// the limiter created by NewPump(). nil if SetPacer() has been called
	lmtr *limiter.Limiter

	// number of samples between telemetry reads
	pollEvery int

	crit  sync.Mutex
	stats Stats
}

// NewPump is the preferred method of initialisation for the Pump type. The
// pacing interval and the telemetry period are taken from the preferences.
func NewPump(env *environment.Environment, ch Channel, src Source) *Pump {
	p := &Pump{
		env:       env,
		ch:        ch,
		src:       src,
		pollEvery: env.Prefs.PollEvery.Get().(int),
	}

	// the FIFO is played at the peripheral's sample rate, whatever the rate of
	// the source
	rate := env.Prefs.SampleRate.Get().(int)
	if src.SampleRate() != rate {
		logger.Logf(env, logTag, "source sample rate (%dHz) differs from playback rate (%dHz)", src.SampleRate(), rate)
	}

	hz := env.Prefs.SampleHz()
	p.lmtr = limiter.NewLimiter(hz)
	p.lmtr.SetBatch(max(1, int(hz*float32(batchPeriod.Seconds()))))
	p.lmtr.Nudge.Store(Prefill)
	p.pacer = p.lmtr

	return p
}

// SetPacer replaces the default pacer.
func (p *Pump) SetPacer(pacer Pacer) {
	if p.lmtr != nil {
		p.lmtr.Stop()
		p.lmtr = nil
	}
	p.pacer = pacer
}

// SetPrefill changes the number of samples pushed before pacing starts. Has no
// effect if SetPacer() has been called.
func (p *Pump) SetPrefill(n int) {
	if p.lmtr != nil {
		p.lmtr.Nudge.Store(int32(max(n, 0)))
	}
}

// SetPollEvery changes the number of samples between telemetry reads.
func (p *Pump) SetPollEvery(n int) {
	if n > 0 {
		p.pollEvery = n
	}
}

// Stats returns a copy of the pump's counts. Safe to call while Run() is
// running.
func (p *Pump) Stats() Stats {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.stats
}

// Run pushes samples until the source is exhausted or a push fails. Returns
// the number of samples pushed. A push failure is returned as an error; there
// is no way to skip a sample and stay in sync.
func (p *Pump) Run() (int, error) {
	defer func() {
		if p.lmtr != nil {
			p.lmtr.Stop()
			p.lmtr = nil
		}
	}()

	pushed := 0

	for {
		v, err := p.src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Logf(p.env, logTag, "end of source after %d samples", pushed)
				return pushed, nil
			}
			return pushed, curated.Errorf(SourceError, err)
		}

		err = p.ch.PushAudioSample(uint16(v))
		if err != nil {
			logger.Logf(p.env, logTag, "push failed after %d samples: %v", pushed, err)
			return pushed, err
		}
		pushed++

		p.crit.Lock()
		p.stats.Pushed = pushed
		p.crit.Unlock()

		if p.pollEvery > 0 && pushed%p.pollEvery == 0 {
			p.poll()
		}

		p.pacer.CheckTick()
	}
}

// read the FIFO telemetry. errors are logged and otherwise ignored. a status
// with the overflow or underflow bit is always logged, other statuses only if
// the audio.logtelemetry preference is set
func (p *Pump) poll() {
	status, serr := p.ch.ReadFifoStatus()
	fill, ferr := p.ch.ReadFifoFillLevel()

	p.crit.Lock()
	defer p.crit.Unlock()

	p.stats.Polls++

	if serr != nil {
		p.stats.TelemetryErrors++
		logger.Logf(p.env, logTag, "status read failed: %v", serr)
	} else {
		p.stats.LastStatus = status
		if status.Has(registers.StatusOverflow) {
			p.stats.Overflows++
		}
		if status.Has(registers.StatusUnderflow) {
			p.stats.Underflows++
		}
	}

	if ferr != nil {
		p.stats.TelemetryErrors++
		logger.Logf(p.env, logTag, "fill level read failed: %v", ferr)
	} else {
		p.stats.LastFillLevel = fill
	}

	if serr != nil {
		return
	}

	xrun := status&(registers.StatusOverflow|registers.StatusUnderflow) != 0
	if !xrun && !p.env.Prefs.LogTelemetry.Get().(bool) {
		return
	}

	if ferr != nil {
		logger.Logf(p.env, logTag, "fifo: [%s]", status)
		return
	}
	logger.Logf(p.env, logTag, "fifo: %d samples [%s]", fill, status)
}
