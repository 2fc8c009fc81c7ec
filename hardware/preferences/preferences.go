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

// Package preferences holds the preference values for the device backends,
// the game loop and the audio pump. Values are stored in the preferences
// file (see prefs.Disk) and can be overridden on the command line with the
// -prefs flag.
package preferences

import (
	"fmt"
	"strings"

	"github.com/geodash-fpga/geodash/curated"
	"github.com/geodash-fpga/geodash/hardware/registers"
	"github.com/geodash-fpga/geodash/paths"
	"github.com/geodash-fpga/geodash/prefs"
)

// Backend names accepted by the device.backend preference.
const (
	BackendIoctl = "ioctl"
	BackendMMIO  = "mmio"
	BackendSim   = "sim"
)

// Preferences defines and collates all the preference values used by the
// runtime.
type Preferences struct {
	dsk *prefs.Disk

	// how the register file is reached. one of BackendIoctl, BackendMMIO or
	// BackendSim
	Backend prefs.String

	// device file. the character device for the ioctl backend, /dev/mem for
	// the mmio backend
	DevicePath prefs.String

	// register layout. set with the layout name (see registers.LayoutByName())
	Layout *prefs.Generic
	layout registers.Layout

	// physical base addresses of the peripherals. only used by the mmio
	// backend
	VideoBase prefs.Int
	FIFOBase  prefs.Int
	CSRBase   prefs.Int

	// game loop rate in ticks per second
	TickRate prefs.Float

	// playback sample rate of the audio peripheral
	SampleRate prefs.Int

	// interval between pushed samples in microseconds. zero means one sample
	// period at SampleRate
	Interval prefs.Int

	// number of samples between FIFO telemetry reads
	PollEvery prefs.Int

	// log every FIFO telemetry read. overflows and underflows are counted
	// regardless
	LogTelemetry prefs.Bool

	// seed for the level generator. zero means a time based seed
	LevelSeed prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Layout = prefs.NewGeneric(
		func(v string) error {
			l, err := registers.LayoutByName(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			p.layout = l
			return nil
		},
		func() string {
			return p.layout.Name
		},
	)

	p.SetDefaults()

	p.Backend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BackendIoctl, BackendMMIO, BackendSim:
			return nil
		}
		return fmt.Errorf("unknown device backend (%v)", v)
	})
	p.TickRate.SetHookPre(func(v prefs.Value) error {
		if hz := v.(float64); hz <= 0 || hz > 1000 {
			return fmt.Errorf("tick rate must be between 0 and 1000 (%v)", v)
		}
		return nil
	})
	p.SampleRate.SetRange(1000, 192000)
	p.Interval.SetRange(0, 1000000)
	p.PollEvery.SetRange(1, 1000000)

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, k := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{key: "device.backend", p: &p.Backend},
		{key: "device.path", p: &p.DevicePath},
		{key: "device.layout", p: p.Layout},
		{key: "device.videobase", p: &p.VideoBase},
		{key: "device.fifobase", p: &p.FIFOBase},
		{key: "device.csrbase", p: &p.CSRBase},
		{key: "game.tickrate", p: &p.TickRate},
		{key: "audio.samplerate", p: &p.SampleRate},
		{key: "audio.interval", p: &p.Interval},
		{key: "audio.pollevery", p: &p.PollEvery},
		{key: "audio.logtelemetry", p: &p.LogTelemetry},
		{key: "level.seed", p: &p.LevelSeed},
	} {
		err = p.dsk.Add(k.key, k.p)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. The values on disk are
// not changed until Save() is called.
func (p *Preferences) SetDefaults() {
	p.Backend.Set(BackendIoctl)
	p.DevicePath.Set("/dev/geo_dash")
	p.Layout.Set("v2")

	// lightweight HPS-to-FPGA bridge on the DE1-SoC
	p.VideoBase.Set(0xff200000)
	p.FIFOBase.Set(0xff200100)
	p.CSRBase.Set(0xff200120)

	p.TickRate.Set(60.0)
	p.SampleRate.Set(48000)
	p.Interval.Set(0)
	p.PollEvery.Set(1000)
	p.LogTelemetry.Set(false)
	p.LevelSeed.Set(0)
}

// RegisterLayout returns the register layout named by the Layout preference.
func (p *Preferences) RegisterLayout() registers.Layout {
	l, _ := registers.LayoutByName(p.Layout.Get().(string))
	return l
}

// TickRateHz returns the game loop rate.
func (p *Preferences) TickRateHz() float32 {
	return float32(p.TickRate.Get().(float64))
}

// SampleHz returns the rate at which samples are pushed to the FIFO. This is
// the sample rate unless the audio.interval preference is set, in which case
// the interval (in microseconds) between samples decides the rate.
func (p *Preferences) SampleHz() float32 {
	if iv := p.Interval.Get().(int); iv > 0 {
		return 1000000.0 / float32(iv)
	}
	return float32(p.SampleRate.Get().(int))
}

// Reset all preferences to the default values. Unlike prefs.Disk.Reset() the
// values are not zeroed because zero is outside the range of some values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
