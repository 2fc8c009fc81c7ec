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

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/geodash-fpga/geodash/environment"
	"github.com/geodash-fpga/geodash/hardware/device"
	"github.com/geodash-fpga/geodash/hardware/preferences"
	"github.com/geodash-fpga/geodash/hardware/registers"
	"github.com/geodash-fpga/geodash/logger"
	"github.com/geodash-fpga/geodash/modalflag"
	"github.com/geodash-fpga/geodash/prefs"
	"github.com/geodash-fpga/geodash/wavwriter"
)

// depth of the FIFO used by the sim backend. the same as the peripheral
const simFIFODepth = 1024

// flags shared by every mode that opens the device
type commonFlags struct {
	prefs   *string
	backend *string
	layout  *string
	path    *string
	seed    *int64
	echo    *bool
	capture *string
}

func addCommonFlags(md *modalflag.Modes) *commonFlags {
	return &commonFlags{
		prefs:   md.AddString("prefs", "", "preferences to override for this run (key::value; ...)"),
		backend: md.AddString("device", "", "device backend: ioctl, mmio, sim"),
		layout:  md.AddString("layout", "", "register layout: v1, v2"),
		path:    md.AddString("path", "", "device file (/dev/geo_dash for ioctl, /dev/mem for mmio)"),
		seed:    md.AddInt64("seed", 0, "level seed (zero for a random level)"),
		echo:    md.AddBool("echo", false, "echo log to stdout"),
		capture: md.AddString("capture", "", "write audio drained from the sim FIFO to a wav file"),
	}
}

// commandLinePrefs converts the flags into a prefs command line string. the
// -prefs flag comes first so that the specific flags take precedence
func (c *commonFlags) commandLinePrefs() string {
	var s []string
	if *c.prefs != "" {
		s = append(s, *c.prefs)
	}
	if *c.backend != "" {
		s = append(s, fmt.Sprintf("device.backend::%s", *c.backend))
	}
	if *c.layout != "" {
		s = append(s, fmt.Sprintf("device.layout::%s", *c.layout))
	}
	if *c.path != "" {
		s = append(s, fmt.Sprintf("device.path::%s", *c.path))
	}
	if *c.seed != 0 {
		s = append(s, fmt.Sprintf("level.seed::%d", *c.seed))
	}
	return strings.Join(s, "; ")
}

// environment creates the environment from the preferences file with the
// command line values applied
func (c *commonFlags) environment(label environment.Label) (*environment.Environment, error) {
	if *c.echo {
		logger.SetEcho(stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	cl := c.commandLinePrefs()
	if cl != "" {
		prefs.PushCommandLineStack(cl)
	}

	p, err := preferences.NewPreferences()

	// values not claimed by the preferences are most likely misspelt keys
	if cl != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			err = errors.Join(err, fmt.Errorf("unknown preferences: %s", unused))
		}
	}
	if err != nil {
		return nil, err
	}

	return environment.NewEnvironment(label, p)
}

// hardware is the device channel and anything else opened for the backend
type hardware struct {
	ch      *device.Channel
	fifo    *registers.SimulatedFIFO
	mem     *registers.Memory
	capture *wavwriter.WavWriter
}

// openHardware opens the backend named in the preferences. A capture file is
// only used by the sim backend.
func openHardware(env *environment.Environment, capture string) (*hardware, error) {
	layout := env.Prefs.RegisterLayout()
	backend := env.Prefs.Backend.Get().(string)
	path := env.Prefs.DevicePath.Get().(string)

	if capture != "" && backend != preferences.BackendSim {
		return nil, fmt.Errorf("audio capture is only possible with the %s backend", preferences.BackendSim)
	}

	h := &hardware{}

	switch backend {
	case preferences.BackendIoctl:
		t, err := device.OpenIoctl(path)
		if err != nil {
			return nil, err
		}
		h.ch = device.NewChannel(t)

	case preferences.BackendMMIO:
		regs, err := registers.OpenMMIO(layout, path,
			uint64(env.Prefs.VideoBase.Get().(int)),
			uint64(env.Prefs.FIFOBase.Get().(int)),
			uint64(env.Prefs.CSRBase.Get().(int)))
		if err != nil {
			return nil, err
		}
		h.ch = device.NewChannel(device.NewDriver(regs))

	case preferences.BackendSim:
		var err error
		rate := env.Prefs.SampleRate.Get().(int)
		h.fifo = registers.NewSimulatedFIFO(simFIFODepth, rate)

		if capture != "" {
			h.capture, err = wavwriter.New(capture, rate)
			if err != nil {
				return nil, err
			}
			h.fifo.SetSink(h.capture)
		}

		var regs *registers.File
		regs, h.mem, err = registers.NewSimulated(layout, h.fifo)
		if err != nil {
			return nil, err
		}
		h.ch = device.NewChannel(device.NewDriver(regs))

	default:
		return nil, fmt.Errorf("unknown device backend (%s)", backend)
	}

	logger.Logf(env, "main", "%s backend with %s layout", backend, layout.Name)

	return h, nil
}

// Close the channel and write the capture file.
func (h *hardware) Close() error {
	var err error
	if h.ch != nil {
		err = h.ch.Close()
	}
	if h.capture != nil {
		err = errors.Join(err, h.capture.Close())
	}
	return err
}
