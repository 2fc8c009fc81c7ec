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
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/geodash-fpga/geodash/environment"
	"github.com/geodash-fpga/geodash/hardware/preferences"
	"github.com/geodash-fpga/geodash/modalflag"
	"github.com/geodash-fpga/geodash/test"
)

func TestCommandLinePrefs(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-prefs", "game.tickrate::50", "-device", "sim", "-seed", "99"})
	md.NewMode()
	c := addCommonFlags(md)

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)

	test.ExpectEquality(t, c.commandLinePrefs(), "game.tickrate::50; device.backend::sim; level.seed::99")
}

func newSimEnv(t *testing.T) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Backend.Set(preferences.BackendSim))
	env, err := environment.NewEnvironment("main", p)
	test.DemandSuccess(t, err)
	return env
}

func TestOpenSimulated(t *testing.T) {
	env := newSimEnv(t)
	capture := filepath.Join(t.TempDir(), "capture.wav")

	hw, err := openHardware(env, capture)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, hw.fifo != nil)
	test.ExpectSuccess(t, hw.mem != nil)

	for i := range 100 {
		test.DemandSuccess(t, hw.ch.PushAudioSample(uint16(i)))
	}
	fill, err := hw.ch.ReadFifoFillLevel()
	test.DemandSuccess(t, err)

	// the simulated fifo drains in real time so some samples may have gone
	test.ExpectSuccess(t, fill > 0 && fill <= 100)

	hw.fifo.Drain(100)
	test.DemandSuccess(t, hw.Close())

	f, err := os.Open(capture)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectSuccess(t, wav.NewDecoder(f).IsValidFile())
}

func TestOpenErrors(t *testing.T) {
	env := newSimEnv(t)
	test.DemandSuccess(t, env.Prefs.Backend.Set(preferences.BackendMMIO))
	test.DemandSuccess(t, env.Prefs.DevicePath.Set(filepath.Join(t.TempDir(), "missing")))
	_, err := openHardware(env, "")
	test.ExpectFailure(t, err)

	env = newSimEnv(t)
	test.DemandSuccess(t, env.Prefs.Backend.Set(preferences.BackendIoctl))
	_, err = openHardware(env, "capture.wav")
	test.ExpectFailure(t, err)
}
