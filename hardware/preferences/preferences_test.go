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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geodash-fpga/geodash/hardware/preferences"
	"github.com/geodash-fpga/geodash/prefs"
	"github.com/geodash-fpga/geodash/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Backend.String(), preferences.BackendIoctl)
	test.ExpectEquality(t, p.Layout.String(), "v2")
	test.ExpectEquality(t, p.TickRateHz(), float32(60))
	test.ExpectEquality(t, p.RegisterLayout().Name, "v2")
	test.ExpectFailure(t, p.LogTelemetry.Get().(bool))
	test.ExpectEquality(t, p.PollEvery.Get().(int), 1000)

	// interval of zero means the exact sample rate
	test.ExpectEquality(t, p.SampleHz(), float32(48000))
	test.ExpectSuccess(t, p.Interval.Set(1000))
	test.ExpectEquality(t, p.SampleHz(), float32(1000))

	// missing file has been created
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)
}

func TestValidation(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Backend.Set("usb"))
	test.ExpectEquality(t, p.Backend.String(), preferences.BackendIoctl)
	test.ExpectSuccess(t, p.Backend.Set(preferences.BackendSim))

	test.ExpectFailure(t, p.TickRate.Set(0))
	test.ExpectFailure(t, p.TickRate.Set("5000"))
	test.ExpectSuccess(t, p.TickRate.Set("59.94"))
	test.ExpectApproximate(t, p.TickRateHz(), float32(59.94), 0.0001)

	test.ExpectFailure(t, p.Layout.Set("v9"))
	test.ExpectEquality(t, p.Layout.String(), "v2")
	test.ExpectSuccess(t, p.Layout.Set("V1"))
	test.ExpectEquality(t, p.RegisterLayout().Name, "v1")
	test.ExpectFailure(t, p.RegisterLayout().FIFO)
	test.ExpectSuccess(t, p.VideoBase.Set("0xff200000"))
	test.ExpectEquality(t, p.VideoBase.Get().(int), 0xff200000)
}

func TestSaveAndReload(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Backend.Set(preferences.BackendSim))
	test.ExpectSuccess(t, p.LevelSeed.Set(1234))
	test.ExpectSuccess(t, p.Layout.Set("v1"))
	test.ExpectSuccess(t, p.TickRate.Set(50))
	test.ExpectSuccess(t, p.LogTelemetry.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Backend.String(), preferences.BackendSim)
	test.ExpectEquality(t, q.LevelSeed.Get().(int), 1234)
	test.ExpectEquality(t, q.RegisterLayout().Name, "v1")
	test.ExpectEquality(t, q.TickRateHz(), float32(50))
	test.ExpectSuccess(t, q.LogTelemetry.Get().(bool))
	test.ExpectSuccess(t, strings.Contains(q.String(), "level.seed :: 1234"))

	test.ExpectSuccess(t, q.Reset())
	test.ExpectEquality(t, q.Backend.String(), preferences.BackendIoctl)
}

func TestCommandLineValues(t *testing.T) {
	prefs.PushCommandLineStack("device.backend::sim; game.tickrate::30; device.laoyut::v1")

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Backend.String(), preferences.BackendSim)
	test.ExpectEquality(t, p.TickRateHz(), float32(30))

	// the misspelt key is not claimed by any preference
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "device.laoyut::v1")
	test.ExpectEquality(t, p.Layout.String(), "v2")
}
