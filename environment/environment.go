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

// Package environment provides the context for a run of the game: the random
// number source used by the level generator and the preferences.
package environment

import (
	"github.com/geodash-fpga/geodash/hardware/preferences"
	"github.com/geodash-fpga/geodash/random"
)

// Label is used to name the environment.
type Label string

// Environment is passed to the components that need a random source or access
// to the preferences. There is no global instance.
type Environment struct {
	Label Label

	// any randomisation required by the game should be retrieved through this
	// structure
	Random *random.Random

	// the runtime preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created from the default preferences file. The random source is seeded with
// the level.seed preference.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env := &Environment{
		Label:  label,
		Prefs:  prefs,
		Random: random.NewRandom(int64(prefs.LevelSeed.Get().(int))),
	}

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// tests where the generated level must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
	env.Random.Reseed(0)
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return true
}
