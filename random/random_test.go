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

package random_test

import (
	"testing"

	"github.com/geodash-fpga/geodash/random"
	"github.com/geodash-fpga/geodash/test"
)

func TestReseed(t *testing.T) {
	a := random.NewRandom(1234)
	b := random.NewRandom(1234)

	for range 100 {
		test.ExpectEquality(t, a.Intn(100), b.Intn(100))
	}
	test.ExpectEquality(t, a.Seed(), int64(1234))

	// reseeding restarts the sequence
	a.Reseed(99)
	first := a.Intn(1000)
	a.Reseed(99)
	test.ExpectEquality(t, a.Intn(1000), first)
}

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom(1)
	a.ZeroSeed = true
	a.Reseed(0)
	test.ExpectEquality(t, a.Seed(), int64(0))

	b := random.NewRandom(1)
	b.ZeroSeed = true
	b.Reseed(0)
	test.ExpectEquality(t, a.Intn(1000), b.Intn(1000))
}
