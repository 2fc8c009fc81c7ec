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

// Package random provides the source of random numbers for the level
// generator. A Random instance can be reseeded so that a level can be
// recreated exactly from its seed.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Random is a seedable random number generator. Safe to use from more than
// one goroutine.
type Random struct {
	crit sync.Mutex
	seed int64
	rnd  *rand.Rand

	// use zero seed rather than a time based seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means a seed based on the current time.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed the generator. A seed of zero means a seed based on the current time
// unless ZeroSeed is true.
func (rnd *Random) Reseed(seed int64) {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()

	if seed == 0 && !rnd.ZeroSeed {
		seed = time.Now().UnixNano()
	}
	rnd.seed = seed
	rnd.rnd = rand.New(rand.NewSource(seed))
}

// Seed returns the seed used by the most recent call to Reseed().
func (rnd *Random) Seed() int64 {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return rnd.seed
}

// Intn returns a random number in the range [0,n). n must be greater than
// zero.
func (rnd *Random) Intn(n int) int {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return rnd.rnd.Intn(n)
}
