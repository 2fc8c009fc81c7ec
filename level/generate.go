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

package level

import (
	"github.com/geodash-fpga/geodash/random"
)

// Difficulty is the chance (out of the sum of all chances) of each obstacle
// and the range of the gap between obstacles.
type Difficulty struct {
	Spike    int
	Block    int
	Platform int
	JumpPad  int
	Portal   int
	MinGap   int
	MaxGap   int
}

func (d Difficulty) total() int {
	return d.Spike + d.Block + d.Platform + d.JumpPad + d.Portal
}

// StartingBlocks is the number of empty blocks at the start of every level.
const StartingBlocks = 15

// Difficulties is one entry per section of the level, easiest first.
var Difficulties = []Difficulty{
	{Spike: 10, Block: 5, Platform: 15, JumpPad: 0, Portal: 0, MinGap: 8, MaxGap: 15},
	{Spike: 20, Block: 10, Platform: 15, JumpPad: 5, Portal: 0, MinGap: 6, MaxGap: 12},
	{Spike: 25, Block: 15, Platform: 10, JumpPad: 10, Portal: 5, MinGap: 5, MaxGap: 10},
	{Spike: 30, Block: 20, Platform: 10, JumpPad: 15, Portal: 10, MinGap: 4, MaxGap: 8},
	{Spike: 35, Block: 25, Platform: 5, JumpPad: 20, Portal: 15, MinGap: 3, MaxGap: 6},
}

// percentage chance of a pattern rather than a single obstacle
const patternChance = 20

type generator struct {
	rnd    *random.Random
	blocks []Obstacle
	length int
	diff   Difficulty
}

func (g *generator) full() bool {
	return len(g.blocks) >= g.length
}

func (g *generator) add(o Obstacle) {
	if !g.full() {
		g.blocks = append(g.blocks, o)
	}
}

func (g *generator) gap(n int) {
	for range n {
		g.add(None)
	}
}

func (g *generator) obstacle() {
	total := g.diff.total()
	if total == 0 {
		g.add(None)
		return
	}

	v := g.rnd.Intn(total)
	switch {
	case v < g.diff.Spike:
		g.add(Spike)
	case v < g.diff.Spike+g.diff.Block:
		g.add(Block)
	case v < g.diff.Spike+g.diff.Block+g.diff.Platform:
		g.add(Platform)
	case v < g.diff.Spike+g.diff.Block+g.diff.Platform+g.diff.JumpPad:
		g.add(JumpPad)
	default:
		g.add(GravityPortal)
	}
}

func (g *generator) pattern(p int) {
	switch p {
	case 0:
		g.add(Spike)
		g.add(Spike)
	case 1:
		g.add(Spike)
		g.add(Spike)
		g.add(Spike)
	case 2:
		g.add(Block)
	case 3:
		g.add(Spike)
		g.gap(1)
		g.add(Block)
		g.gap(1)
		g.add(Spike)
	default:
		g.obstacle()
	}
}

// Generate a level of the given length, clamped to MaxLength. The level is
// split into sections of increasing difficulty. The same random seed always
// produces the same level.
func Generate(rnd *random.Random, length int) *Level {
	length = max(0, min(length, MaxLength))

	g := &generator{
		rnd:    rnd,
		blocks: make([]Obstacle, 0, length),
		length: length,
		diff:   Difficulties[0],
	}

	sectionLength := length / len(Difficulties)
	section := 0

	g.gap(StartingBlocks)

	for !g.full() {
		if len(g.blocks) >= (section+1)*sectionLength && section < len(Difficulties)-1 {
			section++
			g.diff = Difficulties[section]

			// breather when the difficulty increases
			g.gap(g.diff.MaxGap)
		}

		if g.rnd.Intn(100) < patternChance {
			g.pattern(g.rnd.Intn(4))
		} else {
			g.obstacle()
		}

		g.gap(g.diff.MinGap + g.rnd.Intn(g.diff.MaxGap-g.diff.MinGap+1))
	}

	return &Level{
		blocks: g.blocks,
		Seed:   rnd.Seed(),
	}
}
