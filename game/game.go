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

package game

import (
	"errors"
	"fmt"

	"github.com/geodash-fpga/geodash/curated"
	"github.com/geodash-fpga/geodash/environment"
	"github.com/geodash-fpga/geodash/hardware/device"
	"github.com/geodash-fpga/geodash/level"
	"github.com/geodash-fpga/geodash/limiter"
	"github.com/geodash-fpga/geodash/logger"
	"github.com/geodash-fpga/geodash/tilemap"
	"github.com/geodash-fpga/geodash/userinput"
)

const logTag = "game"

// Error patterns.
const (
	StateError = "game: cannot %s in %s state"
	EmptyLevel = "game: level has no blocks"
)

// Channel is the part of the device.Channel used to publish the game state.
type Channel interface {
	tilemap.Publisher
	SetPlayerY(v uint16) error
	SetXShift(v uint16) error
	SetMapBlock(v uint8) error
	SetBackgroundR(v uint8) error
	SetBackgroundG(v uint8) error
	SetBackgroundB(v uint8) error
	SetFlags(v uint8) error
	SetOutputFlags(v uint8) error
}

// Pacer is called after every tick and blocks until the next tick is due.
type Pacer interface {
	CheckTick()
}

// Game is the game state machine.
type Game struct {
	env   *environment.Environment
	ch    Channel
	input userinput.Input

	state  State
	Player Player
	tiles  *tilemap.Manager

	// the level is regenerated on every entry to the Ready state unless it
	// was supplied to Load()
	lvl   *level.Level
	fixed bool

	// input from the previous tick. used to detect button presses
	prev userinput.Buttons

	// level blocks of the most recently triggered jump pad and gravity
	// portal. a special tile triggers once no matter how many ticks the
	// player spends over it
	lastPad    int
	lastPortal int

	// whether the most recent GameOver was reached by finishing the level
	Completed bool

	Ticks         int
	Attempts      int
	PublishErrors int

	// called on every change of state. may be nil
	OnStateChange func(from State, to State)

	pacer Pacer
}

// NewGame is the preferred method of initialisation for the Game type. The
// game starts in the Loading state.
func NewGame(env *environment.Environment, ch Channel, input userinput.Input) *Game {
	g := &Game{
		env:        env,
		ch:         ch,
		input:      input,
		state:      Loading,
		lastPad:    -1,
		lastPortal: -1,
	}
	g.Player.Reset()
	return g
}

func (g *Game) String() string {
	if g.tiles == nil {
		return fmt.Sprintf("%s: %s", g.state, &g.Player)
	}
	return fmt.Sprintf("%s: %s %s", g.state, &g.Player, g.tiles)
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Tilemap returns the tilemap manager. Returns nil in the Loading state.
func (g *Game) Tilemap() *tilemap.Manager {
	return g.tiles
}

// Level returns the current level. Returns nil in the Loading state.
func (g *Game) Level() *level.Level {
	return g.lvl
}

// SetPacer replaces the limiter used by Run().
func (g *Game) SetPacer(pacer Pacer) {
	g.pacer = pacer
}

// Load completes the Loading state and moves the game to the Ready state.
//
// If the level is nil a new level is generated with the environment's random
// source every time the Ready state is entered. Otherwise the same level is
// played every time.
func (g *Game) Load(l *level.Level) error {
	if g.state != Loading {
		return curated.Errorf(StateError, "load level", g.state)
	}

	if l != nil {
		if l.Len() == 0 {
			return curated.Errorf(EmptyLevel)
		}
		g.lvl = l
		g.fixed = true
	}

	g.enterReady()
	return nil
}

// re-initialise player and tilemap
func (g *Game) enterReady() {
	if !g.fixed || g.lvl == nil {
		g.lvl = level.Generate(g.env.Random, level.MaxLength)
		logger.Logf(g.env, logTag, "generated level (seed %d)", g.lvl.Seed)
	}

	g.tiles = tilemap.NewManager(g.lvl)
	g.Player.Reset()
	g.lastPad = -1
	g.lastPortal = -1
	g.Completed = false

	g.setState(Ready)
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	from := g.state
	g.state = s
	logger.Logf(g.env, logTag, "%s -> %s", from, s)
	if g.OnStateChange != nil {
		g.OnStateChange(from, s)
	}
}

// Hazard returns true if an obstacle of the tile type kills a player with the
// vertical position. Obstacles stand on the ground and the player may overlap
// one by CollisionTolerance pixels.
func Hazard(tile level.Obstacle, y int32) bool {
	switch tile {
	case level.Spike, level.Block:
		return touching(y)
	}
	return false
}

// whether a player at y overlaps a ground standing obstacle by more than the
// tolerance
func touching(y int32) bool {
	return y > GroundY-tilemap.BlockSize+CollisionTolerance
}

// Tick advances the game by one frame and publishes the result.
func (g *Game) Tick() {
	in := g.input.Get()
	pressed := in.Pressed(g.prev)
	g.prev = in

	switch g.state {
	case Loading:
	case Ready:
		if pressed.Start {
			g.Attempts++
			g.setState(Playing)
		}
	case Playing:
		g.step(in)
	case GameOver:
		if pressed.Start {
			g.enterReady()
		}
	}

	g.Ticks++
	g.Publish()
}

func (g *Game) step(in userinput.Buttons) {
	p := &g.Player

	if in.Action && !p.IsJumping {
		p.Jump(JumpVelocity)
	}
	p.Step()

	p.XPos += PlayerSpeed
	g.tiles.Advance(PlayerSpeed)

	blk := g.tiles.LevelBlock(PlayerColumn)
	if blk >= g.lvl.Len() {
		g.Completed = true
		logger.Logf(g.env, logTag, "level completed after %d blocks", g.lvl.Len())
		g.setState(GameOver)
		return
	}

	// unknown tiles fall through and do nothing
	switch tile := g.tiles.TileAt(PlayerColumn); tile {
	case level.JumpPad:
		if blk != g.lastPad && touching(p.YPos) {
			g.lastPad = blk
			p.Jump(JumpPadVelocity)
		}
	case level.GravityPortal:
		if blk != g.lastPortal {
			g.lastPortal = blk
			p.FlipGravity()
		}
	default:
		if Hazard(tile, p.YPos) {
			p.IsDead = true
			logger.Logf(g.env, logTag, "player hit %s at block %d", tile, blk)
		}
	}

	if p.IsDead {
		g.setState(GameOver)
	}
}

// Publish writes the game state to the hardware. Failed commands are logged
// and do not prevent the remaining commands from being issued.
func (g *Game) Publish() {
	if g.tiles != nil {
		g.report(g.ch.SetPlayerY(clampU16(g.Player.YPos)))
		g.report(g.ch.SetXShift(g.tiles.XShift()))
		g.report(g.tiles.Publish(g.ch))
		g.report(g.ch.SetMapBlock(g.tiles.MapBlock()))

		red, green, blue := Background(g.tiles.Progress())
		g.report(g.ch.SetBackgroundR(red))
		g.report(g.ch.SetBackgroundG(green))
		g.report(g.ch.SetBackgroundB(blue))
	}
	g.report(g.ch.SetFlags(g.Player.Flags()))
	g.report(g.ch.SetOutputFlags(g.state.Flag()))
}

func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.PublishErrors++
	if errors.Is(err, device.ErrInvalidCommand) {
		logger.Logf(g.env, logTag, "logic error: %v", err)
		return
	}
	logger.Log(g.env, logTag, err)
}

// Run the game loop until quit is signalled. The loop is paced by a limiter
// at the game.tickrate preference unless SetPacer() has been called.
func (g *Game) Run(quit <-chan bool) error {
	if g.state == Loading {
		return curated.Errorf(StateError, "run", g.state)
	}

	pacer := g.pacer
	if pacer == nil {
		lmtr := limiter.NewLimiter(g.env.Prefs.TickRateHz())
		defer lmtr.Stop()

		// every tick is published to the hardware and is paced on its own
		lmtr.SetBatch(1)
		pacer = lmtr
	}

	logger.Logf(g.env, logTag, "running at %.2fHz", g.env.Prefs.TickRateHz())

	for {
		select {
		case <-quit:
			logger.Logf(g.env, logTag, "stopped after %d ticks", g.Ticks)
			return nil
		default:
		}

		g.Tick()
		pacer.CheckTick()
	}
}
