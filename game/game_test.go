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

package game_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/geodash-fpga/geodash/environment"
	"github.com/geodash-fpga/geodash/game"
	"github.com/geodash-fpga/geodash/hardware/device"
	"github.com/geodash-fpga/geodash/hardware/preferences"
	"github.com/geodash-fpga/geodash/hardware/registers"
	"github.com/geodash-fpga/geodash/level"
	"github.com/geodash-fpga/geodash/logger"
	"github.com/geodash-fpga/geodash/test"
	"github.com/geodash-fpga/geodash/tilemap"
	"github.com/geodash-fpga/geodash/userinput"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("game", p)
	test.DemandSuccess(t, err)
	env.Normalise()
	return env
}

// records every command issued. fails every command if err is not nil
type channel struct {
	issued []string
	err    error
}

func (c *channel) record(name string, v any) error {
	if c.err != nil {
		return &device.CommandError{Err: c.err}
	}
	c.issued = append(c.issued, fmt.Sprintf("%s=%v", name, v))
	return nil
}

func (c *channel) SetPlayerY(v uint16) error      { return c.record("playery", v) }
func (c *channel) SetXShift(v uint16) error       { return c.record("xshift", v) }
func (c *channel) SetScrollOffset(v uint16) error { return c.record("scroll", v) }
func (c *channel) SetMapBlock(v uint8) error      { return c.record("mapblock", v) }
func (c *channel) SetBackgroundR(v uint8) error   { return c.record("r", v) }
func (c *channel) SetBackgroundG(v uint8) error   { return c.record("g", v) }
func (c *channel) SetBackgroundB(v uint8) error   { return c.record("b", v) }
func (c *channel) SetFlags(v uint8) error         { return c.record("flags", v) }
func (c *channel) SetOutputFlags(v uint8) error   { return c.record("output", v) }

func (c *channel) names() []string {
	var n []string
	for _, s := range c.issued {
		n = append(n, strings.Split(s, "=")[0])
	}
	return n
}

// a level with nothing in it except the supplied obstacles
func emptyLevel(length int, obstacles map[int]level.Obstacle) *level.Level {
	blocks := make([]level.Obstacle, length)
	for i, o := range obstacles {
		blocks[i] = o
	}
	return level.NewLevel(blocks)
}

var (
	none   = userinput.Buttons{}
	start  = userinput.Buttons{Start: true}
	action = userinput.Buttons{Action: true}
)

// start a game on the level. the game is in the Playing state on return
func startGame(t *testing.T, l *level.Level, in *userinput.State) (*game.Game, *channel) {
	t.Helper()
	ch := &channel{}
	g := game.NewGame(newEnv(t), ch, in)
	test.DemandEquality(t, g.State(), game.Loading)
	test.DemandSuccess(t, g.Load(l))
	test.DemandEquality(t, g.State(), game.Ready)

	in.Set(start)
	g.Tick()
	in.Set(none)
	test.DemandEquality(t, g.State(), game.Playing)
	return g, ch
}

func TestHazard(t *testing.T) {
	test.ExpectSuccess(t, game.Hazard(level.Spike, game.GroundY))
	test.ExpectFailure(t, game.Hazard(level.Spike, game.GroundY-2*tilemap.BlockSize))
	test.ExpectSuccess(t, game.Hazard(level.Block, game.GroundY))

	// tolerance band
	edge := int32(game.GroundY - tilemap.BlockSize + game.CollisionTolerance)
	test.ExpectFailure(t, game.Hazard(level.Spike, edge))
	test.ExpectSuccess(t, game.Hazard(level.Spike, edge+1))

	// harmless tiles
	for _, o := range []level.Obstacle{level.None, level.Platform, level.JumpPad, level.GravityPortal, level.Obstacle(99)} {
		test.ExpectFailure(t, game.Hazard(o, game.GroundY), o)
	}
}

func TestBackground(t *testing.T) {
	r, g, b := game.Background(0)
	test.ExpectEquality(t, r, uint8(game.StartColour.R))
	test.ExpectEquality(t, g, uint8(game.StartColour.G))
	test.ExpectEquality(t, b, uint8(game.StartColour.B))

	r, g, b = game.Background(100)
	test.ExpectEquality(t, r, uint8(game.EndColour.R))
	test.ExpectEquality(t, g, uint8(game.EndColour.G))
	test.ExpectEquality(t, b, uint8(game.EndColour.B))

	// out of range progress is clamped
	r, _, _ = game.Background(1000)
	test.ExpectEquality(t, r, uint8(game.EndColour.R))
	r, _, _ = game.Background(-50)
	test.ExpectEquality(t, r, uint8(game.StartColour.R))

	// red channel rises and blue channel falls monotonically
	pr, _, pb := game.Background(0)
	for p := 1; p <= 100; p++ {
		r, _, b := game.Background(p)
		test.ExpectSuccess(t, r >= pr, p)
		test.ExpectSuccess(t, b <= pb, p)
		pr, pb = r, b
	}
}

func TestRestingOnGround(t *testing.T) {
	var p game.Player
	p.Reset()
	test.ExpectSuccess(t, p.Resting())

	for range 100 {
		p.Step()
		test.ExpectEquality(t, p.YPos, int32(game.GroundY))
		test.ExpectSuccess(t, p.Resting())
	}

	p.Jump(game.JumpVelocity)
	test.ExpectEquality(t, p.YVel, int32(-game.JumpVelocity))
	for range 100 {
		p.Step()
		if p.YPos < game.CeilingY || p.YPos > game.GroundY {
			t.Fatalf("player out of bounds: %s", &p)
		}
		if !p.IsJumping && p.YVel == 0 {
			test.ExpectEquality(t, p.YPos, int32(game.GroundY))
		}
	}
	test.ExpectSuccess(t, p.Resting())
}

func TestRestingOnCeiling(t *testing.T) {
	var p game.Player
	p.Reset()
	p.FlipGravity()
	test.ExpectEquality(t, p.GravityDirection(), int32(-1))
	test.ExpectFailure(t, p.Resting())

	for range 100 {
		p.Step()
		if !p.IsJumping && p.YVel == 0 {
			test.ExpectEquality(t, p.YPos, int32(game.CeilingY))
		}
	}
	test.ExpectSuccess(t, p.Resting())
	test.ExpectEquality(t, p.Flags(), game.FlagInverted)

	// jumping with inverted gravity moves down the screen
	p.Jump(game.JumpVelocity)
	test.ExpectEquality(t, p.YVel, int32(game.JumpVelocity))
	test.ExpectEquality(t, p.Flags(), game.FlagInverted|game.FlagJumping)
	p.Step()
	test.ExpectSuccess(t, p.YPos > game.CeilingY)
}

func TestOppositeSurface(t *testing.T) {
	var p game.Player
	p.Reset()

	// a jump large enough to reach the ceiling stops there but the player is
	// still airborne
	p.Jump(400)
	p.Step()
	test.ExpectEquality(t, p.YPos, int32(game.CeilingY))
	test.ExpectEquality(t, p.YVel, int32(0))
	test.ExpectSuccess(t, p.IsJumping)
	test.ExpectFailure(t, p.Resting())
}

func TestFirstBlock(t *testing.T) {
	var in userinput.State
	l := level.Generate(newEnv(t).Random, level.MaxLength)
	g, _ := startGame(t, l, &in)

	for range tilemap.BlockSize / game.PlayerSpeed {
		g.Tick()
	}
	test.ExpectEquality(t, g.State(), game.Playing)
	test.ExpectEquality(t, g.Tilemap().XShift(), uint16(0))
	test.ExpectEquality(t, g.Tilemap().ColumnUpdates(), 1)
	test.ExpectEquality(t, g.Player.XPos, int32(game.PlayerColumn*tilemap.BlockSize+tilemap.BlockSize))
}

func TestTransitions(t *testing.T) {
	var in userinput.State
	l := emptyLevel(100, map[int]level.Obstacle{game.PlayerColumn + 2: level.Spike})

	var changes []string
	g, _ := startGame(t, l, &in)
	g.OnStateChange = func(from game.State, to game.State) {
		changes = append(changes, fmt.Sprintf("%s>%s", from, to))
	}

	// holding start does not restart the game
	in.Set(start)
	for g.State() == game.Playing {
		g.Tick()
	}
	test.ExpectEquality(t, g.State(), game.GameOver)
	test.ExpectSuccess(t, g.Player.IsDead)
	test.ExpectFailure(t, g.Completed)
	test.ExpectEquality(t, g.Player.Flags()&game.FlagDead, game.FlagDead)

	// release and press again
	in.Set(none)
	g.Tick()
	test.ExpectEquality(t, g.State(), game.GameOver)
	in.Set(start)
	g.Tick()
	test.ExpectEquality(t, g.State(), game.Ready)

	// player and tilemap re-initialised
	test.ExpectFailure(t, g.Player.IsDead)
	test.ExpectEquality(t, g.Player.YPos, int32(game.GroundY))
	test.ExpectEquality(t, g.Tilemap().LevelPosition(), 0)

	// the same level is replayed
	test.ExpectEquality(t, g.Level(), l)

	test.ExpectEquality(t, strings.Join(changes, " "), "playing>game over game over>ready")

	// loading a level is only possible in the Loading state
	test.ExpectFailure(t, g.Load(l))
}

func TestJumpOverSpike(t *testing.T) {
	var in userinput.State
	l := emptyLevel(100, map[int]level.Obstacle{game.PlayerColumn + 2: level.Spike})
	g, _ := startGame(t, l, &in)

	// jump a block before the spike
	for g.Tilemap().LevelBlock(game.PlayerColumn) < game.PlayerColumn+1 {
		g.Tick()
	}
	in.Set(action)
	g.Tick()
	in.Set(none)

	for g.Tilemap().LevelBlock(game.PlayerColumn) < game.PlayerColumn+4 {
		g.Tick()
		test.DemandEquality(t, g.State(), game.Playing)
	}
}

func TestLevelComplete(t *testing.T) {
	var in userinput.State
	g, _ := startGame(t, emptyLevel(10, nil), &in)

	for range 1000 {
		if g.State() != game.Playing {
			break
		}
		g.Tick()
	}
	test.ExpectEquality(t, g.State(), game.GameOver)
	test.ExpectSuccess(t, g.Completed)
	test.ExpectFailure(t, g.Player.IsDead)
}

func TestGravityPortal(t *testing.T) {
	var in userinput.State
	g, _ := startGame(t, emptyLevel(100, map[int]level.Obstacle{game.PlayerColumn + 1: level.GravityPortal}), &in)

	// the portal takes effect once even though the player spends several
	// ticks over it
	for g.Tilemap().LevelBlock(game.PlayerColumn) <= game.PlayerColumn+1 {
		g.Tick()
	}
	test.ExpectSuccess(t, g.Player.IsGravityInverted)

	for range 100 {
		g.Tick()
	}
	test.ExpectEquality(t, g.State(), game.Playing)
	test.ExpectSuccess(t, g.Player.Resting())
	test.ExpectEquality(t, g.Player.YPos, int32(game.CeilingY))
}

func TestJumpPad(t *testing.T) {
	var in userinput.State
	g, _ := startGame(t, emptyLevel(100, map[int]level.Obstacle{game.PlayerColumn + 1: level.JumpPad}), &in)

	for g.Tilemap().LevelBlock(game.PlayerColumn) < game.PlayerColumn+1 {
		g.Tick()
	}
	g.Tick()
	test.ExpectSuccess(t, g.Player.IsJumping)

	// the pad triggered once. the player rises higher than a normal jump
	highest := g.Player.YPos
	for g.Player.IsJumping {
		g.Tick()
		highest = min(highest, g.Player.YPos)
	}
	test.ExpectSuccess(t, highest < game.GroundY-int32(game.JumpVelocity*(game.JumpVelocity+1)/2))
}

func TestPublishOrder(t *testing.T) {
	var in userinput.State
	g, ch := startGame(t, emptyLevel(100, nil), &in)

	ch.issued = ch.issued[:0]
	g.Tick()
	test.ExpectEquality(t, strings.Join(ch.names(), " "), "playery xshift scroll mapblock r g b flags output")
	test.ExpectEquality(t, ch.issued[0], fmt.Sprintf("playery=%d", game.GroundY))
	test.ExpectEquality(t, ch.issued[8], fmt.Sprintf("output=%d", game.Playing.Flag()))

	// only the flags are published while loading
	ch = &channel{}
	g = game.NewGame(newEnv(t), ch, &in)
	g.Tick()
	test.ExpectEquality(t, strings.Join(ch.names(), " "), "flags output")
	test.ExpectEquality(t, ch.issued[1], fmt.Sprintf("output=%d", game.Loading.Flag()))
}

func TestPublishErrors(t *testing.T) {
	var in userinput.State
	g, ch := startGame(t, emptyLevel(100, nil), &in)

	logger.Clear()
	ch.err = errors.New("test failure")

	g.Tick()
	g.Tick()
	test.ExpectEquality(t, g.PublishErrors, 18)
	test.ExpectEquality(t, g.State(), game.Playing)
	test.ExpectEquality(t, g.Tilemap().LevelPosition(), 2*game.PlayerSpeed)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "test failure"))

	// invalid command is reported as a logic error
	logger.Clear()
	ch.err = device.ErrInvalidCommand
	g.Tick()
	w.Reset()
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "logic error"))
}

// the game publishing to a simulated register file
func TestSimulatedDevice(t *testing.T) {
	fifo := registers.NewSimulatedFIFO(64, 0)
	regs, mem, err := registers.NewSimulated(registers.LayoutV2, fifo)
	test.DemandSuccess(t, err)
	ch := device.NewChannel(device.NewDriver(regs))

	var in userinput.State
	g := game.NewGame(newEnv(t), ch, &in)
	test.DemandSuccess(t, g.Load(emptyLevel(100, nil)))
	in.Set(start)
	for range 20 {
		g.Tick()
	}
	test.ExpectEquality(t, g.PublishErrors, 0)

	peek := func(f registers.Field) uint16 {
		r, ok := registers.LayoutV2.Register(f)
		test.DemandSuccess(t, ok)
		return mem.Peek16(r.Offset)
	}

	pos := 19 * game.PlayerSpeed
	test.ExpectEquality(t, peek(registers.PlayerY), uint16(game.GroundY))
	test.ExpectEquality(t, peek(registers.ScrollOffset), uint16(pos))
	test.ExpectEquality(t, peek(registers.XShift), uint16(pos%tilemap.BlockSize))
	test.ExpectEquality(t, peek(registers.MapBlock), uint16(pos/tilemap.BlockSize))
	test.ExpectEquality(t, peek(registers.OutputFlags), uint16(game.Playing.Flag()))

	sh := ch.Shadow()
	test.ExpectEquality(t, sh.ScrollOffset, uint16(pos))
}

type quitAfter struct {
	n    int
	quit chan bool
}

func (q *quitAfter) CheckTick() {
	q.n--
	if q.n == 0 {
		close(q.quit)
	}
}

func TestRun(t *testing.T) {
	var in userinput.State
	ch := &channel{}
	g := game.NewGame(newEnv(t), ch, &in)

	quit := make(chan bool)
	test.ExpectFailure(t, g.Run(quit))

	test.DemandSuccess(t, g.Load(nil))
	test.ExpectEquality(t, g.Level().Len(), level.MaxLength)

	g.SetPacer(&quitAfter{n: 10, quit: quit})
	test.ExpectSuccess(t, g.Run(quit))
	test.ExpectEquality(t, g.Ticks, 10)
}

// records the time of every output flags write, which is the last write of a
// tick
type timedChannel struct {
	*channel
	published []time.Time
}

func (c *timedChannel) SetOutputFlags(v uint8) error {
	c.published = append(c.published, time.Now())
	return c.channel.SetOutputFlags(v)
}

func TestRunPacesEveryTick(t *testing.T) {
	env := newEnv(t)
	test.DemandSuccess(t, env.Prefs.TickRate.Set(20))

	var in userinput.State
	ch := &timedChannel{channel: &channel{}}
	g := game.NewGame(env, ch, &in)
	test.DemandSuccess(t, g.Load(nil))

	quit := make(chan bool)
	time.AfterFunc(330*time.Millisecond, func() { close(quit) })
	test.ExpectSuccess(t, g.Run(quit))

	// ticks are 50ms apart. a stalled scheduler can cause one short gap but
	// ticks are never published in back to back groups
	test.DemandSuccess(t, len(ch.published) >= 4)
	var short int
	for i := 1; i < len(ch.published); i++ {
		if ch.published[i].Sub(ch.published[i-1]) < 25*time.Millisecond {
			short++
		}
	}
	test.ExpectSuccess(t, short <= 1, short)
}
