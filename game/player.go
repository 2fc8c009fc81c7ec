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
	"fmt"

	"github.com/geodash-fpga/geodash/tilemap"
)

// Player physics.
const (
	// top edge of the player when resting on the ground and against the
	// ceiling
	GroundY  = 384
	CeilingY = 64

	// horizontal speed in pixels per tick
	PlayerSpeed = 4

	// fixed screen column of the player
	PlayerColumn = 4

	Gravity         = 1
	JumpVelocity    = 12
	JumpPadVelocity = 18

	// how far the player can overlap an obstacle without dying
	CollisionTolerance = 4
)

// Player flags published with the SetFlags command.
const (
	FlagJumping  uint8 = 0x01
	FlagDead     uint8 = 0x02
	FlagInverted uint8 = 0x04
)

// Player is the state of the player sprite.
type Player struct {
	XPos int32
	YPos int32
	YVel int32

	IsJumping         bool
	IsDead            bool
	IsGravityInverted bool
}

func (p *Player) String() string {
	return fmt.Sprintf("x=%d y=%d vel=%d flags=%#02x", p.XPos, p.YPos, p.YVel, p.Flags())
}

// Reset the player to the start position, resting on the ground.
func (p *Player) Reset() {
	*p = Player{
		XPos: PlayerColumn * tilemap.BlockSize,
		YPos: GroundY,
	}
}

// GravityDirection is 1 for normal gravity and -1 for inverted gravity.
func (p *Player) GravityDirection() int32 {
	if p.IsGravityInverted {
		return -1
	}
	return 1
}

// Flags returns the packed player flags.
func (p *Player) Flags() uint8 {
	var f uint8
	if p.IsJumping {
		f |= FlagJumping
	}
	if p.IsDead {
		f |= FlagDead
	}
	if p.IsGravityInverted {
		f |= FlagInverted
	}
	return f
}

// Jump away from the landing surface with the supplied speed.
func (p *Player) Jump(velocity int32) {
	p.YVel = -velocity * p.GravityDirection()
	p.IsJumping = true
}

// FlipGravity inverts the direction of gravity. The player is airborne until
// it reaches the new landing surface.
func (p *Player) FlipGravity() {
	p.IsGravityInverted = !p.IsGravityInverted
	p.IsJumping = true
}

// Resting returns true if the player is on the landing surface for the
// current gravity direction.
func (p *Player) Resting() bool {
	if p.IsJumping || p.YVel != 0 {
		return false
	}
	if p.IsGravityInverted {
		return p.YPos == CeilingY
	}
	return p.YPos == GroundY
}

// Step applies gravity, integrates the vertical position and clamps the
// player to the playfield.
func (p *Player) Step() {
	p.YVel += Gravity * p.GravityDirection()
	p.YPos += p.YVel
	p.clamp()
}

// landing on the surface in the direction of gravity ends a jump. hitting the
// opposite surface stops vertical movement but the player stays airborne
func (p *Player) clamp() {
	if p.YPos >= GroundY {
		p.YPos = GroundY
		p.YVel = 0
		if !p.IsGravityInverted {
			p.IsJumping = false
		}
	} else if p.YPos <= CeilingY {
		p.YPos = CeilingY
		p.YVel = 0
		if p.IsGravityInverted {
			p.IsJumping = false
		}
	}
}
