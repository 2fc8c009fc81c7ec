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

// Package level holds the level data: one obstacle per block, for the length
// of the level. Levels are generated from a seed with Generate() or loaded
// from a level file with Load(). A Level is never changed once created.
//
// The level file format is one decimal obstacle value per line, one line per
// block.
package level

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geodash-fpga/geodash/curated"
)

// MaxLength is the maximum number of blocks in a level.
const MaxLength = 1024

// Obstacle is the content of one block of the level.
type Obstacle uint8

// List of valid Obstacle values.
const (
	None Obstacle = iota
	Spike
	Block
	Platform
	JumpPad
	GravityPortal
	numObstacles
)

func (o Obstacle) String() string {
	switch o {
	case None:
		return "none"
	case Spike:
		return "spike"
	case Block:
		return "block"
	case Platform:
		return "platform"
	case JumpPad:
		return "jump pad"
	case GravityPortal:
		return "gravity portal"
	}
	return fmt.Sprintf("obstacle(%d)", uint8(o))
}

// Valid returns true if the obstacle value is known.
func (o Obstacle) Valid() bool {
	return o < numObstacles
}

// Level is an immutable sequence of obstacles.
type Level struct {
	blocks []Obstacle

	// the seed the level was generated with. zero if the level was loaded
	Seed int64
}

// NewLevel creates a Level from a copy of the blocks.
func NewLevel(blocks []Obstacle) *Level {
	return &Level{
		blocks: append([]Obstacle(nil), blocks...),
	}
}

func (l *Level) String() string {
	s := strings.Builder{}
	for _, b := range l.blocks {
		switch b {
		case None:
			s.WriteRune('.')
		case Spike:
			s.WriteRune('^')
		case Block:
			s.WriteRune('#')
		case Platform:
			s.WriteRune('_')
		case JumpPad:
			s.WriteRune('*')
		case GravityPortal:
			s.WriteRune('@')
		default:
			s.WriteRune('?')
		}
	}
	return s.String()
}

// Len returns the number of blocks in the level.
func (l *Level) Len() int {
	return len(l.blocks)
}

// Block returns the obstacle at the block index. Blocks outside the level are
// None.
func (l *Level) Block(idx int) Obstacle {
	if idx < 0 || idx >= len(l.blocks) {
		return None
	}
	return l.blocks[idx]
}

// Blocks returns a copy of the level data.
func (l *Level) Blocks() []Obstacle {
	return append([]Obstacle(nil), l.blocks...)
}

// Save writes the level in the level file format.
func (l *Level) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, b := range l.blocks {
		if _, err := fmt.Fprintf(bw, "%d\n", b); err != nil {
			return curated.Errorf(LevelFileError, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return curated.Errorf(LevelFileError, err)
	}
	return nil
}

// Error patterns for level files.
const (
	LevelFileError   = "level: %v"
	InvalidBlockLine = "level: line %d: invalid block (%s)"
)

// Load reads a level in the level file format. At most max blocks are read.
// Blank lines are ignored. A value that is not a valid obstacle is an error.
func Load(r io.Reader, max int) (*Level, error) {
	l := &Level{}

	scanner := bufio.NewScanner(r)
	line := 0
	for len(l.blocks) < max && scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil || !Obstacle(v).Valid() {
			return nil, curated.Errorf(InvalidBlockLine, line, s)
		}
		l.blocks = append(l.blocks, Obstacle(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LevelFileError, err)
	}

	return l, nil
}
