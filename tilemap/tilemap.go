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

// Package tilemap maintains the double width display buffer that the video
// peripheral draws from. The buffer is two screens wide so that the visible
// window can scroll continuously while the column that has just left the
// screen is refilled from the level.
//
// Positioning is a single pixel counter, the level position. Everything the
// hardware needs is derived from it:
//
//	scroll offset = level position mod MaxScrollOffset
//	x shift       = scroll offset mod BlockSize
//	map block     = scroll offset / BlockSize
//
// Each time the level position crosses a block boundary the column that has
// just left the screen is loaded with the level block two screens ahead. At
// each screen boundary the whole of the outgoing half is refilled. The refill
// loads the same blocks as the column updates and so never disagrees with
// them.
package tilemap

import (
	"fmt"

	"github.com/geodash-fpga/geodash/level"
)

// Geometry of the display.
const (
	BlockSize       = 32
	ScreenCols      = 20
	ScreenRows      = 15
	ScreenWidth     = ScreenCols * BlockSize
	TilemapWidth    = 2 * ScreenCols
	MaxScrollOffset = TilemapWidth * BlockSize
)

// Publisher is the part of the device.Channel used by Publish().
type Publisher interface {
	SetScrollOffset(v uint16) error
}

// Manager owns the display buffer and the level position.
type Manager struct {
	level *level.Level

	buffer [TilemapWidth]level.Obstacle

	// total number of pixels scrolled
	position int

	// number of block boundaries crossed and screen refills performed
	columnUpdates int
	refills       int
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(l *level.Level) *Manager {
	m := &Manager{level: l}
	m.Reset()
	return m
}

func (m *Manager) String() string {
	return fmt.Sprintf("pos=%d scroll=%d blk=%d shift=%d", m.position, m.ScrollOffset(), m.MapBlock(), m.XShift())
}

// Reset returns to the start of the level. The first half of the buffer is
// loaded with the first screen of the level and the second half with the
// second screen.
func (m *Manager) Reset() {
	m.position = 0
	m.columnUpdates = 0
	m.refills = 0
	for i := range m.buffer {
		m.buffer[i] = m.level.Block(i)
	}
}

// Level returns the level being scrolled.
func (m *Manager) Level() *level.Level {
	return m.level
}

// LevelPosition returns the total number of pixels scrolled.
func (m *Manager) LevelPosition() int {
	return m.position
}

// ScrollOffset returns the position within the display buffer in pixels.
// Always in the range [0, MaxScrollOffset).
func (m *Manager) ScrollOffset() uint16 {
	return uint16(m.position % MaxScrollOffset)
}

// XShift returns the pixel offset within the current block.
func (m *Manager) XShift() uint16 {
	return m.ScrollOffset() % BlockSize
}

// MapBlock returns the buffer column at the left edge of the screen.
func (m *Manager) MapBlock() uint8 {
	return uint8(m.ScrollOffset() / BlockSize)
}

// ColumnUpdates returns the number of column updates since Reset().
func (m *Manager) ColumnUpdates() int {
	return m.columnUpdates
}

// Refills returns the number of screen refills since Reset().
func (m *Manager) Refills() int {
	return m.refills
}

// Advance the level position by speed pixels. Speed must not be negative.
func (m *Manager) Advance(speed int) {
	if speed <= 0 {
		return
	}

	from := m.position / BlockSize
	m.position += speed
	to := m.position / BlockSize

	for blk := from + 1; blk <= to; blk++ {
		m.copyNextColumn(blk)
		if (blk*BlockSize)%ScreenWidth == 0 {
			m.refillAt(blk * BlockSize)
		}
	}
}

// the level has scrolled so that blk is the leftmost level block on screen.
// the column holding blk-1 has left the screen
func (m *Manager) copyNextColumn(blk int) {
	gone := blk - 1
	m.buffer[gone%TilemapWidth] = m.level.Block(gone + TilemapWidth)
	m.columnUpdates++
}

// Refill the half of the buffer that is out of view, according to the most
// recent screen boundary. Refilling more than once at the same boundary has
// no further effect.
func (m *Manager) Refill() {
	boundary := m.position - m.position%ScreenWidth
	if boundary <= 0 {
		return
	}
	m.refillAt(boundary)
}

// refill the outgoing half at the screen boundary. pos is the level position
// of the boundary
func (m *Manager) refillAt(pos int) {
	start := (pos-ScreenWidth)/BlockSize + TilemapWidth
	for i := range ScreenCols {
		blk := start + i
		m.buffer[blk%TilemapWidth] = m.level.Block(blk)
	}
	m.refills++
}

// Buffer returns a copy of the display buffer.
func (m *Manager) Buffer() [TilemapWidth]level.Obstacle {
	return m.buffer
}

// LevelBlock returns the index of the level block under the screen column.
// The index may be beyond the end of the level.
func (m *Manager) LevelBlock(screenColumn int) int {
	return m.position/BlockSize + screenColumn
}

// TileAt returns the tile in the display buffer under the screen column.
func (m *Manager) TileAt(screenColumn int) level.Obstacle {
	idx := m.LevelBlock(screenColumn) % TilemapWidth
	if idx < 0 {
		idx += TilemapWidth
	}
	return m.buffer[idx]
}

// Progress returns how far through the level the position is, as a
// percentage in the range [0, 100].
func (m *Manager) Progress() int {
	total := m.level.Len() * BlockSize
	if total <= 0 {
		return 100
	}
	return min(100, m.position*100/total)
}

// Publish writes the scroll offset register.
func (m *Manager) Publish(p Publisher) error {
	return p.SetScrollOffset(m.ScrollOffset())
}
