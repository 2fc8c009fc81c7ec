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

package device

import (
	"io"
	"sync"

	"github.com/geodash-fpga/geodash/hardware/registers"
)

// Shadow is the host's copy of the write-only registers, as they were after
// the most recent successful command, and of the most recent telemetry.
type Shadow struct {
	Arg
	Status    registers.FifoStatus
	FillLevel uint32
}

// Channel is the command interface to the register file. Safe for concurrent
// use: each command completes before the next one begins.
type Channel struct {
	crit      sync.Mutex
	transport Transport
	shadow    Shadow

	// number of successful commands of each type
	issued [numCommands]int
}

// NewChannel is the preferred method of initialisation for the Channel type.
func NewChannel(transport Transport) *Channel {
	return &Channel{transport: transport}
}

// issue the command. the update function changes the one significant field
// of the argument record. the shadow copy is updated only on success
func (ch *Channel) issue(cmd Command, update func(*Arg)) (uint32, error) {
	ch.crit.Lock()
	defer ch.crit.Unlock()

	arg := ch.shadow.Arg
	if update != nil {
		update(&arg)
	}

	v, err := ch.transport.Control(cmd, &arg)
	if err != nil {
		return 0, &CommandError{Command: cmd, Err: err}
	}

	ch.shadow.Arg = arg
	if cmd.Valid() {
		ch.issued[cmd]++
	}
	return v, nil
}

// Issue sends a command using the current shadow copy as the argument record.
// The named Channel methods should be preferred. This function exists for
// diagnostics and for commands the far side might not know about.
func (ch *Channel) Issue(cmd Command) (uint32, error) {
	return ch.issue(cmd, nil)
}

// SetXShift writes the x_shift register.
func (ch *Channel) SetXShift(v uint16) error {
	_, err := ch.issue(SetXShift, func(a *Arg) { a.XShift = v })
	return err
}

// SetPlayerY writes the player_y register.
func (ch *Channel) SetPlayerY(v uint16) error {
	_, err := ch.issue(SetPlayerY, func(a *Arg) { a.PlayerY = v })
	return err
}

// SetBackgroundR writes the bg_r register.
func (ch *Channel) SetBackgroundR(v uint8) error {
	_, err := ch.issue(SetBackgroundR, func(a *Arg) { a.BackgroundR = v })
	return err
}

// SetBackgroundG writes the bg_g register.
func (ch *Channel) SetBackgroundG(v uint8) error {
	_, err := ch.issue(SetBackgroundG, func(a *Arg) { a.BackgroundG = v })
	return err
}

// SetBackgroundB writes the bg_b register.
func (ch *Channel) SetBackgroundB(v uint8) error {
	_, err := ch.issue(SetBackgroundB, func(a *Arg) { a.BackgroundB = v })
	return err
}

// SetMapBlock writes the map_block register.
func (ch *Channel) SetMapBlock(v uint8) error {
	_, err := ch.issue(SetMapBlock, func(a *Arg) { a.MapBlock = v })
	return err
}

// SetFlags writes the player flags register.
func (ch *Channel) SetFlags(v uint8) error {
	_, err := ch.issue(SetFlags, func(a *Arg) { a.Flags = v })
	return err
}

// SetOutputFlags writes the game state flags register.
func (ch *Channel) SetOutputFlags(v uint8) error {
	_, err := ch.issue(SetOutputFlags, func(a *Arg) { a.OutputFlags = v })
	return err
}

// SetScrollOffset writes the scroll_offset register.
func (ch *Channel) SetScrollOffset(v uint16) error {
	_, err := ch.issue(SetScrollOffset, func(a *Arg) { a.ScrollOffset = v })
	return err
}

// PushAudioSample pushes one sample into the audio FIFO.
func (ch *Channel) PushAudioSample(v uint16) error {
	_, err := ch.issue(PushAudioSample, func(a *Arg) { a.Audio = v })
	return err
}

// ReadFifoStatus reads the audio FIFO status register.
func (ch *Channel) ReadFifoStatus() (registers.FifoStatus, error) {
	v, err := ch.issue(ReadFifoStatus, nil)
	if err != nil {
		return 0, err
	}
	s := registers.FifoStatus(v & registers.StatusMask)

	ch.crit.Lock()
	ch.shadow.Status = s
	ch.crit.Unlock()

	return s, nil
}

// ReadFifoFillLevel reads the audio FIFO fill level register.
func (ch *Channel) ReadFifoFillLevel() (uint32, error) {
	v, err := ch.issue(ReadFifoFillLevel, nil)
	if err != nil {
		return 0, err
	}

	ch.crit.Lock()
	ch.shadow.FillLevel = v
	ch.crit.Unlock()

	return v, nil
}

// Shadow returns a copy of the shadow registers.
func (ch *Channel) Shadow() Shadow {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	return ch.shadow
}

// Issued returns the number of successful commands of the type.
func (ch *Channel) Issued(cmd Command) int {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	if !cmd.Valid() {
		return 0
	}
	return ch.issued[cmd]
}

// Close the transport if it implements io.Closer.
func (ch *Channel) Close() error {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	if c, ok := ch.transport.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
