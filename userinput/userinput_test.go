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

package userinput_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/geodash-fpga/geodash/curated"
	"github.com/geodash-fpga/geodash/test"
	"github.com/geodash-fpga/geodash/userinput"
)

func TestPressed(t *testing.T) {
	prev := userinput.Buttons{Action: true}
	cur := userinput.Buttons{Action: true, Start: true}

	p := cur.Pressed(prev)
	test.ExpectEquality(t, p, userinput.Buttons{Start: true})
	test.ExpectEquality(t, p.String(), "start")
	test.ExpectEquality(t, userinput.Buttons{}.String(), "-")
}

func TestControllers(t *testing.T) {
	var st userinput.State
	c := userinput.NewControllers(&st)

	c.HandleEvent(userinput.EventKeyboard{Key: "Space", Down: true})
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, st.Get(), userinput.Buttons{Action: true})

	c.HandleEvent(userinput.EventKeyboard{Key: "Enter", Down: true})
	c.HandleEvent(userinput.EventKeyboard{Key: "Space", Down: false})
	test.ExpectEquality(t, st.Get(), userinput.Buttons{Start: true})

	c.HandleEvent(userinput.EventKeyboard{Key: "X", Down: true})
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, st.Get(), userinput.Buttons{Start: true})
}

func TestKeyboardHold(t *testing.T) {
	var st userinput.State
	k := userinput.NewKeyboard(&st)
	k.Hold = 100 * time.Millisecond

	now := time.Now()
	test.ExpectEquality(t, k.Feed(' ', now), "Space")
	test.ExpectEquality(t, k.Feed('d', now), "D")
	test.ExpectEquality(t, st.Get(), userinput.Buttons{Action: true, Right: true})

	// auto-repeat of the space key keeps it held
	k.Feed(' ', now.Add(80*time.Millisecond))
	k.Expire(now.Add(150 * time.Millisecond))
	test.ExpectEquality(t, st.Get(), userinput.Buttons{Action: true})

	k.Expire(now.Add(200 * time.Millisecond))
	test.ExpectEquality(t, st.Get(), userinput.Buttons{})
}

func TestKeyboardEscape(t *testing.T) {
	var st userinput.State
	k := userinput.NewKeyboard(&st)

	now := time.Now()
	test.ExpectEquality(t, k.Feed(27, now), "")
	test.ExpectEquality(t, k.Feed('[', now), "")
	test.ExpectEquality(t, k.Feed('D', now), "Left")
	test.ExpectEquality(t, st.Get(), userinput.Buttons{Left: true})

	// an unknown sequence does not leave the decoder stuck
	k.Feed(27, now)
	k.Feed('x', now)
	test.ExpectEquality(t, k.Feed('\r', now), "Enter")
}

func TestKeyboardRun(t *testing.T) {
	var st userinput.State
	k := userinput.NewKeyboard(&st)

	// keys are released when the input ends
	err := k.Run(strings.NewReader(" \r"), make(chan bool))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Get(), userinput.Buttons{})

	// quit
	r, w := io.Pipe()
	defer w.Close()
	quit := make(chan bool)
	done := make(chan error, 1)
	go func() {
		done <- k.Run(r, quit)
	}()
	_, _ = w.Write([]byte(" "))
	quit <- true
	test.ExpectSuccess(t, <-done)
}

func TestScript(t *testing.T) {
	s := userinput.NewScript(
		userinput.Step{Ticks: 2, Buttons: userinput.Buttons{Start: true}},
		userinput.Step{Ticks: 0, Buttons: userinput.Buttons{Left: true}},
		userinput.Step{Ticks: 1, Buttons: userinput.Buttons{Action: true}},
	)

	test.ExpectEquality(t, s.Get(), userinput.Buttons{Start: true})
	test.ExpectEquality(t, s.Get(), userinput.Buttons{Start: true})
	test.ExpectFailure(t, s.Done())
	test.ExpectEquality(t, s.Get(), userinput.Buttons{Action: true})
	test.ExpectSuccess(t, s.Done())
	test.ExpectEquality(t, s.Get(), userinput.Buttons{})

	s.Rewind()
	test.ExpectEquality(t, s.Get(), userinput.Buttons{Start: true})
}

func TestParseScript(t *testing.T) {
	s, err := userinput.ParseScript(strings.NewReader("# demo\n\n3 start\n1 -\n2 action left\n"))
	test.DemandSuccess(t, err)

	var got []userinput.Buttons
	for !s.Done() {
		got = append(got, s.Get())
	}
	test.ExpectEquality(t, len(got), 6)
	test.ExpectEquality(t, got[0], userinput.Buttons{Start: true})
	test.ExpectEquality(t, got[3], userinput.Buttons{})
	test.ExpectEquality(t, got[5], userinput.Buttons{Action: true, Left: true})

	_, err = userinput.ParseScript(strings.NewReader("3 jump\n"))
	test.ExpectSuccess(t, curated.Is(err, userinput.ScriptError))

	_, err = userinput.ParseScript(strings.NewReader("x start\n"))
	test.ExpectSuccess(t, curated.Is(err, userinput.ScriptError))
}

func TestScriptRepeat(t *testing.T) {
	s := userinput.NewScript(
		userinput.Step{Ticks: 1, Buttons: userinput.Buttons{Start: true}},
		userinput.Step{Ticks: 2},
	)
	s.Repeat = true

	var starts int
	for range 9 {
		if s.Get().Start {
			starts++
		}
	}
	test.ExpectEquality(t, starts, 3)
	test.ExpectFailure(t, s.Done())

	// an empty repeating script does not loop forever
	e := userinput.NewScript(userinput.Step{Ticks: 0})
	e.Repeat = true
	test.ExpectEquality(t, e.Get(), userinput.Buttons{})
	test.ExpectSuccess(t, e.Done())
}
