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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"

	"github.com/geodash-fpga/geodash/audio"
	"github.com/geodash-fpga/geodash/environment"
	"github.com/geodash-fpga/geodash/game"
	"github.com/geodash-fpga/geodash/level"
	"github.com/geodash-fpga/geodash/logger"
	"github.com/geodash-fpga/geodash/modalflag"
	"github.com/geodash-fpga/geodash/paths"
	"github.com/geodash-fpga/geodash/performance"
	"github.com/geodash-fpga/geodash/statsview"
	"github.com/geodash-fpga/geodash/userinput"
	"github.com/geodash-fpga/geodash/version"
)

// output for everything that isn't an error
var stdout io.Writer = os.Stdout

var (
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1))
	infoStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))
)

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("* error"), err)
}

func printInfo(format string, args ...any) {
	fmt.Fprintf(stdout, "%s %s\n", infoStyle.Render("*"), fmt.Sprintf(format, args...))
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "AUDIO", "LEVEL", "STATUS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		printError(err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "AUDIO":
		err = playAudio(md)
	case "LEVEL":
		err = makeLevel(md)
	case "STATUS":
		err = status(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Fprintln(stdout, version.Version())
	}

	if err != nil {
		printError(fmt.Errorf("%s mode: %w", md, err))
		os.Exit(20)
	}
}

func loadLevel(filename string) (*level.Level, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return level.Load(f, level.MaxLength)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	audioFile := md.AddString("audio", "", "audio file to stream while playing (.wav, .mp3 or raw 16-bit stereo)")
	levelFile := md.AddString("level", "", "level file to play. a new level is generated if not given")
	scriptFile := md.AddString("script", "", "input script to use instead of the keyboard")
	memvizFile := md.AddString("memviz", "", "write a dot graph of the game state to file on exit")
	stats := md.AddBool("statsview", statsview.Available(), "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.Address, "address of the stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := common.environment("run")
	if err != nil {
		return err
	}

	if *stats {
		srv := statsview.Launch(stdout, *statsAddr)
		defer srv.Stop()
	}

	hw, err := openHardware(env, *common.capture)
	if err != nil {
		return err
	}
	defer hw.Close()

	var lvl *level.Level
	if *levelFile != "" {
		lvl, err = loadLevel(*levelFile)
		if err != nil {
			return err
		}
	}

	// input from the script or from the keyboard
	var input userinput.Input
	var script *userinput.Script
	var kbQuit chan bool
	kbResult := make(chan error, 1)

	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			return err
		}
		script, err = userinput.ParseScript(f)
		f.Close()
		if err != nil {
			return err
		}
		input = script
	} else {
		term, err := userinput.OpenTerminal(os.Stdin)
		if err != nil {
			return fmt.Errorf("keyboard not available (use -script): %w", err)
		}
		defer term.Close()

		state := &userinput.State{}
		input = state
		kb := userinput.NewKeyboard(state)
		kbQuit = make(chan bool)
		go func() {
			kbResult <- kb.Run(term, kbQuit)
		}()
		defer close(kbQuit)

		printInfo("a/d left/right, space to jump, enter to start. ctrl-c to quit")
	}

	g := game.NewGame(env, hw.ch, input)
	g.Publish()

	// the audio must be ready before the game leaves the loading state
	var pump *audio.Pump
	if *audioFile != "" {
		src, err := audio.OpenSource(*audioFile, env.Prefs.SampleRate.Get().(int))
		if err != nil {
			return err
		}
		defer src.Close()
		pump = audio.NewPump(env, hw.ch, src)
	}

	err = g.Load(lvl)
	if err != nil {
		return err
	}

	quit := make(chan bool)
	gameResult := make(chan error, 1)
	go func() {
		gameResult <- g.Run(quit)
	}()

	pumpResult := make(chan error, 1)
	if pump != nil {
		go func() {
			_, err := pump.Run()
			pumpResult <- err
		}()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// the end of a script is checked periodically
	scriptCheck := time.NewTicker(100 * time.Millisecond)
	defer scriptCheck.Stop()

	done := false
	for !done {
		select {
		case <-intChan:
			done = true

		case err := <-pumpResult:
			// the game carries on without audio
			if err != nil {
				logger.Logf(env, "main", "audio stopped: %v", err)
			}
			st := pump.Stats()
			logger.Logf(env, "main", "audio: %d samples, %d overflows, %d underflows", st.Pushed, st.Overflows, st.Underflows)

		case err := <-kbResult:
			if err != nil {
				logger.Logf(env, "main", "keyboard: %v", err)
			}
			done = true

		case err := <-gameResult:
			return err

		case <-scriptCheck.C:
			if script != nil && script.Done() {
				done = true
			}
		}
	}

	close(quit)
	err = <-gameResult
	if err != nil {
		return err
	}

	printInfo("%d ticks, %d attempts, %d publish errors", g.Ticks, g.Attempts, g.PublishErrors)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, g)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func playAudio(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	pollEvery := md.AddInt("poll", 0, "samples between fifo status reads (zero for preference value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("audio file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := common.environment("audio")
	if err != nil {
		return err
	}

	hw, err := openHardware(env, *common.capture)
	if err != nil {
		return err
	}
	defer hw.Close()

	src, err := audio.OpenSource(md.GetArg(0), env.Prefs.SampleRate.Get().(int))
	if err != nil {
		return err
	}
	defer src.Close()

	pump := audio.NewPump(env, hw.ch, src)
	pump.SetPollEvery(*pollEvery)

	n, err := pump.Run()
	st := pump.Stats()
	printInfo("%d samples pushed, %d polls, %d overflows, %d underflows", n, st.Polls, st.Overflows, st.Underflows)

	return err
}

func makeLevel(md *modalflag.Modes) error {
	md.NewMode()

	seed := md.AddInt64("seed", 0, "level seed (zero for a random level)")
	length := md.AddInt("length", level.MaxLength, "number of blocks in the level")
	show := md.AddBool("show", false, "print the level to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		filename, err = paths.ResourcePath("levels", paths.UniqueFilename("level", ".txt"))
		if err != nil {
			return err
		}
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *length < 1 || *length > level.MaxLength {
		return fmt.Errorf("level length must be between 1 and %d", level.MaxLength)
	}

	env, err := environment.NewEnvironment("level", nil)
	if err != nil {
		return err
	}
	if *seed != 0 {
		env.Random.Reseed(*seed)
	}

	lvl := level.Generate(env.Random, *length)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = lvl.Save(f)
	if err != nil {
		f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}

	if *show {
		fmt.Fprintln(stdout, lvl)
	}
	printInfo("level saved to %s (seed %d)", filename, lvl.Seed)

	return nil
}

func status(md *modalflag.Modes) error {
	md.NewMode()
	common := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := common.environment("status")
	if err != nil {
		return err
	}

	hw, err := openHardware(env, "")
	if err != nil {
		return err
	}
	defer hw.Close()

	st, err := hw.ch.ReadFifoStatus()
	if err != nil {
		return err
	}
	fill, err := hw.ch.ReadFifoFillLevel()
	if err != nil {
		return err
	}

	printInfo("fifo status: %s (%#02x)", st, uint32(st))
	printInfo("fifo fill level: %d", fill)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")
	uncapped := md.AddBool("uncapped", false, "run the game loop as fast as possible")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	env, err := common.environment("performance")
	if err != nil {
		return err
	}

	hw, err := openHardware(env, *common.capture)
	if err != nil {
		return err
	}
	defer hw.Close()

	// start the game whenever it is ready and jump regularly
	script := userinput.NewScript(
		userinput.Step{Ticks: 1, Buttons: userinput.Buttons{Start: true}},
		userinput.Step{Ticks: 20},
		userinput.Step{Ticks: 1, Buttons: userinput.Buttons{Action: true}},
		userinput.Step{Ticks: 10},
	)
	script.Repeat = true

	g := game.NewGame(env, hw.ch, script)
	err = g.Load(nil)
	if err != nil {
		return err
	}

	return performance.Check(stdout, prf, g, env.Prefs.TickRateHz(), *uncapped, performance.LeadTime, *duration)
}
