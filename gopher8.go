// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/beep"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the playmode package
	// provides a mode specific handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	//
	// If the GUI framework does not require this sort of thread safety then
	// there is no need for the Service() function to do anything.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var current GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if current != nil {
				current.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if current != nil {
				current.Destroy(os.Stderr)
			}

			current, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer returned as a GuiCreator is not a nil
				// interface. make sure current is properly nil
				current = nil
			} else {
				sync.creation <- current
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if current != nil {
					current.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if current != nil {
				current.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "RUN":
		err = run(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to all modes.
type commonFlags struct {
	log    *bool
	prefs  *string
	wav    *string
	beep   *string
	tone   *float64
	sticky *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:  md.AddString("prefs", "", "preferences for this run. eg. \"chip8.speed::20; chip8.quirks.wraporigin::true\""),
		wav:    md.AddString("wav", "", "record audio to wav file"),
		beep:   md.AddString("beep", "", "use a wav or mp3 file for the tone"),
		tone:   md.AddFloat64("tone", beep.DefaultFrequency, "frequency of the tone in Hz"),
		sticky: md.AddBool("sticky", false, "keys are held until released"),
	}
}

// prepare the interpreter with the ROM named in the first argument.
func setup(md *modalflag.Modes, cf commonFlags) (*hardware.Chip8, romloader.Loader, error) {
	var ld romloader.Loader

	if *cf.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, ld, fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return nil, ld, fmt.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*cf.prefs)

	p, err := preferences.NewPreferences("")
	if err != nil {
		return nil, ld, err
	}

	c8, err := hardware.NewChip8(p)
	if err != nil {
		return nil, ld, err
	}

	ld = romloader.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return nil, ld, err
	}

	err = c8.AttachROM(ld.Data)
	if err != nil {
		return nil, ld, err
	}

	return c8, ld, nil
}

// the tone used by all audio mixers. each mixer should use a clone of the
// generator.
func newTone(cf commonFlags) (*beep.Generator, error) {
	if *cf.beep != "" {
		return beep.LoadSample(*cf.beep, beep.DefaultVolume)
	}
	return beep.NewSquareWave(*cf.tone, beep.DefaultVolume)
}

// add wavwriter mixer if wav argument has been specified.
func addWavWriter(mixers gui.AudioMixers, cf commonFlags, gen *beep.Generator) (gui.AudioMixers, error) {
	if *cf.wav == "" {
		return mixers, nil
	}
	aw, err := wavwriter.New(*cf.wav, gen.Clone())
	if err != nil {
		return mixers, err
	}
	return append(mixers, aw), nil
}

// open the audio device. failure to open the device is not fatal.
//
// MUST ONLY be called from the #mainthread.
func openAudio(gen *beep.Generator) *sdlaudio.Audio {
	aud, err := sdlaudio.NewAudio(gen.Clone())
	if err != nil {
		logger.Logf(logger.Allow, "gopher8", "no audio: %v", err)
		return nil
	}
	return aud
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	scale := md.AddInt("scale", sdlplay.DefaultScale, "size of a lo-res pixel in screen pixels")
	useGL := md.AddBool("gl", false, "draw the display with OpenGL")
	mute := md.AddBool("mute", false, "do not play audio")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	c8, ld, err := setup(md, cf)
	if err != nil {
		return err
	}

	gen, err := newTone(cf)
	if err != nil {
		return err
	}

	var mixers gui.AudioMixers
	mixers, err = addWavWriter(mixers, cf, gen)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	// create gui and audio device
	var aud *sdlaudio.Audio
	sync.creator <- func() (GuiCreator, error) {
		scr, err := sdlplay.NewSdlPlay(*useGL)
		if err != nil {
			return nil, err
		}
		if !*mute {
			aud = openAudio(gen)
		}
		return scr, nil
	}

	// wait for creator result
	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	if aud != nil {
		mixers = append(mixers, aud)
	}

	// turn off fallback ctrl-c handling. playmode has its own handler
	sync.state <- stateRequest{req: reqNoIntSig}

	err = scr.SetFeature(gui.ReqSetTitle, ld.ShortName())
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqSetScale, *scale)
	if err != nil {
		return err
	}

	return playmode.Play(c8, scr, mixers, playmode.Options{Sticky: *cf.sticky})
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	mute := md.AddBool("mute", false, "do not play audio")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	c8, ld, err := setup(md, cf)
	if err != nil {
		return err
	}

	gen, err := newTone(cf)
	if err != nil {
		return err
	}

	var mixers gui.AudioMixers
	mixers, err = addWavWriter(mixers, cf, gen)
	if err != nil {
		return err
	}

	var aud *sdlaudio.Audio
	sync.creator <- func() (GuiCreator, error) {
		trm, err := terminal.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
		if !*mute {
			aud = openAudio(gen)
		}
		return trm, nil
	}

	var trm *terminal.Terminal
	select {
	case g := <-sync.creation:
		trm = g.(*terminal.Terminal)
	case err := <-sync.creationError:
		return err
	}

	if aud != nil {
		mixers = append(mixers, aud)
	}

	// ctrl-c arrives as an input event while the terminal is in raw mode. the
	// fallback handler remains for interrupt signals from elsewhere

	err = trm.SetFeature(gui.ReqSetTitle, ld.ShortName())
	if err != nil {
		return err
	}

	return playmode.Play(c8, trm, mixers, playmode.Options{Sticky: *cf.sticky})
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	keys := md.AddString("keys", "", "scripted key presses as frame:key pairs. eg. \"10:5,20:A\"")
	memvizFile := md.AddString("memviz", "", "write a DOT graph of the interpreter to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 0 {
		return fmt.Errorf("frame count must not be negative: %d", *frames)
	}

	script, err := parseKeyScript(*keys)
	if err != nil {
		return err
	}

	c8, _, err := setup(md, cf)
	if err != nil {
		return err
	}

	var mixers gui.AudioMixers
	if *cf.wav != "" {
		gen, err := newTone(cf)
		if err != nil {
			return err
		}
		mixers, err = addWavWriter(mixers, cf, gen)
		if err != nil {
			return err
		}
	}

	// the display is printed even if the emulation fails
	runErr := runHeadless(c8, *frames, script, *cf.sticky, mixers)
	fmt.Fprintln(output, c8.Screen())
	fmt.Fprintln(output, c8.String())

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, c8)
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return runErr
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run performance with no FPS cap")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	c8, _, err := setup(md, cf)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, c8, *uncapped, *duration)
}
