// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pixelclad/gopher8080/curated"
	"github.com/pixelclad/gopher8080/disassembly"
	"github.com/pixelclad/gopher8080/gui/sdlaudio"
	"github.com/pixelclad/gopher8080/gui/sdlplay"
	"github.com/pixelclad/gopher8080/hardware"
	"github.com/pixelclad/gopher8080/hardware/cpu"
	"github.com/pixelclad/gopher8080/logger"
	"github.com/pixelclad/gopher8080/romloader"
	"github.com/pixelclad/gopher8080/version"
)

// directory the sound samples are loaded from. samples are optional.
const sampleDir = "samples"

// window scale. the cabinet's display is small by modern standards.
const windowScale = 2

// verbosity is a repeatable boolean flag: each -v on the command line
// increases the trace level by one.
type verbosity int

// trace levels. each level includes the ones below it.
const (
	traceInstructions verbosity = iota + 1
	traceRegisters
	traceInstructionCount
	traceCycleCount
)

func (v *verbosity) String() string {
	return fmt.Sprintf("%d", int(*v))
}

func (v *verbosity) Set(s string) error {
	if s == "false" {
		*v = 0
		return nil
	}
	*v++
	return nil
}

// IsBoolFlag allows -v to appear without an argument.
func (v *verbosity) IsBoolFlag() bool {
	return true
}

func main() {
	os.Exit(play(os.Args[1:]))
}

func play(args []string) int {
	var verbose verbosity

	flags := flag.NewFlagSet("gopher8080", flag.ExitOnError)
	flags.Var(&verbose, "v", "increase trace verbosity (repeatable)")
	_ = flags.Parse(args)

	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gopher8080 [-v ...] <rom file>")
		return 10
	}

	// echo log entries as they arrive when tracing. a quiet run keeps the
	// log in memory and dumps it only on a fatal error
	if verbose >= traceInstructions {
		logger.SetEcho(os.Stderr)
	}

	ld := romloader.NewLoader(flags.Arg(0))
	program, err := ld.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 10
	}

	ver, _ := version.Version()
	scr, err := sdlplay.NewSdlPlay(fmt.Sprintf("%s (%s) [%s]", version.ApplicationName, ver, ld.ShortName()), windowScale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 10
	}
	defer scr.Destroy()

	mixer, err := sdlaudio.NewAudio(sampleDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 10
	}
	defer mixer.Destroy()

	inv := hardware.NewInvaders(program, mixer)
	inv.AttachRenderer(scr)
	inv.AttachInput(scr)

	if verbose >= traceInstructions {
		inv.AttachTrace(func(mc *cpu.CPU) {
			fmt.Println(disassembly.FormatResult(mc.LastResult))
			if verbose >= traceRegisters {
				fmt.Println(mc.String())
			}
		})
	}

	// #ctrlc ends the run cleanly at the next frame boundary
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = inv.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})

	if verbose >= traceInstructionCount {
		fmt.Printf("instructions: %d\n", inv.CPU.Instructions)
	}
	if verbose >= traceCycleCount {
		fmt.Printf("cycles: %d\n", inv.CPU.Cycles)
	}

	if err != nil {
		// a window close request is a clean exit
		if curated.Is(err, sdlplay.QuitEvent) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		if verbose < traceInstructions {
			logger.Write(os.Stderr)
		}
		return 10
	}

	return 0
}
