// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/modalflag"
	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/statsview"
	"github.com/jetsetilly/gopherdmg/version"
	"golang.org/x/term"
)

// exit values returned by launch()
const (
	exitOK    = 0
	exitFatal = 10
	exitMode  = 20
)

// the interval between each call to Advance() in the pacing loop. about the
// length of one DMG video frame
const pace = 16740 * time.Microsecond

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "MEMMAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFatal
	}

	switch md.Mode() {
	case "RUN":
		return run(ctx, md)

	case "LIST":
		err = list(md)

	case "MEMMAP":
		io.WriteString(md.Output, memorymap.Summary())

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitOK
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	romDir := md.AddString("romdir", ".", "directory containing cartridge images")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	l, err := cartridgeloader.NewDirectory("", *romDir).List()
	if err != nil {
		return err
	}

	for _, n := range l {
		fmt.Fprintln(md.Output, n)
	}

	return nil
}

// run loads the boot image and the cartridge and paces the emulation
// against the wall clock. The run ends when the context is cancelled or
// when the duration has elapsed. A fatal emulation error ends the run with
// the exitFatal value.
func run(ctx context.Context, md *modalflag.Modes) int {
	md.NewMode()

	boot := md.AddString("boot", "dmg_boot.bin", "boot image file")
	romDir := md.AddString("romdir", ".", "directory containing cartridge images")
	duration := md.AddDuration("duration", 0, "length of run (zero to run until interrupted)")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server")
	mv := md.AddBool("memviz", false, "write a graphviz dump of the machine state at the end of the run")
	echo := md.AddBool("echo", false, "echo log to stdout")
	prefsArg := md.AddString("prefs", "", "preferences for this run (eg. \"dmg.trace::true; dmg.quantum::256\")")

	md.AdditionalHelp(fmt.Sprintf("cartridge file extensions: %s", strings.Join(cartridgeloader.FileExtensions, ", ")))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitFatal
	}

	if *echo {
		if f, ok := md.Output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logger.SetEcho(logger.NewColorizer(md.Output))
		} else {
			logger.SetEcho(md.Output)
		}
		defer logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			logger.Logf(logger.Allow, "launcher", "statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	if len(md.RemainingArgs()) != 1 {
		return fatal(md, fmt.Errorf("one cartridge required for %s mode", md))
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	pr, err := preferences.NewPreferences()
	if *prefsArg != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "launcher", "unused preferences: %s", unused)
		}
	}
	if err != nil {
		return fatal(md, err)
	}

	dmg, err := hardware.NewDMG(pr, cartridgeloader.NewDirectory(*boot, *romDir))
	if err != nil {
		return fatal(md, err)
	}

	err = dmg.LoadCartridge(md.GetArg(0))
	if err != nil {
		return fatal(md, err)
	}

	dmg.Start()

	err = pacing(ctx, dmg, *duration)

	if *mv {
		if verr := dump(dmg); verr != nil {
			logger.Log(logger.Allow, "launcher", verr)
		}
	}

	if err != nil {
		return fatal(md, err)
	}

	logger.Logf(logger.Allow, "launcher", "ended after %d cycles", dmg.Cycles)

	return exitOK
}

// pacing measures the elapsed time at every interval and advances the
// emulation by that amount.
func pacing(ctx context.Context, dmg *hardware.DMG, duration time.Duration) error {
	tck := time.NewTicker(pace)
	defer tck.Stop()

	var end <-chan time.Time
	if duration > 0 {
		end = time.After(duration)
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-end:
			return nil
		case now := <-tck.C:
			_, err := dmg.Advance(now.Sub(last))
			if err != nil {
				return err
			}
			last = now
		}
	}
}

// dump writes the state of the CPU and its peripherals to a uniquely named
// graphviz file in the working directory.
func dump(dmg *hardware.DMG) error {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dmg.Cart.Header.Title))

	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, &dmg.CPU.Registers, dmg.Timer, dmg.Interrupts, &dmg.Cart.Header)
	logger.Logf(logger.Allow, "launcher", "machine state written to %s", fn)

	return nil
}

func fatal(md *modalflag.Modes, err error) int {
	logger.Log(logger.Allow, "launcher", err)
	fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md.String(), err)
	return exitFatal
}
