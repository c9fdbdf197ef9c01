// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/ezrec/regvm/config"
	"github.com/ezrec/regvm/cpu"
	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/translate"
)

func main() {
	err := run(os.Args[0], os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// run executes the command line args, writing the program result (or the
// disassembly) to stdout.
func run(name string, args []string, stdout io.Writer) (err error) {
	var conf string
	var image string
	var maxSteps int
	var verbose bool
	var disasm bool
	var snapshot string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&conf, "c", "", ".toml or .star configuration file")
	fs.StringVar(&image, "i", "", "Program image (default: built-in counting program)")
	fs.IntVar(&maxSteps, "n", 0, "Maximum instructions to execute, 0 for no limit")
	fs.BoolVar(&verbose, "v", false, "Verbose mode")
	fs.BoolVar(&disasm, "d", false, "Disassemble the image, do not execute")
	fs.StringVar(&snapshot, "s", "", "Write a CBOR snapshot of the final state")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	if fs.NArg() != 0 {
		err = fmt.Errorf("%v: Unknown arguments: %v", name, fs.Args())
		return
	}

	cfg := config.Default()
	if len(conf) != 0 {
		cfg, err = config.Load(conf, emulator.Defines())
		if err != nil {
			return
		}
	}

	// Command line overrides the configuration file.
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "i":
			cfg.Image = image
		case "n":
			cfg.MaxSteps = maxSteps
		case "v":
			cfg.Verbose = verbose
		case "s":
			cfg.Snapshot = snapshot
		}
	})

	err = cfg.Validate()
	if err != nil {
		return
	}

	verbosity := 0
	if cfg.Verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)

	if len(cfg.Locale) != 0 {
		translate.SetLanguage(cfg.Locale)
	}

	var bin []byte
	if len(cfg.Image) != 0 {
		bin, err = os.ReadFile(cfg.Image)
		if err != nil {
			return
		}
	} else {
		bin = emulator.ReferenceProgram().Binary()
	}

	emu := emulator.NewEmulator(cfg.MemorySize)
	err = cfg.Apply(emu)
	if err != nil {
		return
	}

	err = emu.Load(bin)
	if err != nil {
		err = fmt.Errorf("%v: %w", cfg.Image, err)
		return
	}

	if disasm {
		return cpu.Listing(stdout, emu.Cpu.Memory, 0, uint32(len(bin)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = emu.Run(ctx)
	stop()

	if len(cfg.Snapshot) != 0 {
		data, serr := emulator.MarshalSnapshot(emu.Snapshot(err))
		if serr == nil {
			serr = os.WriteFile(cfg.Snapshot, data, 0o644)
		}
		if serr != nil {
			log.Printf("%v: %v", cfg.Snapshot, serr)
		}
	}

	if err != nil {
		if cfg.Verbose {
			log.Print(emu.Cpu.String())
		}
		return
	}

	_, err = fmt.Fprintln(stdout, emu.Result())
	return
}
