// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/rvsim/asm"
	"github.com/ezrec/rvsim/emulator"
)

func main() {
	var compile string
	var listing bool
	var steps int
	var input string
	var output string
	var verbose bool
	var raw bool
	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", ".s file to assemble and run")
	flag.BoolVar(&listing, "l", false, "Print the listing, do not execute")
	flag.IntVar(&steps, "n", emulator.MAX_STEPS, "Maximum ticks to run")
	flag.StringVar(&input, "i", "", "UART input ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&raw, "raw", false, "Raw terminal; keys go to the keyboard device")
	flag.Func("D", "Predefine NAME=VALUE", func(text string) error {
		name, value, ok := strings.Cut(text, "=")
		if !ok {
			value = "1"
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		logrus.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		logrus.Fatalf("%v: -c is required", os.Args[0])
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxSteps = steps

	inf, err := os.Open(compile)
	if err != nil {
		logrus.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	for name, value := range emu.Defines() {
		assembler.Predefine(name, value)
	}
	for name, value := range defines {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Parse(inf)
	if err != nil {
		logrus.Fatalf("%v: %v", compile, err)
	}

	if listing {
		fmt.Print(prog.Listing())
		return
	}

	emu.Load(prog)

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			logrus.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	switch input {
	case "":
	case "-":
		emu.Uart.Input = os.Stdin
	default:
		uartf, err := os.Open(input)
		if err != nil {
			logrus.Fatalf("%v: %v", input, err)
		}
		defer uartf.Close()
		emu.Uart.Input = uartf
	}

	err = execute(emu, raw, output == "-", out)
	if err != nil {
		if verbose {
			logrus.Debug("\n" + emu.Cpu.String())
		}
		logrus.Fatalf("%v: %v", compile, err)
	}

	if emu.ExitCode != 0 {
		os.Exit(int(emu.ExitCode))
	}
}

// execute runs the loaded program. In raw mode the terminal is restored
// before returning.
func execute(emu *emulator.Emulator, raw bool, terminal bool, out io.Writer) (err error) {
	if raw {
		var console *Console
		console, err = StartConsole(emu)
		if err != nil {
			return
		}
		defer console.Close()
		if terminal {
			out = crlfWriter{w: out}
		}
	}

	emu.SetOutput(out)
	err = emu.Run()
	return
}
