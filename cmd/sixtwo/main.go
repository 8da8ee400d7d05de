// Command sixtwo loads a 6502 program — raw binary or assembly source —
// and runs it on the internal/cpu core, optionally under the interactive
// inspector.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/urfave/cli.v2"

	"github.com/n-ulricksen/sixtwo/internal/assembler"
	"github.com/n-ulricksen/sixtwo/internal/cpu"
	"github.com/n-ulricksen/sixtwo/internal/inspector"
)

func main() {
	app := &cli.App{
		Name:    "sixtwo",
		Usage:   "run a 6502 program against the sixtwo emulator core",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "load",
				Aliases: []string{"l"},
				Usage:   "path to the program to run (raw binary, or source when --assemble is set)",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "load address in hex, e.g. c000",
				Value: fmt.Sprintf("%04x", cpu.DefaultLoadAddr),
			},
			&cli.UintFlag{
				Name:  "steps",
				Usage: "number of instructions to execute",
				Value: 1000,
			},
			&cli.BoolFlag{
				Name:  "assemble",
				Usage: "treat --load as 6502 assembly source rather than a raw binary",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "launch the interactive inspector instead of running to completion",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zerolog level: debug, info, warn, error, disabled",
				Value: "info",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("sixtwo")
	}
}

func run(c *cli.Context) error {
	configureLogger(c.String("log-level"))

	loadPath := c.String("load")
	if loadPath == "" {
		return cli.Exit("--load is required", 1)
	}

	addr, err := parseAddr(c.String("addr"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	code, err := loadCode(loadPath, addr, c.Bool("assemble"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	machine := cpu.New()
	if err := machine.Load(code, &addr); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("debug") {
		return inspector.Run(machine)
	}

	return runToCompletion(machine, uint32(c.Uint("steps")))
}

// configureLogger sets the global zerolog level and a human-readable
// console writer, mirroring the teacher's single process-wide log.Logger
// but upgraded to structured, level-filtered output.
func configureLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid --addr %q: %w", s, err)
	}
	return uint16(v), nil
}

func loadCode(path string, addr uint16, doAssemble bool) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !doAssemble {
		return raw, nil
	}

	lines := strings.Split(string(raw), "\n")
	tokens, err := assembler.Lex(lines)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", path, err)
	}
	code, err := assembler.Assemble(addr, tokens)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", path, err)
	}
	return code, nil
}

// runToCompletion steps the CPU n times, logging one structured event per
// instruction (mirroring the teacher's per-cycle Logger.Print in
// nes/cpu.go's Cycle()), then prints the final register/flag/cycle state.
func runToCompletion(c *cpu.CPU, n uint32) error {
	for i := uint32(0); i < n; i++ {
		pc := c.Registers.PC
		opcodeByte := c.Memory.ReadByte(pc)
		desc, ok := cpu.LookupByByte(opcodeByte)

		if err := c.Step(); err != nil {
			log.Error().Err(err).Uint16("pc", pc).Msg("halted")
			return cli.Exit(err.Error(), 1)
		}

		ev := log.Debug().Uint16("pc", pc).Uint8("a", c.Registers.A).
			Uint8("x", c.Registers.X).Uint8("y", c.Registers.Y)
		if ok {
			ev = ev.Str("mnemonic", desc.Mnemonic.String())
		}
		ev.Msg("step")
	}

	fmt.Printf("PC=%#04x A=%#02x X=%#02x Y=%#02x SP=%#02x\n",
		c.Registers.PC, c.Registers.A, c.Registers.X, c.Registers.Y, c.Registers.SP)
	fmt.Printf("flags: %+v\n", c.Flags)
	fmt.Printf("instructions=%d cycles=%d\n", c.Instructions, c.Cycles)

	return nil
}
