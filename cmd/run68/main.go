package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/grimdork/climate/arg"
	"github.com/grimdork/climate/human"

	"github.com/Urethramancer/gen68k/bus"
	"github.com/Urethramancer/gen68k/cpu"
	"github.com/Urethramancer/gen68k/genie"
	"github.com/Urethramancer/gen68k/script"
)

// This program loads a binary image, optionally patches it with Game Genie
// codes and runs it for a number of steps before dumping the registers.
func main() {
	opt := arg.New("run68")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "a", "address", "Load address of the image, and the initial PC.", "0x1000", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "m", "memory", "Memory size in bytes.", 1024*1024, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "n", "steps", "Maximum number of instructions to run.", 1000, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "g", "genie", "Comma-separated Game Genie codes or address:value patches.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "s", "script", "Lua script to run before stepping.", "", false, arg.VarString, nil)
	opt.SetFlag(arg.GroupDefault, "r", "reset", "Take SSP and PC from the vectors at address 0.")
	opt.SetFlag(arg.GroupDefault, "", "rom", "Load the image read-only.")
	opt.SetFlag(arg.GroupDefault, "x", "exceptions", "Turn illegal and privileged instructions into CPU exceptions.")
	opt.SetFlag(arg.GroupDefault, "t", "trace", "Log CPU diagnostics to stderr.")
	opt.SetPositional("IMAGE", "Raw big-endian binary to load.", "", true, arg.VarString)

	// RUN68_STEPS, RUN68_MEMORY and so on set defaults; the command line wins.
	opt.ParseEnvironment("run68", ",")
	opt.HelpOrFail()

	if err := run(opt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opt *arg.Options) error {
	addr, err := strconv.ParseUint(opt.GetString("address"), 0, 24)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", opt.GetString("address"), err)
	}

	image := opt.GetPosString("IMAGE")
	data, err := os.ReadFile(image)
	if err != nil {
		return err
	}

	mem := bus.New(opt.GetInt("memory"))
	if opt.GetBool("rom") {
		err = mem.LoadROM(uint32(addr), data)
	} else {
		err = mem.Load(uint32(addr), data)
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", image, err)
	}
	fmt.Printf("Loaded %s (%s) at %06X\n", image, human.UInt(uint64(len(data)), false), addr)

	patches, err := parsePatches(opt.GetString("genie"))
	if err != nil {
		return err
	}
	if err := genie.Apply(mem, patches...); err != nil {
		return err
	}
	for _, p := range patches {
		code := genie.Encode(p)
		if mod := genie.Annotate(p.Value); mod != "" {
			code += " " + mod
		}
		fmt.Printf("Patched %s (%s)\n", p, code)
	}

	c := cpu.New(mem, mem)
	if opt.GetBool("trace") {
		c.Log = log.New(os.Stderr, "[m68k] ", 0)
	}

	if opt.GetBool("reset") {
		if err := c.Reset(); err != nil {
			return err
		}
	} else {
		c.PC = uint32(addr)
		c.SSP = uint32(mem.Size()) &^ 1
	}

	if path := opt.GetString("script"); path != "" {
		h := script.New(c)
		defer h.Close()
		if err := h.RunFile(path); err != nil {
			return err
		}
	}

	n, err := execute(c, opt.GetInt("steps"), opt.GetBool("exceptions"))
	fmt.Printf("Executed %d instructions\n", n)
	dumpRegisters(c)
	return err
}

func parsePatches(list string) ([]genie.Patch, error) {
	var patches []genie.Patch
	for _, code := range strings.Split(list, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		p, err := genie.Parse(code)
		if err != nil {
			return nil, err
		}
		patches = append(patches, p...)
	}
	return patches, nil
}

// execute steps until the limit or STOP. With exceptions enabled, failing
// instructions enter the CPU's own handlers instead of ending the run.
func execute(c *cpu.CPU, steps int, exceptions bool) (int, error) {
	n := 0
	for ; n < steps && !c.Stopped(); n++ {
		err := c.Step()
		if err == nil {
			continue
		}

		if !exceptions {
			return n, err
		}

		var vector uint8
		switch {
		case errors.Is(err, cpu.ErrPrivilege):
			vector = cpu.VecPrivilegeViolation
		case errors.Is(err, cpu.ErrIllegalOperation), errors.Is(err, cpu.ErrUnimplemented):
			vector = cpu.VecIllegalInstruction
		default:
			return n, err
		}

		if err := c.Exception(vector); err != nil {
			return n, err
		}
	}
	return n, nil
}
