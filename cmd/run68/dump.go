package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/grimdork/climate/cfmt"
	"github.com/grimdork/climate/env"
	"golang.org/x/term"

	"github.com/Urethramancer/gen68k/cpu"
)

var flagNames = []struct {
	bit  uint16
	name byte
}{
	{cpu.SRX, 'X'},
	{cpu.SRN, 'N'},
	{cpu.SRZ, 'Z'},
	{cpu.SRV, 'V'},
	{cpu.SRC, 'C'},
}

// colour is true when stdout is a terminal that understands escape codes.
func colour() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && env.Get("TERM", "dumb") != "dumb"
}

func flags(c *cpu.CPU) string {
	var sb strings.Builder
	for _, f := range flagNames {
		if c.Flag(f.bit) {
			sb.WriteByte(f.name)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// dumpRegisters prints the programmer-visible state.
func dumpRegisters(c *cpu.CPU) {
	mode := "user"
	if c.Supervisor() {
		mode = "supervisor"
	}
	if c.Stopped() {
		mode += ", stopped"
	}

	if !colour() {
		for i := uint16(0); i < 8; i++ {
			fmt.Printf("D%d=%08X  A%d=%08X\n", i, c.D[i], i, c.Addr(i))
		}
		fmt.Printf("PC=%08X  SR=%04X  %s  USP=%08X  SSP=%08X  (%s)\n", c.PC, c.SR, flags(c), c.USP, c.SSP, mode)
		return
	}

	for i := uint16(0); i < 8; i++ {
		// cfmt ends each call with a newline and reads letters after % as a colour name.
		cfmt.Printf("%cyan%s%reset=%08X  %cyan%s%reset=%08X", fmt.Sprintf("D%d", i), c.D[i], fmt.Sprintf("A%d", i), c.Addr(i))
	}
	cfmt.Printf("%yellow%s%reset=%08X  %yellow%s%reset=%04X  %green%s%reset  USP=%08X  SSP=%08X  (%s)",
		"PC", c.PC, "SR", c.SR, flags(c), c.USP, c.SSP, mode)
}
