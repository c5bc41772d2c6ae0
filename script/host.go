// Package script runs Lua setup and assertion scripts against a CPU.
//
// Registers and memory are exposed as global functions:
//
//	d(n) set_d(n, v) a(n) set_a(n, v)
//	pc() set_pc(v) sr() set_sr(v)
//	peek(addr [, size]) poke(addr, v [, size])
//	step([n]) stopped() resume() reset()
//
// Sizes are "b", "w" or "l", defaulting to "w". A7 is the active stack
// pointer. step runs up to n instructions, stopping early on STOP, and
// returns the number executed; a failing instruction raises a Lua error.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/Urethramancer/gen68k/cpu"
)

// Host is a Lua state bound to one CPU.
type Host struct {
	L   *lua.LState
	cpu *cpu.CPU
}

// New creates a Lua state with the standard libraries and the CPU functions.
func New(c *cpu.CPU) *Host {
	h := &Host{L: lua.NewState(), cpu: c}
	funcs := map[string]lua.LGFunction{
		"d":       h.d,
		"set_d":   h.setD,
		"a":       h.a,
		"set_a":   h.setA,
		"pc":      h.pc,
		"set_pc":  h.setPC,
		"sr":      h.sr,
		"set_sr":  h.setSR,
		"peek":    h.peek,
		"poke":    h.poke,
		"step":    h.step,
		"stopped": h.stopped,
		"resume":  h.resume,
		"reset":   h.reset,
	}
	for name, fn := range funcs {
		h.L.SetGlobal(name, h.L.NewFunction(fn))
	}
	return h
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.L.Close()
}

// Run executes Lua source.
func (h *Host) Run(source string) error {
	if err := h.L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile executes a Lua file.
func (h *Host) RunFile(path string) error {
	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

func (h *Host) register(L *lua.LState) uint16 {
	n := L.CheckInt(1)
	if n < 0 || n > 7 {
		L.ArgError(1, "register must be 0-7")
	}
	return uint16(n)
}

func checkValue(L *lua.LState, n int) uint32 {
	return uint32(L.CheckInt64(n))
}

func checkSize(L *lua.LState, n int) cpu.Size {
	switch L.OptString(n, "w") {
	case "b":
		return cpu.SizeByte
	case "w":
		return cpu.SizeWord
	case "l":
		return cpu.SizeLong
	}
	L.ArgError(n, `size must be "b", "w" or "l"`)
	return cpu.SizeInvalid
}

func push(L *lua.LState, v uint32) int {
	L.Push(lua.LNumber(v))
	return 1
}

func (h *Host) d(L *lua.LState) int {
	return push(L, h.cpu.D[h.register(L)])
}

func (h *Host) setD(L *lua.LState) int {
	h.cpu.D[h.register(L)] = checkValue(L, 2)
	return 0
}

func (h *Host) a(L *lua.LState) int {
	return push(L, h.cpu.Addr(h.register(L)))
}

func (h *Host) setA(L *lua.LState) int {
	h.cpu.SetAddr(h.register(L), checkValue(L, 2))
	return 0
}

func (h *Host) pc(L *lua.LState) int {
	return push(L, h.cpu.PC)
}

func (h *Host) setPC(L *lua.LState) int {
	h.cpu.PC = checkValue(L, 1)
	return 0
}

func (h *Host) sr(L *lua.LState) int {
	return push(L, uint32(h.cpu.SR))
}

func (h *Host) setSR(L *lua.LState) int {
	h.cpu.SetSR(uint16(checkValue(L, 1)))
	return 0
}

func (h *Host) peek(L *lua.LState) int {
	addr := checkValue(L, 1)
	return push(L, h.cpu.Bus().Read(addr, checkSize(L, 2)))
}

func (h *Host) poke(L *lua.LState) int {
	addr, v := checkValue(L, 1), checkValue(L, 2)
	h.cpu.Bus().Write(addr, v, checkSize(L, 3))
	return 0
}

func (h *Host) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	done := 0
	for ; done < n && !h.cpu.Stopped(); done++ {
		if err := h.cpu.Step(); err != nil {
			L.RaiseError("%v", err)
		}
	}
	L.Push(lua.LNumber(done))
	return 1
}

func (h *Host) stopped(L *lua.LState) int {
	L.Push(lua.LBool(h.cpu.Stopped()))
	return 1
}

func (h *Host) resume(*lua.LState) int {
	h.cpu.Resume()
	return 0
}

func (h *Host) reset(L *lua.LState) int {
	if err := h.cpu.Reset(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
