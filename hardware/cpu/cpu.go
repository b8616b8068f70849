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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/execution"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinal error patterns.
const (
	UnknownOpcode         = "cpu: unknown opcode (%#02x) at %#04x"
	UnknownExtendedOpcode = "cpu: unknown extended opcode (cb %#02x) at %#04x"
	TableMismatch         = "cpu: operation table does not agree with definitions (%s %#02x)"
)

// Interrupts is the view of the interrupt controller required by the CPU.
type Interrupts interface {
	// bits of interrupts that are both requested and enabled
	Pending() uint8

	// the highest priority pending interrupt
	Next() (interrupts.Kind, bool)

	// clear the request for the interrupt
	Acknowledge(interrupts.Kind)
}

// Divider is implemented by the timer. The STOP instruction resets the
// divider.
type Divider interface {
	ResetDIV()
}

// CPU implements the SM83 processor found in the DMG. Register logic is
// implemented by the Registers type in the registers sub-package.
type CPU struct {
	registers.Registers

	// interrupt master enable
	IME bool

	// EI enables interrupts after the instruction that follows it. the
	// value counts down at the end of every instruction and IME is set
	// when it reaches zero
	imeDelay int

	// the CPU is idling after a HALT or STOP instruction
	Halted  bool
	Stopped bool

	// the next opcode fetch will not advance the program counter
	haltBug bool

	// the number of machine cycles of the current instruction still to be
	// waited for by Cycle()
	remaining int

	mem cpubus.Memory
	irq Interrupts
	div Divider

	defs     *instructions.Definitions
	primary  [256]operation
	extended [256]operation

	// trace permission for logging every executed opcode
	trace logger.Permission

	// last result. the address field is the address of the opcode or the
	// prefix of an extended opcode
	LastResult execution.Result

	// the error that stopped the CPU. requires a Reset()
	Killed error
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// prefs argument can be nil, in which case tracing is never enabled.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory, irq Interrupts, div Divider) (*CPU, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}

	mc := &CPU{
		Registers: registers.NewRegisters(),
		mem:       mem,
		irq:       irq,
		div:       div,
		defs:      defs,
		primary:   primaryOperations(),
		extended:  extendedOperations(),
	}

	mc.trace = logger.PermissionFunc(func() bool {
		return prefs != nil && prefs.Trace.Get().(bool)
	})

	for i := range mc.primary {
		defn := mc.defs.Primary[i]
		if defn != nil && defn.IsPrefix() {
			continue
		}
		if (defn == nil) != (mc.primary[i] == nil) {
			return nil, curated.Errorf(TableMismatch, "primary", i)
		}
	}
	for i := range mc.extended {
		if (mc.defs.Extended[i] == nil) != (mc.extended[i] == nil) {
			return nil, curated.Errorf(TableMismatch, "extended", i)
		}
	}

	mc.Reset()

	return mc, nil
}

func (mc *CPU) String() string {
	ime := "di"
	if mc.IME {
		ime = "ei"
	}
	return fmt.Sprintf("%s %s", mc.Registers, ime)
}

// Reset reinitialises all registers and returns the CPU to its power-on
// state.
func (mc *CPU) Reset() {
	mc.Registers.Reset()
	mc.LastResult.Reset()
	mc.IME = false
	mc.imeDelay = 0
	mc.Halted = false
	mc.Stopped = false
	mc.haltBug = false
	mc.remaining = 0
	mc.Killed = nil
}

// AtBoundary returns true if there are no cycles of the most recent
// instruction still to be waited for by Cycle().
func (mc *CPU) AtBoundary() bool {
	return mc.remaining == 0
}

// Cycle advances the CPU by one machine cycle. The next instruction is
// executed when there are no cycles of the previous instruction remaining.
func (mc *CPU) Cycle() error {
	if mc.remaining > 0 {
		mc.remaining--
		return nil
	}

	cycles, err := mc.Step()
	if err != nil {
		return err
	}
	mc.remaining = cycles - 1

	return nil
}

// Step executes the next instruction, dispatches a pending interrupt or idles
// for one cycle if the CPU is halted or stopped. Returns the number of machine
// cycles taken.
//
// Any error returned is fatal and the CPU will refuse to step until it is
// Reset().
func (mc *CPU) Step() (int, error) {
	if mc.Killed != nil {
		return 0, mc.Killed
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.Halted || mc.Stopped {
		if mc.irq.Pending() == 0 {
			mc.LastResult.Kind = execution.Idle
			mc.LastResult.Cycles = execution.IdleCycles
			mc.LastResult.Final = true
			return mc.LastResult.Cycles, nil
		}
		mc.Halted = false
		mc.Stopped = false
	}

	if mc.IME && mc.irq.Pending() != 0 {
		return mc.dispatch()
	}

	opcode, err := mc.fetch()
	if err != nil {
		return mc.kill(err)
	}

	defn := mc.defs.Primary[opcode]
	op := mc.primary[opcode]

	if defn == nil {
		return mc.kill(curated.Errorf(UnknownOpcode, opcode, mc.LastResult.Address))
	}

	if defn.IsPrefix() {
		opcode, err = mc.fetch()
		if err != nil {
			return mc.kill(err)
		}
		defn = mc.defs.Extended[opcode]
		op = mc.extended[opcode]
		if defn == nil {
			return mc.kill(curated.Errorf(UnknownExtendedOpcode, opcode, mc.LastResult.Address))
		}
	}

	mc.LastResult.Defn = defn

	taken, err := op(mc)
	if err != nil {
		return mc.kill(err)
	}

	if taken {
		mc.LastResult.Cycles = defn.BranchCycles
	} else {
		mc.LastResult.Cycles = defn.Cycles
	}

	if mc.imeDelay > 0 {
		mc.imeDelay--
		if mc.imeDelay == 0 {
			mc.IME = true
		}
	}

	mc.LastResult.Final = true
	logger.Log(mc.trace, "cpu", mc.LastResult)

	return mc.LastResult.Cycles, nil
}

// dispatch the highest priority pending interrupt to its handler.
func (mc *CPU) dispatch() (int, error) {
	k, ok := mc.irq.Next()
	if !ok {
		return mc.kill(curated.Errorf("cpu: interrupt dispatch with no pending interrupt"))
	}

	mc.irq.Acknowledge(k)
	mc.IME = false

	// a HALT that triggered the halt bug is returned to by the handler
	ret := mc.PC.Address()
	if mc.haltBug {
		mc.haltBug = false
		ret--
	}

	if err := mc.push(ret); err != nil {
		return mc.kill(err)
	}
	mc.PC.Load(cpubus.InterruptVector + uint16(k)*cpubus.InterruptVectorStride)

	mc.LastResult.Kind = execution.Dispatch
	mc.LastResult.Cycles = execution.DispatchCycles
	mc.LastResult.Final = true
	logger.Logf(mc.trace, "cpu", "%v interrupt", k)

	return mc.LastResult.Cycles, nil
}

func (mc *CPU) kill(err error) (int, error) {
	mc.Killed = err
	return 0, err
}

// halt is called by the HALT instruction. if interrupts are disabled and an
// interrupt is already pending the CPU does not halt and the next opcode is
// read twice.
func (mc *CPU) halt() {
	if !mc.IME && mc.irq.Pending() != 0 {
		mc.haltBug = true
		return
	}
	mc.Halted = true
}

// stop is called by the STOP instruction.
func (mc *CPU) stop() {
	mc.div.ResetDIV()
	mc.Stopped = true
}

// read a single byte from memory. all access errors are fatal.
func (mc *CPU) read(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write(address uint16, data uint8) error {
	return mc.mem.Write(address, data)
}

// fetch the byte at the program counter and advance the program counter.
func (mc *CPU) fetch() (uint8, error) {
	v, err := mc.read(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	if mc.haltBug {
		mc.haltBug = false
		mc.LastResult.CPUBug = execution.HaltBug
	} else {
		mc.PC.Add(1)
		mc.LastResult.ByteCount++
	}

	return v, nil
}

// imm8 fetches an 8-bit operand.
func (mc *CPU) imm8() (uint8, error) {
	v, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	mc.LastResult.Operand = uint16(v)
	return v, nil
}

// imm16 fetches a 16-bit little-endian operand.
func (mc *CPU) imm16() (uint16, error) {
	lo, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	v := uint16(hi)<<8 | uint16(lo)
	mc.LastResult.Operand = v
	return v, nil
}

// push a 16-bit value to the stack. the high byte is written first.
func (mc *CPU) push(v uint16) error {
	mc.SP.Add(-1)
	if err := mc.write(mc.SP.Address(), uint8(v>>8)); err != nil {
		return err
	}
	mc.SP.Add(-1)
	return mc.write(mc.SP.Address(), uint8(v))
}

func (mc *CPU) pop() (uint16, error) {
	lo, err := mc.read(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(1)
	hi, err := mc.read(mc.SP.Address())
	if err != nil {
		return 0, err
	}
	mc.SP.Add(1)
	return uint16(hi)<<8 | uint16(lo), nil
}

// r8 returns the 8-bit register selected by the three bit index used in
// opcodes: B, C, D, E, H, L, (HL), A.
func (mc *CPU) r8(idx uint8) (uint8, error) {
	switch idx {
	case 0:
		return mc.BC.Hi(), nil
	case 1:
		return mc.BC.Lo(), nil
	case 2:
		return mc.DE.Hi(), nil
	case 3:
		return mc.DE.Lo(), nil
	case 4:
		return mc.HL.Hi(), nil
	case 5:
		return mc.HL.Lo(), nil
	case 6:
		return mc.read(mc.HL.Word())
	}
	return mc.A(), nil
}

func (mc *CPU) setR8(idx uint8, v uint8) error {
	switch idx {
	case 0:
		mc.BC.SetHi(v)
	case 1:
		mc.BC.SetLo(v)
	case 2:
		mc.DE.SetHi(v)
	case 3:
		mc.DE.SetLo(v)
	case 4:
		mc.HL.SetHi(v)
	case 5:
		mc.HL.SetLo(v)
	case 6:
		return mc.write(mc.HL.Word(), v)
	default:
		mc.SetA(v)
	}
	return nil
}

// rr returns the 16-bit register selected by the two bit index used in
// opcodes: BC, DE, HL, SP.
func (mc *CPU) rr(idx uint8) uint16 {
	switch idx {
	case 0:
		return mc.BC.Word()
	case 1:
		return mc.DE.Word()
	case 2:
		return mc.HL.Word()
	}
	return mc.SP.Address()
}

func (mc *CPU) setRR(idx uint8, v uint16) {
	switch idx {
	case 0:
		mc.BC.Load(v)
	case 1:
		mc.DE.Load(v)
	case 2:
		mc.HL.Load(v)
	default:
		mc.SP.Load(v)
	}
}

// stackPair returns the register pair used by PUSH and POP: BC, DE, HL, AF.
func (mc *CPU) stackPair(idx uint8) *registers.Pair {
	switch idx {
	case 0:
		return &mc.BC
	case 1:
		return &mc.DE
	case 2:
		return &mc.HL
	}
	return &mc.AF
}

// condition returns the state of the condition selected by the two bit index
// used in opcodes: NZ, Z, NC, C.
func (mc *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return !mc.Flag(registers.Zero)
	case 1:
		return mc.Flag(registers.Zero)
	case 2:
		return !mc.Flag(registers.Carry)
	}
	return mc.Flag(registers.Carry)
}
