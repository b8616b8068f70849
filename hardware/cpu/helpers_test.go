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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/test"
)

// mockMem is a flat 64KiB address space. addresses in the unmapped range
// return an error.
type mockMem struct {
	internal []uint8

	unmappedFrom uint16
	unmappedTo   uint16
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) unmapped(address uint16) bool {
	return mem.unmappedTo > 0 && address >= mem.unmappedFrom && address <= mem.unmappedTo
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if mem.unmapped(address) {
		return 0, curated.Errorf("mock: %v: %#04x", cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if mem.unmapped(address) {
		return curated.Errorf("mock: %v: %#04x", cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

type testMachine struct {
	mc  *cpu.CPU
	mem *mockMem
	irq *interrupts.Interrupts
	tmr *timer.Timer
}

func newTestMachine(t *testing.T) testMachine {
	t.Helper()

	m := testMachine{
		mem: newMockMem(),
		irq: interrupts.NewInterrupts(),
	}
	m.tmr = timer.NewTimer(m.irq)

	var err error
	m.mc, err = cpu.NewCPU(nil, m.mem, m.irq, m.tmr)
	test.DemandSuccess(t, err)

	return m
}

// step the CPU and check the validity of the result.
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()

	cycles, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}

	test.ExpectEquality(t, cycles, mc.LastResult.Cycles)

	return cycles
}
