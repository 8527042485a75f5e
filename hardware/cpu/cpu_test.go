// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers/assert"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

// the machine the CPU is tested against. a full set of peripherals but no
// pacing and no pixel renderers.
type testMachine struct {
	mem *memory.Memory
	dsp *display.Display
	tmr *timer.Timers
	key *keypad.Keypad
	mc  *cpu.CPU
}

type stubTick struct{}

func (tk stubTick) InstructionCount() uint64 {
	return 0
}

func newTestMachine() *testMachine {
	tm := &testMachine{
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		tmr: timer.NewTimers(),
		key: keypad.NewKeypad(),
	}

	rnd := random.NewRandom(stubTick{})
	rnd.ZeroSeed = true

	tm.mc = cpu.NewCPU(tm.mem, tm.dsp, tm.tmr, tm.key, rnd)
	tm.mc.Reset()

	return tm
}

// putInstructions writes instruction words to memory, big-endian, returning
// the address after the last word.
func (tm *testMachine) putInstructions(origin uint16, words ...uint16) uint16 {
	for i, w := range words {
		a := origin + uint16(i*2)
		tm.mem.Write(a, uint8(w>>8))
		tm.mem.Write(a+1, uint8(w))
	}
	return origin + uint16(len(words)*2)
}

func (tm *testMachine) step(t *testing.T) {
	t.Helper()
	err := tm.mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = tm.mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func TestFetch(t *testing.T) {
	tm := newTestMachine()

	// the smallest possible program. one load-immediate fetched from the
	// program origin
	tm.putInstructions(0x200, 0x600a)
	tm.step(t)

	assert.Assert(t, tm.mc.V[0], 0x0a)
	assert.Assert(t, tm.mc.PC, 0x202)

	test.Equate(t, tm.mc.LastResult.Address, 0x0200)
	test.Equate(t, tm.mc.LastResult.Opcode, 0x600a)
	test.Equate(t, int(tm.mc.LastResult.Defn.Operator), int(instructions.LdImm))
	test.Equate(t, tm.mc.LastResult.Fields.X, 0)
	test.Equate(t, tm.mc.LastResult.Fields.NN, 0x0a)
}

func TestJump(t *testing.T) {
	// representative addresses, including both extremes of the address
	// field
	for _, nnn := range []uint16{0x000, 0x001, 0x2ee, 0x550, 0xfff} {
		tm := newTestMachine()
		tm.putInstructions(0x200, 0x1000|nnn)
		tm.step(t)

		assert.Assert(t, tm.mc.PC, int(nnn))

		// nothing but the program counter moves
		for i := range tm.mc.V {
			assert.Assert(t, tm.mc.V[i], 0)
		}
		assert.Assert(t, tm.mc.I, 0)
	}
}

func TestJumpV0(t *testing.T) {
	tm := newTestMachine()
	tm.putInstructions(0x200, 0x6005, 0xb300)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, 0x305)
}

func TestAddImmediate(t *testing.T) {
	type tst struct {
		start  uint8
		imm    uint16
		result int
	}

	for _, c := range []tst{
		{0x00, 0x01, 0x01},
		{0x0f, 0xf0, 0xff},
		{0xff, 0x01, 0x00},
		{0xff, 0xff, 0xfe},
		{0x80, 0x80, 0x00},
	} {
		tm := newTestMachine()

		// V0 is deliberately saturated and VF deliberately dirtied. the
		// immediate add is unconditional and must not react to either
		tm.putInstructions(0x200,
			0x60ff,
			0x6faa,
			0x6100|uint16(c.start),
			0x7100|c.imm,
		)
		for i := 0; i < 4; i++ {
			tm.step(t)
		}

		assert.Assert(t, tm.mc.V[1], c.result)
		assert.Assert(t, tm.mc.V[0], 0xff)
		assert.Assert(t, tm.mc.V[0xf], 0xaa)
	}
}

func TestCallReturn(t *testing.T) {
	tm := newTestMachine()
	tm.putInstructions(0x200, 0x2300)
	tm.putInstructions(0x300, 0x00ee)

	tm.step(t) // CALL
	assert.Assert(t, tm.mc.PC, 0x300)
	test.Equate(t, len(tm.mc.Stack), 1)
	test.Equate(t, tm.mc.Stack[0], 0x0202)

	tm.step(t) // RET
	assert.Assert(t, tm.mc.PC, 0x202)
	test.Equate(t, len(tm.mc.Stack), 0)
}

func TestCallStackGrowth(t *testing.T) {
	tm := newTestMachine()

	// a chain of twenty calls, each one to the address immediately after
	// the call site. nesting deeper than the initial stack allocation is
	// not an error
	for i := 0; i < 20; i++ {
		a := 0x200 + uint16(i*2)
		tm.putInstructions(a, 0x2000|(a+2))
	}
	for i := 0; i < 20; i++ {
		tm.step(t)
	}

	test.Equate(t, len(tm.mc.Stack), 20)
	assert.Assert(t, tm.mc.PC, 0x228)
}

func TestReturnUnderflow(t *testing.T) {
	tm := newTestMachine()
	tm.putInstructions(0x200, 0x00ee)

	err := tm.mc.ExecuteInstruction()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))

	// the program counter has already moved past the faulty instruction
	assert.Assert(t, tm.mc.PC, 0x202)
}

func TestSkips(t *testing.T) {
	tm := newTestMachine()

	origin := tm.putInstructions(0x200, 0x6142) // V1=0x42
	tm.step(t)

	// SE immediate, equal. skips
	tm.putInstructions(origin, 0x3142)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
	origin += 4

	// SE immediate, unequal. no skip
	tm.putInstructions(origin, 0x3143)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+2)
	origin += 2

	// SNE immediate, unequal. skips
	tm.putInstructions(origin, 0x4143)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
	origin += 4

	// SNE immediate, equal. no skip
	tm.putInstructions(origin, 0x4142)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+2)
	origin += 2

	// V2=0x42 and the register forms
	origin = tm.putInstructions(origin, 0x6242)
	tm.step(t)

	// SE register, equal. skips
	tm.putInstructions(origin, 0x5120)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
	origin += 4

	// SNE register, equal. no skip
	tm.putInstructions(origin, 0x9120)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+2)
	origin += 2

	// SNE register, unequal. skips
	origin = tm.putInstructions(origin, 0x6243)
	tm.step(t)
	tm.putInstructions(origin, 0x9120)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
}

func TestLogicalOperators(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200,
		0x610c, 0x620a, 0x8121, // OR
		0x610c, 0x8122, // AND
		0x610c, 0x8123, // XOR
	)

	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x0e)

	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x08)

	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x06)

	// the logical group leaves the flag register alone
	assert.Assert(t, tm.mc.V[0xf], 0)
}

func TestArithmeticFlags(t *testing.T) {
	tm := newTestMachine()

	// ADD with carry
	tm.putInstructions(0x200, 0x61fe, 0x6203, 0x8124)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x01)
	assert.Assert(t, tm.mc.V[0xf], 1)

	// ADD without carry. the flag is written back to zero
	origin := tm.putInstructions(0x206, 0x6101, 0x8124)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x04)
	assert.Assert(t, tm.mc.V[0xf], 0)

	// SUB with no borrow
	origin = tm.putInstructions(origin, 0x6107, 0x6205, 0x8125)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x02)
	assert.Assert(t, tm.mc.V[0xf], 1)

	// SUB with borrow
	origin = tm.putInstructions(origin, 0x6105, 0x6207, 0x8125)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0xfe)
	assert.Assert(t, tm.mc.V[0xf], 0)

	// SUBN with no borrow
	origin = tm.putInstructions(origin, 0x6105, 0x6207, 0x8127)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0x02)
	assert.Assert(t, tm.mc.V[0xf], 1)

	// SUBN with borrow
	origin = tm.putInstructions(origin, 0x6107, 0x6205, 0x8127)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[1], 0xfe)
	assert.Assert(t, tm.mc.V[0xf], 0)
}

func TestShifts(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0x6105, 0x8106, 0x8106, 0x6181, 0x810e, 0x810e)

	tm.step(t)
	tm.step(t) // SHR 0x05 -> 0x02, bit out
	assert.Assert(t, tm.mc.V[1], 0x02)
	assert.Assert(t, tm.mc.V[0xf], 1)

	tm.step(t) // SHR 0x02 -> 0x01, no bit out
	assert.Assert(t, tm.mc.V[1], 0x01)
	assert.Assert(t, tm.mc.V[0xf], 0)

	tm.step(t)
	tm.step(t) // SHL 0x81 -> 0x02, bit out
	assert.Assert(t, tm.mc.V[1], 0x02)
	assert.Assert(t, tm.mc.V[0xf], 1)

	tm.step(t) // SHL 0x02 -> 0x04, no bit out
	assert.Assert(t, tm.mc.V[1], 0x04)
	assert.Assert(t, tm.mc.V[0xf], 0)
}

func TestFlagRegisterAsOperand(t *testing.T) {
	// when VF is also the operand register the flag outcome wins over the
	// arithmetic result
	tm := newTestMachine()
	tm.putInstructions(0x200, 0x6f81, 0x8f0e)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[0xf], 1)

	tm = newTestMachine()
	tm.putInstructions(0x200, 0x6fff, 0x6102, 0x8f14)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.V[0xf], 1)
}

func TestIndexRegister(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0xa123, 0x6105, 0x6faa, 0xf11e)
	tm.step(t)
	assert.Assert(t, tm.mc.I, 0x123)

	tm.step(t)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.I, 0x128)

	// ADD I never touches the flag register
	assert.Assert(t, tm.mc.V[0xf], 0xaa)
}

func TestFontAddress(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0x610b, 0xf129)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.I, int(memory.FontAddress(0x0b)))

	// only the low nibble of the register selects the glyph
	tm.putInstructions(0x204, 0x61b3, 0xf129)
	tm.step(t)
	tm.step(t)
	assert.Assert(t, tm.mc.I, int(memory.FontAddress(0x03)))
}

func TestRandom(t *testing.T) {
	// the mask limits which bits can ever be set
	tm := newTestMachine()
	tm.putInstructions(0x200, 0xc10f)
	tm.step(t)
	test.Equate(t, tm.mc.V[1].Value()&0xf0, 0)

	// with zeroed seeds two machines produce the same number
	tn := newTestMachine()
	tn.putInstructions(0x200, 0xc10f)
	tn.step(t)
	test.Equate(t, tn.mc.V[1].Value(), tm.mc.V[1].Value())
}

func TestDraw(t *testing.T) {
	tm := newTestMachine()

	// a single row of eight pixels at the top-left corner
	tm.mem.Write(0x400, 0xff)
	tm.putInstructions(0x200, 0xa400, 0xd001)
	tm.step(t)
	tm.step(t)

	for x := 0; x < 8; x++ {
		test.Equate(t, tm.dsp.Pixel(x, 0), true)
	}
	test.Equate(t, tm.dsp.Pixel(8, 0), false)
	assert.Assert(t, tm.mc.V[0xf], 0)

	// drawing the same sprite again erases it and reports the collision
	tm.putInstructions(0x204, 0xd001)
	tm.step(t)
	for x := 0; x < 8; x++ {
		test.Equate(t, tm.dsp.Pixel(x, 0), false)
	}
	assert.Assert(t, tm.mc.V[0xf], 1)

	// a third draw sets the pixels once more and the flag goes back to
	// zero
	tm.putInstructions(0x206, 0xd001)
	tm.step(t)
	test.Equate(t, tm.dsp.Pixel(0, 0), true)
	assert.Assert(t, tm.mc.V[0xf], 0)
}

func TestDrawCoordinateWrap(t *testing.T) {
	tm := newTestMachine()

	// starting coordinates are taken modulo the display dimensions.
	// (64,35) is the same as (0,3)
	tm.mem.Write(0x400, 0x80)
	tm.putInstructions(0x200, 0xa400, 0x6140, 0x6223, 0xd121)
	for i := 0; i < 4; i++ {
		tm.step(t)
	}

	test.Equate(t, tm.dsp.Pixel(0, 3), true)
	assert.Assert(t, tm.mc.V[0xf], 0)
}

func TestClearScreen(t *testing.T) {
	tm := newTestMachine()

	tm.mem.Write(0x400, 0xff)
	tm.putInstructions(0x200, 0xa400, 0xd001, 0x00e0)
	tm.step(t)
	tm.step(t)
	tm.step(t)

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			test.Equate(t, tm.dsp.Pixel(x, y), false)
		}
	}
}

func TestTimerInstructions(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0x6105, 0xf115, 0xf207, 0xf118)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.tmr.Delay(), 5)

	tm.step(t)
	assert.Assert(t, tm.mc.V[2], 5)

	tm.step(t)
	test.Equate(t, tm.tmr.Sound(), 5)
}

func TestSkipOnKey(t *testing.T) {
	tm := newTestMachine()

	origin := tm.putInstructions(0x200, 0x6107)
	tm.step(t)

	// SKP with the key up. no skip
	tm.putInstructions(origin, 0xe19e)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+2)
	origin += 2

	// SKNP with the key up. skips
	tm.putInstructions(origin, 0xe1a1)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
	origin += 4

	// SKP with the key down. skips
	tm.key.SetKey(0x07, true)
	tm.putInstructions(origin, 0xe19e)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
	origin += 4

	// only the low nibble of the register selects the key
	origin = tm.putInstructions(origin, 0x6117)
	tm.step(t)
	tm.putInstructions(origin, 0xe19e)
	tm.step(t)
	assert.Assert(t, tm.mc.PC, int(origin)+4)
}

func TestWaitForKey(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0xf10a)
	tm.step(t)
	test.Equate(t, tm.mc.IsWaiting(), true)
	assert.Assert(t, tm.mc.PC, 0x202)

	// while no key is down the CPU refuses to fetch
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mc.IsWaiting(), true)
	assert.Assert(t, tm.mc.PC, 0x202)

	// a key arrives. the waiting load completes but nothing new is fetched
	// on the same step
	tm.key.SetKey(0x07, true)
	tm.step(t)
	test.Equate(t, tm.mc.IsWaiting(), false)
	assert.Assert(t, tm.mc.V[1], 0x07)
	assert.Assert(t, tm.mc.PC, 0x202)

	// normal service resumes
	tm.putInstructions(0x202, 0x6042)
	tm.step(t)
	assert.Assert(t, tm.mc.V[0], 0x42)
	assert.Assert(t, tm.mc.PC, 0x204)
}

func TestWaitForKeyAlreadyHeld(t *testing.T) {
	tm := newTestMachine()

	// a key that is down before the instruction runs satisfies the wait
	// without suspending anything
	tm.key.SetKey(0x0b, true)
	tm.putInstructions(0x200, 0xf10a)
	tm.step(t)
	test.Equate(t, tm.mc.IsWaiting(), false)
	assert.Assert(t, tm.mc.V[1], 0x0b)
}

func TestBCD(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0x61ea, 0xa400, 0xf133)
	tm.step(t)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mem.Read(0x400), 2)
	test.Equate(t, tm.mem.Read(0x401), 3)
	test.Equate(t, tm.mem.Read(0x402), 4)

	tm.putInstructions(0x206, 0x6107, 0xf133)
	tm.step(t)
	tm.step(t)
	test.Equate(t, tm.mem.Read(0x400), 0)
	test.Equate(t, tm.mem.Read(0x401), 0)
	test.Equate(t, tm.mem.Read(0x402), 7)
}

func TestStoreLoad(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200,
		0x6001, 0x6102, 0x6203, 0x6304, 0x6409,
		0xa300,
		0xf355,
	)
	for i := 0; i < 7; i++ {
		tm.step(t)
	}

	// registers V0 to VX inclusive and nothing more
	test.Equate(t, tm.mem.Read(0x300), 1)
	test.Equate(t, tm.mem.Read(0x301), 2)
	test.Equate(t, tm.mem.Read(0x302), 3)
	test.Equate(t, tm.mem.Read(0x303), 4)
	test.Equate(t, tm.mem.Read(0x304), 0)

	// the index register does not walk over the copied range
	assert.Assert(t, tm.mc.I, 0x300)

	tm.putInstructions(0x20e, 0x6000, 0x6100, 0x6200, 0x6300, 0xf365)
	for i := 0; i < 5; i++ {
		tm.step(t)
	}

	assert.Assert(t, tm.mc.V[0], 1)
	assert.Assert(t, tm.mc.V[1], 2)
	assert.Assert(t, tm.mc.V[2], 3)
	assert.Assert(t, tm.mc.V[3], 4)
	assert.Assert(t, tm.mc.I, 0x300)
}

func TestUnimplemented(t *testing.T) {
	// one word from each family of undecodable encodings, plus a SYS call
	// which decodes but refuses to execute
	for _, word := range []uint16{0x0123, 0x5ab1, 0x8ab8, 0x9ab1, 0xea00, 0xfa00} {
		tm := newTestMachine()
		tm.putInstructions(0x200, word)

		err := tm.mc.ExecuteInstruction()
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, instructions.UnimplementedInstruction))

		// the machine is untouched except for the advanced program counter
		assert.Assert(t, tm.mc.PC, 0x202)
		for i := range tm.mc.V {
			assert.Assert(t, tm.mc.V[i], 0)
		}
		assert.Assert(t, tm.mc.I, 0)
		test.Equate(t, len(tm.mc.Stack), 0)
		test.Equate(t, tm.tmr.Delay(), 0)
		test.Equate(t, tm.tmr.Sound(), 0)

		// and it remains usable
		tm.putInstructions(0x202, 0x600a)
		tm.step(t)
		assert.Assert(t, tm.mc.V[0], 0x0a)
	}
}

func TestReset(t *testing.T) {
	tm := newTestMachine()

	tm.putInstructions(0x200, 0x6107, 0xa123, 0x2300)
	tm.step(t)
	tm.step(t)
	tm.step(t)

	tm.mc.Reset()
	assert.Assert(t, tm.mc.PC, 0x200)
	assert.Assert(t, tm.mc.I, 0)
	for i := range tm.mc.V {
		assert.Assert(t, tm.mc.V[i], 0)
	}
	test.Equate(t, len(tm.mc.Stack), 0)
	test.Equate(t, tm.mc.IsWaiting(), false)
}
