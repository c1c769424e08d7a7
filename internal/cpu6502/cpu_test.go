package cpu6502

import "testing"

// testMemory is a flat, map-backed address space for tests.
type testMemory struct {
	mem map[uint16]uint8
}

func newTestMemory() *testMemory {
	return &testMemory{mem: make(map[uint16]uint8)}
}

func (m *testMemory) Read(addr uint16) uint8 { return m.mem[addr] }
func (m *testMemory) Write(addr uint16, val uint8) {
	m.mem[addr] = val
}

func (m *testMemory) setResetVector(addr uint16) {
	m.Write(vectorReset, uint8(addr))
	m.Write(vectorReset+1, uint8(addr>>8))
}

func newTestCPU(mem *testMemory, pc uint16) *CPU {
	mem.setResetVector(pc)
	return New(mem)
}

func TestResetVectorLoadsPC(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1234)
	if c.PC != 0x1234 {
		t.Fatalf("PC = %#04x, want %#04x", c.PC, 0x1234)
	}
}

func TestReadPC8Advances(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1010)
	mem.Write(0x1010, 0x80)

	if v := c.readPC8(); v != 0x80 {
		t.Fatalf("readPC8() = %#02x, want 0x80", v)
	}
	if c.PC != 0x1011 {
		t.Fatalf("PC after readPC8 = %#04x, want 0x1011", c.PC)
	}
}

func TestReadPC16IsLittleEndian(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1010)
	mem.Write(0x1010, 0x11)
	mem.Write(0x1011, 0x22)

	if v := c.readPC16(); v != 0x2211 {
		t.Fatalf("readPC16() = %#04x, want 0x2211", v)
	}
}

func TestLdaImmediateSetsAccumulatorAndFlags(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1000)
	mem.Write(0x1000, 0xA9) // LDA #$00
	mem.Write(0x1001, 0x00)

	c.Step()

	if c.A != 0 {
		t.Fatalf("A = %#02x, want 0", c.A)
	}
	if !c.isSet(FlagZ) {
		t.Fatalf("Z flag not set after loading zero")
	}
}

func TestAdcSetsCarryOnOverflow(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1000)
	c.A = 0xFF
	mem.Write(0x1000, 0x69) // ADC #$02
	mem.Write(0x1001, 0x02)

	c.Step()

	if c.A != 0x01 {
		t.Fatalf("A = %#02x, want 0x01", c.A)
	}
	if !c.isSet(FlagC) {
		t.Fatalf("carry flag not set after 0xFF + 0x02")
	}
}

func TestJmpIndirectPageWrapBug(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1000)
	mem.Write(0x1000, 0x6C) // JMP ($30FF)
	mem.Write(0x1001, 0xFF)
	mem.Write(0x1002, 0x30)
	mem.Write(0x30FF, 0x00) // low byte of target
	mem.Write(0x3000, 0x40) // high byte is (mis)read from $3000, not $3100
	mem.Write(0x3100, 0x99)

	c.Step()

	if c.PC != 0x4000 {
		t.Fatalf("PC = %#04x, want 0x4000 (page-wrap bug reproduced)", c.PC)
	}
}

func TestBranchTakenAddsCycleAndCrossesPage(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x10F0)
	c.setFlag(FlagZ, true)
	mem.Write(0x10F0, 0xF0) // BEQ +$20
	mem.Write(0x10F1, 0x20)

	cycles := c.Step()

	if c.PC != 0x1112 {
		t.Fatalf("PC = %#04x, want 0x1112", c.PC)
	}
	if cycles != 4 {
		t.Fatalf("cycles = %d, want 4 (2 base + 2 for page-crossing branch)", cycles)
	}
}

func TestStackPushPopRoundTrips(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1000)
	c.push(0x42)
	if v := c.pop(); v != 0x42 {
		t.Fatalf("pop() = %#02x, want 0x42", v)
	}
}

func TestJsrRtsRoundTrip(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1000)
	mem.Write(0x1000, 0x20) // JSR $2000
	mem.Write(0x1001, 0x00)
	mem.Write(0x1002, 0x20)
	mem.Write(0x2000, 0x60) // RTS

	c.Step() // JSR
	if c.PC != 0x2000 {
		t.Fatalf("PC after JSR = %#04x, want 0x2000", c.PC)
	}
	c.Step() // RTS
	if c.PC != 0x1003 {
		t.Fatalf("PC after RTS = %#04x, want 0x1003", c.PC)
	}
}

func TestUnknownOpcodePanics(t *testing.T) {
	mem := newTestMemory()
	c := newTestCPU(mem, 0x1000)
	mem.Write(0x1000, 0x02) // not a documented opcode

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Step to panic on an undocumented opcode")
		}
	}()
	c.Step()
}
