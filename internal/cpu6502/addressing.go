package cpu6502

// Addressing modes. Resolving the operand address depends only on the
// mode, never on the opcode itself, so it is factored out as its own
// step before the opcode's exec function runs.
const (
	modeImplied = iota
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

func (c *CPU) resolveAddress(op *opcodeEntry) {
	switch op.mode {
	case modeImplied:
	case modeImmediate:
		c.opAddr = c.PC
		c.PC++
	case modeZeroPage:
		c.opRawAddr = uint16(c.readPC8())
		c.opAddr = c.opRawAddr
	case modeZeroPageX:
		c.opRawAddr = uint16(c.readPC8())
		c.opAddr = (c.opRawAddr + uint16(c.X)) & 0xFF
	case modeZeroPageY:
		c.opRawAddr = uint16(c.readPC8())
		c.opAddr = (c.opRawAddr + uint16(c.Y)) & 0xFF
	case modeAbsolute:
		c.opRawAddr = c.readPC16()
		c.opAddr = c.opRawAddr
	case modeAbsoluteX:
		c.opRawAddr = c.readPC16()
		c.opAddr = c.opRawAddr + uint16(c.X)
		if op.extraCycles > 0 && (c.opRawAddr&0xFF00) != (c.opAddr&0xFF00) {
			c.cycles += op.extraCycles
		}
	case modeAbsoluteY:
		c.opRawAddr = c.readPC16()
		c.opAddr = c.opRawAddr + uint16(c.Y)
		if op.extraCycles > 0 && (c.opRawAddr&0xFF00) != (c.opAddr&0xFF00) {
			c.cycles += op.extraCycles
		}
	case modeIndirect:
		// Reproduces the classic 6502 page-wrap bug in JMP ($xxFF): the
		// high byte is fetched from the start of the same page, not the
		// next page.
		ptr := c.readPC16()
		c.opRawAddr = ptr
		lo := c.mem.Read(ptr)
		var hiAddr uint16
		if ptr&0xFF == 0xFF {
			hiAddr = ptr &^ 0xFF
		} else {
			hiAddr = ptr + 1
		}
		hi := c.mem.Read(hiAddr)
		c.opAddr = uint16(lo) | uint16(hi)<<8
	case modeIndirectX:
		c.opRawAddr = uint16(c.readPC8())
		zp := (c.opRawAddr + uint16(c.X)) & 0xFF
		lo := uint16(c.mem.Read(zp))
		hi := uint16(c.mem.Read((zp + 1) & 0xFF))
		c.opAddr = lo | hi<<8
	case modeIndirectY:
		c.opRawAddr = uint16(c.readPC8())
		lo := uint16(c.mem.Read(c.opRawAddr))
		hi := uint16(c.mem.Read((c.opRawAddr + 1) & 0xFF))
		base := lo | hi<<8
		c.opAddr = base + uint16(c.Y)
		if op.extraCycles > 0 && (base&0xFF00) != (c.opAddr&0xFF00) {
			c.cycles += op.extraCycles
		}
	}
}

func (c *CPU) readPC8() uint8 {
	v := c.mem.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) readPC16() uint16 {
	lo := uint16(c.readPC8())
	hi := uint16(c.readPC8())
	return lo | hi<<8
}
