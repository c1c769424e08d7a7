package cpu6502

// opcodeEntry describes one documented 6502 instruction: its mnemonic
// (for Debug logging), the function that executes it, its base cycle
// count, any extra cycle owed on a page-crossing read, and its
// addressing mode.
type opcodeEntry struct {
	name        string
	exec        func(c *CPU)
	cycles      uint64
	extraCycles uint64
	mode        int
}

// opTable covers only the 6502's documented instruction set. Apple II
// system software (Monitor, Applesoft, DOS 3.3) never relies on the
// illegal/undocumented opcodes a NES-oriented core would also define,
// so they are left out rather than carried along unused.
var opTable = map[uint8]*opcodeEntry{
	0x69: {"ADC", (*CPU).opAdc, 2, 0, modeImmediate},
	0x65: {"ADC", (*CPU).opAdc, 3, 0, modeZeroPage},
	0x75: {"ADC", (*CPU).opAdc, 4, 0, modeZeroPageX},
	0x6D: {"ADC", (*CPU).opAdc, 4, 0, modeAbsolute},
	0x7D: {"ADC", (*CPU).opAdc, 4, 1, modeAbsoluteX},
	0x79: {"ADC", (*CPU).opAdc, 4, 1, modeAbsoluteY},
	0x61: {"ADC", (*CPU).opAdc, 6, 0, modeIndirectX},
	0x71: {"ADC", (*CPU).opAdc, 5, 1, modeIndirectY},

	0x29: {"AND", (*CPU).opAnd, 2, 0, modeImmediate},
	0x25: {"AND", (*CPU).opAnd, 3, 0, modeZeroPage},
	0x35: {"AND", (*CPU).opAnd, 4, 0, modeZeroPageX},
	0x2D: {"AND", (*CPU).opAnd, 4, 0, modeAbsolute},
	0x3D: {"AND", (*CPU).opAnd, 4, 1, modeAbsoluteX},
	0x39: {"AND", (*CPU).opAnd, 4, 1, modeAbsoluteY},
	0x21: {"AND", (*CPU).opAnd, 6, 0, modeIndirectX},
	0x31: {"AND", (*CPU).opAnd, 5, 1, modeIndirectY},

	0x0A: {"ASL", (*CPU).opAslAcc, 2, 0, modeImplied},
	0x06: {"ASL", (*CPU).opAsl, 5, 0, modeZeroPage},
	0x16: {"ASL", (*CPU).opAsl, 6, 0, modeZeroPageX},
	0x0E: {"ASL", (*CPU).opAsl, 6, 0, modeAbsolute},
	0x1E: {"ASL", (*CPU).opAsl, 7, 0, modeAbsoluteX},

	0x90: {"BCC", (*CPU).opBcc, 2, 0, modeImmediate},
	0xB0: {"BCS", (*CPU).opBcs, 2, 0, modeImmediate},
	0xF0: {"BEQ", (*CPU).opBeq, 2, 0, modeImmediate},
	0x30: {"BMI", (*CPU).opBmi, 2, 0, modeImmediate},
	0xD0: {"BNE", (*CPU).opBne, 2, 0, modeImmediate},
	0x10: {"BPL", (*CPU).opBpl, 2, 0, modeImmediate},
	0x50: {"BVC", (*CPU).opBvc, 2, 0, modeImmediate},
	0x70: {"BVS", (*CPU).opBvs, 2, 0, modeImmediate},

	0x24: {"BIT", (*CPU).opBit, 3, 0, modeZeroPage},
	0x2C: {"BIT", (*CPU).opBit, 4, 0, modeAbsolute},

	0x00: {"BRK", (*CPU).opBrk, 7, 0, modeImplied},

	0x18: {"CLC", (*CPU).opClc, 2, 0, modeImplied},
	0xD8: {"CLD", (*CPU).opCld, 2, 0, modeImplied},
	0x58: {"CLI", (*CPU).opCli, 2, 0, modeImplied},
	0xB8: {"CLV", (*CPU).opClv, 2, 0, modeImplied},
	0x38: {"SEC", (*CPU).opSec, 2, 0, modeImplied},
	0xF8: {"SED", (*CPU).opSed, 2, 0, modeImplied},
	0x78: {"SEI", (*CPU).opSei, 2, 0, modeImplied},

	0xC9: {"CMP", (*CPU).opCmp, 2, 0, modeImmediate},
	0xC5: {"CMP", (*CPU).opCmp, 3, 0, modeZeroPage},
	0xD5: {"CMP", (*CPU).opCmp, 4, 0, modeZeroPageX},
	0xCD: {"CMP", (*CPU).opCmp, 4, 0, modeAbsolute},
	0xDD: {"CMP", (*CPU).opCmp, 4, 1, modeAbsoluteX},
	0xD9: {"CMP", (*CPU).opCmp, 4, 1, modeAbsoluteY},
	0xC1: {"CMP", (*CPU).opCmp, 6, 0, modeIndirectX},
	0xD1: {"CMP", (*CPU).opCmp, 5, 1, modeIndirectY},

	0xE0: {"CPX", (*CPU).opCpx, 2, 0, modeImmediate},
	0xE4: {"CPX", (*CPU).opCpx, 3, 0, modeZeroPage},
	0xEC: {"CPX", (*CPU).opCpx, 4, 0, modeAbsolute},

	0xC0: {"CPY", (*CPU).opCpy, 2, 0, modeImmediate},
	0xC4: {"CPY", (*CPU).opCpy, 3, 0, modeZeroPage},
	0xCC: {"CPY", (*CPU).opCpy, 4, 0, modeAbsolute},

	0xC6: {"DEC", (*CPU).opDec, 5, 0, modeZeroPage},
	0xD6: {"DEC", (*CPU).opDec, 6, 0, modeZeroPageX},
	0xCE: {"DEC", (*CPU).opDec, 6, 0, modeAbsolute},
	0xDE: {"DEC", (*CPU).opDec, 7, 0, modeAbsoluteX},

	0xCA: {"DEX", (*CPU).opDex, 2, 0, modeImplied},
	0x88: {"DEY", (*CPU).opDey, 2, 0, modeImplied},

	0x49: {"EOR", (*CPU).opEor, 2, 0, modeImmediate},
	0x45: {"EOR", (*CPU).opEor, 3, 0, modeZeroPage},
	0x55: {"EOR", (*CPU).opEor, 4, 0, modeZeroPageX},
	0x4D: {"EOR", (*CPU).opEor, 4, 0, modeAbsolute},
	0x5D: {"EOR", (*CPU).opEor, 4, 1, modeAbsoluteX},
	0x59: {"EOR", (*CPU).opEor, 4, 1, modeAbsoluteY},
	0x41: {"EOR", (*CPU).opEor, 6, 0, modeIndirectX},
	0x51: {"EOR", (*CPU).opEor, 5, 1, modeIndirectY},

	0xE6: {"INC", (*CPU).opInc, 5, 0, modeZeroPage},
	0xF6: {"INC", (*CPU).opInc, 6, 0, modeZeroPageX},
	0xEE: {"INC", (*CPU).opInc, 6, 0, modeAbsolute},
	0xFE: {"INC", (*CPU).opInc, 7, 0, modeAbsoluteX},

	0xE8: {"INX", (*CPU).opInx, 2, 0, modeImplied},
	0xC8: {"INY", (*CPU).opIny, 2, 0, modeImplied},

	0x4C: {"JMP", (*CPU).opJmp, 3, 0, modeAbsolute},
	0x6C: {"JMP", (*CPU).opJmp, 5, 0, modeIndirect},
	0x20: {"JSR", (*CPU).opJsr, 6, 0, modeAbsolute},

	0xA9: {"LDA", (*CPU).opLda, 2, 0, modeImmediate},
	0xA5: {"LDA", (*CPU).opLda, 3, 0, modeZeroPage},
	0xB5: {"LDA", (*CPU).opLda, 4, 0, modeZeroPageX},
	0xAD: {"LDA", (*CPU).opLda, 4, 0, modeAbsolute},
	0xBD: {"LDA", (*CPU).opLda, 4, 1, modeAbsoluteX},
	0xB9: {"LDA", (*CPU).opLda, 4, 1, modeAbsoluteY},
	0xA1: {"LDA", (*CPU).opLda, 6, 0, modeIndirectX},
	0xB1: {"LDA", (*CPU).opLda, 5, 1, modeIndirectY},

	0xA2: {"LDX", (*CPU).opLdx, 2, 0, modeImmediate},
	0xA6: {"LDX", (*CPU).opLdx, 3, 0, modeZeroPage},
	0xB6: {"LDX", (*CPU).opLdx, 4, 0, modeZeroPageY},
	0xAE: {"LDX", (*CPU).opLdx, 4, 0, modeAbsolute},
	0xBE: {"LDX", (*CPU).opLdx, 4, 1, modeAbsoluteY},

	0xA0: {"LDY", (*CPU).opLdy, 2, 0, modeImmediate},
	0xA4: {"LDY", (*CPU).opLdy, 3, 0, modeZeroPage},
	0xB4: {"LDY", (*CPU).opLdy, 4, 0, modeZeroPageX},
	0xAC: {"LDY", (*CPU).opLdy, 4, 0, modeAbsolute},
	0xBC: {"LDY", (*CPU).opLdy, 4, 1, modeAbsoluteX},

	0x4A: {"LSR", (*CPU).opLsrAcc, 2, 0, modeImplied},
	0x46: {"LSR", (*CPU).opLsr, 5, 0, modeZeroPage},
	0x56: {"LSR", (*CPU).opLsr, 6, 0, modeZeroPageX},
	0x4E: {"LSR", (*CPU).opLsr, 6, 0, modeAbsolute},
	0x5E: {"LSR", (*CPU).opLsr, 7, 0, modeAbsoluteX},

	0xEA: {"NOP", (*CPU).opNop, 2, 0, modeImplied},

	0x09: {"ORA", (*CPU).opOra, 2, 0, modeImmediate},
	0x05: {"ORA", (*CPU).opOra, 3, 0, modeZeroPage},
	0x15: {"ORA", (*CPU).opOra, 4, 0, modeZeroPageX},
	0x0D: {"ORA", (*CPU).opOra, 4, 0, modeAbsolute},
	0x1D: {"ORA", (*CPU).opOra, 4, 1, modeAbsoluteX},
	0x19: {"ORA", (*CPU).opOra, 4, 1, modeAbsoluteY},
	0x01: {"ORA", (*CPU).opOra, 6, 0, modeIndirectX},
	0x11: {"ORA", (*CPU).opOra, 5, 1, modeIndirectY},

	0x48: {"PHA", (*CPU).opPha, 3, 0, modeImplied},
	0x08: {"PHP", (*CPU).opPhp, 3, 0, modeImplied},
	0x68: {"PLA", (*CPU).opPla, 4, 0, modeImplied},
	0x28: {"PLP", (*CPU).opPlp, 4, 0, modeImplied},

	0x2A: {"ROL", (*CPU).opRolAcc, 2, 0, modeImplied},
	0x26: {"ROL", (*CPU).opRol, 5, 0, modeZeroPage},
	0x36: {"ROL", (*CPU).opRol, 6, 0, modeZeroPageX},
	0x2E: {"ROL", (*CPU).opRol, 6, 0, modeAbsolute},
	0x3E: {"ROL", (*CPU).opRol, 7, 0, modeAbsoluteX},

	0x6A: {"ROR", (*CPU).opRorAcc, 2, 0, modeImplied},
	0x66: {"ROR", (*CPU).opRor, 5, 0, modeZeroPage},
	0x76: {"ROR", (*CPU).opRor, 6, 0, modeZeroPageX},
	0x6E: {"ROR", (*CPU).opRor, 6, 0, modeAbsolute},
	0x7E: {"ROR", (*CPU).opRor, 7, 0, modeAbsoluteX},

	0x40: {"RTI", (*CPU).opRti, 6, 0, modeImplied},
	0x60: {"RTS", (*CPU).opRts, 6, 0, modeImplied},

	0xE9: {"SBC", (*CPU).opSbc, 2, 0, modeImmediate},
	0xE5: {"SBC", (*CPU).opSbc, 3, 0, modeZeroPage},
	0xF5: {"SBC", (*CPU).opSbc, 4, 0, modeZeroPageX},
	0xED: {"SBC", (*CPU).opSbc, 4, 0, modeAbsolute},
	0xFD: {"SBC", (*CPU).opSbc, 4, 1, modeAbsoluteX},
	0xF9: {"SBC", (*CPU).opSbc, 4, 1, modeAbsoluteY},
	0xE1: {"SBC", (*CPU).opSbc, 6, 0, modeIndirectX},
	0xF1: {"SBC", (*CPU).opSbc, 5, 1, modeIndirectY},

	0x85: {"STA", (*CPU).opSta, 3, 0, modeZeroPage},
	0x95: {"STA", (*CPU).opSta, 4, 0, modeZeroPageX},
	0x8D: {"STA", (*CPU).opSta, 4, 0, modeAbsolute},
	0x9D: {"STA", (*CPU).opSta, 5, 0, modeAbsoluteX},
	0x99: {"STA", (*CPU).opSta, 5, 0, modeAbsoluteY},
	0x81: {"STA", (*CPU).opSta, 6, 0, modeIndirectX},
	0x91: {"STA", (*CPU).opSta, 6, 0, modeIndirectY},

	0x86: {"STX", (*CPU).opStx, 3, 0, modeZeroPage},
	0x96: {"STX", (*CPU).opStx, 4, 0, modeZeroPageY},
	0x8E: {"STX", (*CPU).opStx, 4, 0, modeAbsolute},

	0x84: {"STY", (*CPU).opSty, 3, 0, modeZeroPage},
	0x94: {"STY", (*CPU).opSty, 4, 0, modeZeroPageX},
	0x8C: {"STY", (*CPU).opSty, 4, 0, modeAbsolute},

	0xAA: {"TAX", (*CPU).opTax, 2, 0, modeImplied},
	0xA8: {"TAY", (*CPU).opTay, 2, 0, modeImplied},
	0xBA: {"TSX", (*CPU).opTsx, 2, 0, modeImplied},
	0x8A: {"TXA", (*CPU).opTxa, 2, 0, modeImplied},
	0x9A: {"TXS", (*CPU).opTxs, 2, 0, modeImplied},
	0x98: {"TYA", (*CPU).opTya, 2, 0, modeImplied},
}
