package cpu

// OpcodeEntry is one row of the 256-entry dispatch table: the instruction's
// mnemonic (for disassembly/debugging), its addressing mode, and the
// operation that executes it. A flat table keeps dispatch O(1) and
// branch-predictable, and keeps the 65C816's heavy addressing-mode reuse
// (the same operation appears under a dozen different opcodes) a matter
// of data, not of duplicated switch arms.
type OpcodeEntry struct {
	Name string
	Mode AddrMode
	Exec func(*CPU, AddrMode)
}

var opcodeTable = [256]OpcodeEntry{
	0x00: {"BRK", ModeImplied, doBRK},
	0x01: {"ORA", ModeDirectIndexedIndirect, doORA},
	0x02: {"COP", ModeImplied, doCOP},
	0x03: {"ORA", ModeStackRelative, doORA},
	0x04: {"TSB", ModeDirect, doTSB},
	0x05: {"ORA", ModeDirect, doORA},
	0x06: {"ASL", ModeDirect, doASL},
	0x07: {"ORA", ModeDirectIndirectLong, doORA},
	0x08: {"PHP", ModeImplied, doPHP},
	0x09: {"ORA", ModeImmediateM, doORA},
	0x0A: {"ASL", ModeAccumulator, doASL},
	0x0B: {"PHD", ModeImplied, doPHD},
	0x0C: {"TSB", ModeAbsolute, doTSB},
	0x0D: {"ORA", ModeAbsolute, doORA},
	0x0E: {"ASL", ModeAbsolute, doASL},
	0x0F: {"ORA", ModeLong, doORA},

	0x10: {"BPL", ModeRelative8, doBPL},
	0x11: {"ORA", ModeDirectIndirectIndexed, doORA},
	0x12: {"ORA", ModeDirectIndirect, doORA},
	0x13: {"ORA", ModeStackRelativeIndirectIndexed, doORA},
	0x14: {"TRB", ModeDirect, doTRB},
	0x15: {"ORA", ModeDirectX, doORA},
	0x16: {"ASL", ModeDirectX, doASL},
	0x17: {"ORA", ModeDirectIndirectIndexedLong, doORA},
	0x18: {"CLC", ModeImplied, doCLC},
	0x19: {"ORA", ModeAbsoluteY, doORA},
	0x1A: {"INC", ModeImplied, doINA},
	0x1B: {"TCS", ModeImplied, doTCS},
	0x1C: {"TRB", ModeAbsolute, doTRB},
	0x1D: {"ORA", ModeAbsoluteX, doORA},
	0x1E: {"ASL", ModeAbsoluteX, doASL},
	0x1F: {"ORA", ModeLongX, doORA},

	0x20: {"JSR", ModeAbsoluteJMP, doJSR},
	0x21: {"AND", ModeDirectIndexedIndirect, doAND},
	0x22: {"JSL", ModeLong, doJSL},
	0x23: {"AND", ModeStackRelative, doAND},
	0x24: {"BIT", ModeDirect, doBIT},
	0x25: {"AND", ModeDirect, doAND},
	0x26: {"ROL", ModeDirect, doROL},
	0x27: {"AND", ModeDirectIndirectLong, doAND},
	0x28: {"PLP", ModeImplied, doPLP},
	0x29: {"AND", ModeImmediateM, doAND},
	0x2A: {"ROL", ModeAccumulator, doROL},
	0x2B: {"PLD", ModeImplied, doPLD},
	0x2C: {"BIT", ModeAbsolute, doBIT},
	0x2D: {"AND", ModeAbsolute, doAND},
	0x2E: {"ROL", ModeAbsolute, doROL},
	0x2F: {"AND", ModeLong, doAND},

	0x30: {"BMI", ModeRelative8, doBMI},
	0x31: {"AND", ModeDirectIndirectIndexed, doAND},
	0x32: {"AND", ModeDirectIndirect, doAND},
	0x33: {"AND", ModeStackRelativeIndirectIndexed, doAND},
	0x34: {"BIT", ModeDirectX, doBIT},
	0x35: {"AND", ModeDirectX, doAND},
	0x36: {"ROL", ModeDirectX, doROL},
	0x37: {"AND", ModeDirectIndirectIndexedLong, doAND},
	0x38: {"SEC", ModeImplied, doSEC},
	0x39: {"AND", ModeAbsoluteY, doAND},
	0x3A: {"DEC", ModeImplied, doDEA},
	0x3B: {"TSC", ModeImplied, doTSC},
	0x3C: {"BIT", ModeAbsoluteX, doBIT},
	0x3D: {"AND", ModeAbsoluteX, doAND},
	0x3E: {"ROL", ModeAbsoluteX, doROL},
	0x3F: {"AND", ModeLongX, doAND},

	0x40: {"RTI", ModeImplied, doRTI},
	0x41: {"EOR", ModeDirectIndexedIndirect, doEOR},
	0x42: {"WDM", ModeImplied, doWDM},
	0x43: {"EOR", ModeStackRelative, doEOR},
	0x44: {"MVP", ModeImplied, doMVP},
	0x45: {"EOR", ModeDirect, doEOR},
	0x46: {"LSR", ModeDirect, doLSR},
	0x47: {"EOR", ModeDirectIndirectLong, doEOR},
	0x48: {"PHA", ModeImplied, doPHA},
	0x49: {"EOR", ModeImmediateM, doEOR},
	0x4A: {"LSR", ModeAccumulator, doLSR},
	0x4B: {"PHK", ModeImplied, doPHK},
	0x4C: {"JMP", ModeAbsoluteJMP, doJMP},
	0x4D: {"EOR", ModeAbsolute, doEOR},
	0x4E: {"LSR", ModeAbsolute, doLSR},
	0x4F: {"EOR", ModeLong, doEOR},

	0x50: {"BVC", ModeRelative8, doBVC},
	0x51: {"EOR", ModeDirectIndirectIndexed, doEOR},
	0x52: {"EOR", ModeDirectIndirect, doEOR},
	0x53: {"EOR", ModeStackRelativeIndirectIndexed, doEOR},
	0x54: {"MVN", ModeImplied, doMVN},
	0x55: {"EOR", ModeDirectX, doEOR},
	0x56: {"LSR", ModeDirectX, doLSR},
	0x57: {"EOR", ModeDirectIndirectIndexedLong, doEOR},
	0x58: {"CLI", ModeImplied, doCLI},
	0x59: {"EOR", ModeAbsoluteY, doEOR},
	0x5A: {"PHY", ModeImplied, doPHY},
	0x5B: {"TCD", ModeImplied, doTCD},
	0x5C: {"JML", ModeLong, doJML},
	0x5D: {"EOR", ModeAbsoluteX, doEOR},
	0x5E: {"LSR", ModeAbsoluteX, doLSR},
	0x5F: {"EOR", ModeLongX, doEOR},

	0x60: {"RTS", ModeImplied, doRTS},
	0x61: {"ADC", ModeDirectIndexedIndirect, doADC},
	0x62: {"PER", ModeImplied, doPER},
	0x63: {"ADC", ModeStackRelative, doADC},
	0x64: {"STZ", ModeDirect, doSTZ},
	0x65: {"ADC", ModeDirect, doADC},
	0x66: {"ROR", ModeDirect, doROR},
	0x67: {"ADC", ModeDirectIndirectLong, doADC},
	0x68: {"PLA", ModeImplied, doPLA},
	0x69: {"ADC", ModeImmediateM, doADC},
	0x6A: {"ROR", ModeAccumulator, doROR},
	0x6B: {"RTL", ModeImplied, doRTL},
	0x6C: {"JMP", ModeAbsoluteIndirect, doJMP},
	0x6D: {"ADC", ModeAbsolute, doADC},
	0x6E: {"ROR", ModeAbsolute, doROR},
	0x6F: {"ADC", ModeLong, doADC},

	0x70: {"BVS", ModeRelative8, doBVS},
	0x71: {"ADC", ModeDirectIndirectIndexed, doADC},
	0x72: {"ADC", ModeDirectIndirect, doADC},
	0x73: {"ADC", ModeStackRelativeIndirectIndexed, doADC},
	0x74: {"STZ", ModeDirectX, doSTZ},
	0x75: {"ADC", ModeDirectX, doADC},
	0x76: {"ROR", ModeDirectX, doROR},
	0x77: {"ADC", ModeDirectIndirectIndexedLong, doADC},
	0x78: {"SEI", ModeImplied, doSEI},
	0x79: {"ADC", ModeAbsoluteY, doADC},
	0x7A: {"PLY", ModeImplied, doPLY},
	0x7B: {"TDC", ModeImplied, doTDC},
	0x7C: {"JMP", ModeAbsoluteIndexedIndirect, doJMP},
	0x7D: {"ADC", ModeAbsoluteX, doADC},
	0x7E: {"ROR", ModeAbsoluteX, doROR},
	0x7F: {"ADC", ModeLongX, doADC},

	0x80: {"BRA", ModeRelative8, doBRA},
	0x81: {"STA", ModeDirectIndexedIndirect, doSTA},
	0x82: {"BRL", ModeRelative16, doBRL},
	0x83: {"STA", ModeStackRelative, doSTA},
	0x84: {"STY", ModeDirect, doSTY},
	0x85: {"STA", ModeDirect, doSTA},
	0x86: {"STX", ModeDirect, doSTX},
	0x87: {"STA", ModeDirectIndirectLong, doSTA},
	0x88: {"DEY", ModeImplied, doDEY},
	0x89: {"BIT", ModeImmediateM, doBIT},
	0x8A: {"TXA", ModeImplied, doTXA},
	0x8B: {"PHB", ModeImplied, doPHB},
	0x8C: {"STY", ModeAbsolute, doSTY},
	0x8D: {"STA", ModeAbsolute, doSTA},
	0x8E: {"STX", ModeAbsolute, doSTX},
	0x8F: {"STA", ModeLong, doSTA},

	0x90: {"BCC", ModeRelative8, doBCC},
	0x91: {"STA", ModeDirectIndirectIndexed, doSTA},
	0x92: {"STA", ModeDirectIndirect, doSTA},
	0x93: {"STA", ModeStackRelativeIndirectIndexed, doSTA},
	0x94: {"STY", ModeDirectX, doSTY},
	0x95: {"STA", ModeDirectX, doSTA},
	0x96: {"STX", ModeDirectY, doSTX},
	0x97: {"STA", ModeDirectIndirectIndexedLong, doSTA},
	0x98: {"TYA", ModeImplied, doTYA},
	0x99: {"STA", ModeAbsoluteY, doSTA},
	0x9A: {"TXS", ModeImplied, doTXS},
	0x9B: {"TXY", ModeImplied, doTXY},
	0x9C: {"STZ", ModeAbsolute, doSTZ},
	0x9D: {"STA", ModeAbsoluteX, doSTA},
	0x9E: {"STZ", ModeAbsoluteX, doSTZ},
	0x9F: {"STA", ModeLongX, doSTA},

	0xA0: {"LDY", ModeImmediateX, doLDY},
	0xA1: {"LDA", ModeDirectIndexedIndirect, doLDA},
	0xA2: {"LDX", ModeImmediateX, doLDX},
	0xA3: {"LDA", ModeStackRelative, doLDA},
	0xA4: {"LDY", ModeDirect, doLDY},
	0xA5: {"LDA", ModeDirect, doLDA},
	0xA6: {"LDX", ModeDirect, doLDX},
	0xA7: {"LDA", ModeDirectIndirectLong, doLDA},
	0xA8: {"TAY", ModeImplied, doTAY},
	0xA9: {"LDA", ModeImmediateM, doLDA},
	0xAA: {"TAX", ModeImplied, doTAX},
	0xAB: {"PLB", ModeImplied, doPLB},
	0xAC: {"LDY", ModeAbsolute, doLDY},
	0xAD: {"LDA", ModeAbsolute, doLDA},
	0xAE: {"LDX", ModeAbsolute, doLDX},
	0xAF: {"LDA", ModeLong, doLDA},

	0xB0: {"BCS", ModeRelative8, doBCS},
	0xB1: {"LDA", ModeDirectIndirectIndexed, doLDA},
	0xB2: {"LDA", ModeDirectIndirect, doLDA},
	0xB3: {"LDA", ModeStackRelativeIndirectIndexed, doLDA},
	0xB4: {"LDY", ModeDirectX, doLDY},
	0xB5: {"LDA", ModeDirectX, doLDA},
	0xB6: {"LDX", ModeDirectY, doLDX},
	0xB7: {"LDA", ModeDirectIndirectIndexedLong, doLDA},
	0xB8: {"CLV", ModeImplied, doCLV},
	0xB9: {"LDA", ModeAbsoluteY, doLDA},
	0xBA: {"TSX", ModeImplied, doTSX},
	0xBB: {"TYX", ModeImplied, doTYX},
	0xBC: {"LDY", ModeAbsoluteX, doLDY},
	0xBD: {"LDA", ModeAbsoluteX, doLDA},
	0xBE: {"LDX", ModeAbsoluteY, doLDX},
	0xBF: {"LDA", ModeLongX, doLDA},

	0xC0: {"CPY", ModeImmediateX, doCPY},
	0xC1: {"CMP", ModeDirectIndexedIndirect, doCMP},
	0xC2: {"REP", ModeImmediate8, doREP},
	0xC3: {"CMP", ModeStackRelative, doCMP},
	0xC4: {"CPY", ModeDirect, doCPY},
	0xC5: {"CMP", ModeDirect, doCMP},
	0xC6: {"DEC", ModeDirect, doDEC},
	0xC7: {"CMP", ModeDirectIndirectLong, doCMP},
	0xC8: {"INY", ModeImplied, doINY},
	0xC9: {"CMP", ModeImmediateM, doCMP},
	0xCA: {"DEX", ModeImplied, doDEX},
	0xCB: {"WAI", ModeImplied, doWAI},
	0xCC: {"CPY", ModeAbsolute, doCPY},
	0xCD: {"CMP", ModeAbsolute, doCMP},
	0xCE: {"DEC", ModeAbsolute, doDEC},
	0xCF: {"CMP", ModeLong, doCMP},

	0xD0: {"BNE", ModeRelative8, doBNE},
	0xD1: {"CMP", ModeDirectIndirectIndexed, doCMP},
	0xD2: {"CMP", ModeDirectIndirect, doCMP},
	0xD3: {"CMP", ModeStackRelativeIndirectIndexed, doCMP},
	0xD4: {"PEI", ModeImplied, doPEI},
	0xD5: {"CMP", ModeDirectX, doCMP},
	0xD6: {"DEC", ModeDirectX, doDEC},
	0xD7: {"CMP", ModeDirectIndirectIndexedLong, doCMP},
	0xD8: {"CLD", ModeImplied, doCLD},
	0xD9: {"CMP", ModeAbsoluteY, doCMP},
	0xDA: {"PHX", ModeImplied, doPHX},
	0xDB: {"STP", ModeImplied, doSTP},
	0xDC: {"JML", ModeAbsoluteIndirectLong, doJML},
	0xDD: {"CMP", ModeAbsoluteX, doCMP},
	0xDE: {"DEC", ModeAbsoluteX, doDEC},
	0xDF: {"CMP", ModeLongX, doCMP},

	0xE0: {"CPX", ModeImmediateX, doCPX},
	0xE1: {"SBC", ModeDirectIndexedIndirect, doSBC},
	0xE2: {"SEP", ModeImmediate8, doSEP},
	0xE3: {"SBC", ModeStackRelative, doSBC},
	0xE4: {"CPX", ModeDirect, doCPX},
	0xE5: {"SBC", ModeDirect, doSBC},
	0xE6: {"INC", ModeDirect, doINC},
	0xE7: {"SBC", ModeDirectIndirectLong, doSBC},
	0xE8: {"INX", ModeImplied, doINX},
	0xE9: {"SBC", ModeImmediateM, doSBC},
	0xEA: {"NOP", ModeImplied, doNOP},
	0xEB: {"XBA", ModeImplied, doXBA},
	0xEC: {"CPX", ModeAbsolute, doCPX},
	0xED: {"SBC", ModeAbsolute, doSBC},
	0xEE: {"INC", ModeAbsolute, doINC},
	0xEF: {"SBC", ModeLong, doSBC},

	0xF0: {"BEQ", ModeRelative8, doBEQ},
	0xF1: {"SBC", ModeDirectIndirectIndexed, doSBC},
	0xF2: {"SBC", ModeDirectIndirect, doSBC},
	0xF3: {"SBC", ModeStackRelativeIndirectIndexed, doSBC},
	0xF4: {"PEA", ModeImplied, doPEA},
	0xF5: {"SBC", ModeDirectX, doSBC},
	0xF6: {"INC", ModeDirectX, doINC},
	0xF7: {"SBC", ModeDirectIndirectIndexedLong, doSBC},
	0xF8: {"SED", ModeImplied, doSED},
	0xF9: {"SBC", ModeAbsoluteY, doSBC},
	0xFA: {"PLX", ModeImplied, doPLX},
	0xFB: {"XCE", ModeImplied, doXCE},
	0xFC: {"JSR", ModeAbsoluteIndexedIndirect, doJSR},
	0xFD: {"SBC", ModeAbsoluteX, doSBC},
	0xFE: {"INC", ModeAbsoluteX, doINC},
	0xFF: {"SBC", ModeLongX, doSBC},
}
