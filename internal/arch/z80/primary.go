package z80

// primaryOpcodes maps every unprefixed opcode byte to its description.
var primaryOpcodes = [256]Opcode{
	0x00: {Mnemonic: "NOP"},
	0x01: {Mnemonic: "LD BC,nn", Operands: addr16},
	0x02: {Mnemonic: "LD (BC),A"},
	0x03: {Mnemonic: "INC BC"},
	0x04: {Mnemonic: "INC B"},
	0x05: {Mnemonic: "DEC B"},
	0x06: {Mnemonic: "LD B,n", Operands: imm8},
	0x07: {Mnemonic: "RLCA"},
	0x08: {Mnemonic: "EX AF,AF'"},
	0x09: {Mnemonic: "ADD HL,BC"},
	0x0A: {Mnemonic: "LD A,(BC)"},
	0x0B: {Mnemonic: "DEC BC"},
	0x0C: {Mnemonic: "INC C"},
	0x0D: {Mnemonic: "DEC C"},
	0x0E: {Mnemonic: "LD C,n", Operands: imm8},
	0x0F: {Mnemonic: "RRCA"},

	0x10: {Mnemonic: "DJNZ e", Operands: rel8},
	0x11: {Mnemonic: "LD DE,nn", Operands: addr16},
	0x12: {Mnemonic: "LD (DE),A"},
	0x13: {Mnemonic: "INC DE"},
	0x14: {Mnemonic: "INC D"},
	0x15: {Mnemonic: "DEC D"},
	0x16: {Mnemonic: "LD D,n", Operands: imm8},
	0x17: {Mnemonic: "RLA"},
	0x18: {Mnemonic: "JR e", Operands: rel8},
	0x19: {Mnemonic: "ADD HL,DE"},
	0x1A: {Mnemonic: "LD A,(DE)"},
	0x1B: {Mnemonic: "DEC DE"},
	0x1C: {Mnemonic: "INC E"},
	0x1D: {Mnemonic: "DEC E"},
	0x1E: {Mnemonic: "LD E,n", Operands: imm8},
	0x1F: {Mnemonic: "RRA"},

	0x20: {Mnemonic: "JR NZ,e", Operands: rel8},
	0x21: {Mnemonic: "LD HL,nn", Operands: addr16},
	0x22: {Mnemonic: "LD (nn),HL", Operands: addr16},
	0x23: {Mnemonic: "INC HL"},
	0x24: {Mnemonic: "INC H"},
	0x25: {Mnemonic: "DEC H"},
	0x26: {Mnemonic: "LD H,n", Operands: imm8},
	0x27: {Mnemonic: "DAA"},
	0x28: {Mnemonic: "JR Z,e", Operands: rel8},
	0x29: {Mnemonic: "ADD HL,HL"},
	0x2A: {Mnemonic: "LD HL,(nn)", Operands: addr16},
	0x2B: {Mnemonic: "DEC HL"},
	0x2C: {Mnemonic: "INC L"},
	0x2D: {Mnemonic: "DEC L"},
	0x2E: {Mnemonic: "LD L,n", Operands: imm8},
	0x2F: {Mnemonic: "CPL"},

	0x30: {Mnemonic: "JR NC,e", Operands: rel8},
	0x31: {Mnemonic: "LD SP,nn", Operands: addr16},
	0x32: {Mnemonic: "LD (nn),A", Operands: addr16},
	0x33: {Mnemonic: "INC SP"},
	0x34: {Mnemonic: "INC (HL)"},
	0x35: {Mnemonic: "DEC (HL)"},
	0x36: {Mnemonic: "LD (HL),n", Operands: imm8},
	0x37: {Mnemonic: "SCF"},
	0x38: {Mnemonic: "JR C,e", Operands: rel8},
	0x39: {Mnemonic: "ADD HL,SP"},
	0x3A: {Mnemonic: "LD A,(nn)", Operands: addr16},
	0x3B: {Mnemonic: "DEC SP"},
	0x3C: {Mnemonic: "INC A"},
	0x3D: {Mnemonic: "DEC A"},
	0x3E: {Mnemonic: "LD A,n", Operands: imm8},
	0x3F: {Mnemonic: "CCF"},

	0x40: {Mnemonic: "LD B,B"},
	0x41: {Mnemonic: "LD B,C"},
	0x42: {Mnemonic: "LD B,D"},
	0x43: {Mnemonic: "LD B,E"},
	0x44: {Mnemonic: "LD B,H"},
	0x45: {Mnemonic: "LD B,L"},
	0x46: {Mnemonic: "LD B,(HL)"},
	0x47: {Mnemonic: "LD B,A"},
	0x48: {Mnemonic: "LD C,B"},
	0x49: {Mnemonic: "LD C,C"},
	0x4A: {Mnemonic: "LD C,D"},
	0x4B: {Mnemonic: "LD C,E"},
	0x4C: {Mnemonic: "LD C,H"},
	0x4D: {Mnemonic: "LD C,L"},
	0x4E: {Mnemonic: "LD C,(HL)"},
	0x4F: {Mnemonic: "LD C,A"},

	0x50: {Mnemonic: "LD D,B"},
	0x51: {Mnemonic: "LD D,C"},
	0x52: {Mnemonic: "LD D,D"},
	0x53: {Mnemonic: "LD D,E"},
	0x54: {Mnemonic: "LD D,H"},
	0x55: {Mnemonic: "LD D,L"},
	0x56: {Mnemonic: "LD D,(HL)"},
	0x57: {Mnemonic: "LD D,A"},
	0x58: {Mnemonic: "LD E,B"},
	0x59: {Mnemonic: "LD E,C"},
	0x5A: {Mnemonic: "LD E,D"},
	0x5B: {Mnemonic: "LD E,E"},
	0x5C: {Mnemonic: "LD E,H"},
	0x5D: {Mnemonic: "LD E,L"},
	0x5E: {Mnemonic: "LD E,(HL)"},
	0x5F: {Mnemonic: "LD E,A"},

	0x60: {Mnemonic: "LD H,B"},
	0x61: {Mnemonic: "LD H,C"},
	0x62: {Mnemonic: "LD H,D"},
	0x63: {Mnemonic: "LD H,E"},
	0x64: {Mnemonic: "LD H,H"},
	0x65: {Mnemonic: "LD H,L"},
	0x66: {Mnemonic: "LD H,(HL)"},
	0x67: {Mnemonic: "LD H,A"},
	0x68: {Mnemonic: "LD L,B"},
	0x69: {Mnemonic: "LD L,C"},
	0x6A: {Mnemonic: "LD L,D"},
	0x6B: {Mnemonic: "LD L,E"},
	0x6C: {Mnemonic: "LD L,H"},
	0x6D: {Mnemonic: "LD L,L"},
	0x6E: {Mnemonic: "LD L,(HL)"},
	0x6F: {Mnemonic: "LD L,A"},

	0x70: {Mnemonic: "LD (HL),B"},
	0x71: {Mnemonic: "LD (HL),C"},
	0x72: {Mnemonic: "LD (HL),D"},
	0x73: {Mnemonic: "LD (HL),E"},
	0x74: {Mnemonic: "LD (HL),H"},
	0x75: {Mnemonic: "LD (HL),L"},
	0x76: {Mnemonic: "HALT"},
	0x77: {Mnemonic: "LD (HL),A"},
	0x78: {Mnemonic: "LD A,B"},
	0x79: {Mnemonic: "LD A,C"},
	0x7A: {Mnemonic: "LD A,D"},
	0x7B: {Mnemonic: "LD A,E"},
	0x7C: {Mnemonic: "LD A,H"},
	0x7D: {Mnemonic: "LD A,L"},
	0x7E: {Mnemonic: "LD A,(HL)"},
	0x7F: {Mnemonic: "LD A,A"},

	0x80: {Mnemonic: "ADD A,B"},
	0x81: {Mnemonic: "ADD A,C"},
	0x82: {Mnemonic: "ADD A,D"},
	0x83: {Mnemonic: "ADD A,E"},
	0x84: {Mnemonic: "ADD A,H"},
	0x85: {Mnemonic: "ADD A,L"},
	0x86: {Mnemonic: "ADD A,(HL)"},
	0x87: {Mnemonic: "ADD A,A"},
	0x88: {Mnemonic: "ADC A,B"},
	0x89: {Mnemonic: "ADC A,C"},
	0x8A: {Mnemonic: "ADC A,D"},
	0x8B: {Mnemonic: "ADC A,E"},
	0x8C: {Mnemonic: "ADC A,H"},
	0x8D: {Mnemonic: "ADC A,L"},
	0x8E: {Mnemonic: "ADC A,(HL)"},
	0x8F: {Mnemonic: "ADC A,A"},

	0x90: {Mnemonic: "SUB B"},
	0x91: {Mnemonic: "SUB C"},
	0x92: {Mnemonic: "SUB D"},
	0x93: {Mnemonic: "SUB E"},
	0x94: {Mnemonic: "SUB H"},
	0x95: {Mnemonic: "SUB L"},
	0x96: {Mnemonic: "SUB (HL)"},
	0x97: {Mnemonic: "SUB A"},
	0x98: {Mnemonic: "SBC A,B"},
	0x99: {Mnemonic: "SBC A,C"},
	0x9A: {Mnemonic: "SBC A,D"},
	0x9B: {Mnemonic: "SBC A,E"},
	0x9C: {Mnemonic: "SBC A,H"},
	0x9D: {Mnemonic: "SBC A,L"},
	0x9E: {Mnemonic: "SBC A,(HL)"},
	0x9F: {Mnemonic: "SBC A,A"},

	0xA0: {Mnemonic: "AND B"},
	0xA1: {Mnemonic: "AND C"},
	0xA2: {Mnemonic: "AND D"},
	0xA3: {Mnemonic: "AND E"},
	0xA4: {Mnemonic: "AND H"},
	0xA5: {Mnemonic: "AND L"},
	0xA6: {Mnemonic: "AND (HL)"},
	0xA7: {Mnemonic: "AND A"},
	0xA8: {Mnemonic: "XOR B"},
	0xA9: {Mnemonic: "XOR C"},
	0xAA: {Mnemonic: "XOR D"},
	0xAB: {Mnemonic: "XOR E"},
	0xAC: {Mnemonic: "XOR H"},
	0xAD: {Mnemonic: "XOR L"},
	0xAE: {Mnemonic: "XOR (HL)"},
	0xAF: {Mnemonic: "XOR A"},

	0xB0: {Mnemonic: "OR B"},
	0xB1: {Mnemonic: "OR C"},
	0xB2: {Mnemonic: "OR D"},
	0xB3: {Mnemonic: "OR E"},
	0xB4: {Mnemonic: "OR H"},
	0xB5: {Mnemonic: "OR L"},
	0xB6: {Mnemonic: "OR (HL)"},
	0xB7: {Mnemonic: "OR A"},
	0xB8: {Mnemonic: "CP B"},
	0xB9: {Mnemonic: "CP C"},
	0xBA: {Mnemonic: "CP D"},
	0xBB: {Mnemonic: "CP E"},
	0xBC: {Mnemonic: "CP H"},
	0xBD: {Mnemonic: "CP L"},
	0xBE: {Mnemonic: "CP (HL)"},
	0xBF: {Mnemonic: "CP A"},

	0xC0: {Mnemonic: "RET NZ"},
	0xC1: {Mnemonic: "POP BC"},
	0xC2: {Mnemonic: "JP NZ,nn", Operands: addr16},
	0xC3: {Mnemonic: "JP nn", Operands: addr16},
	0xC4: {Mnemonic: "CALL NZ,nn", Operands: addr16},
	0xC5: {Mnemonic: "PUSH BC"},
	0xC6: {Mnemonic: "ADD A,n", Operands: imm8},
	0xC7: {Mnemonic: "RST 00H"},
	0xC8: {Mnemonic: "RET Z"},
	0xC9: {Mnemonic: "RET"},
	0xCA: {Mnemonic: "JP Z,nn", Operands: addr16},
	0xCB: {Prefix: true},
	0xCC: {Mnemonic: "CALL Z,nn", Operands: addr16},
	0xCD: {Mnemonic: "CALL nn", Operands: addr16},
	0xCE: {Mnemonic: "ADC A,n", Operands: imm8},
	0xCF: {Mnemonic: "RST 08H"},

	0xD0: {Mnemonic: "RET NC"},
	0xD1: {Mnemonic: "POP DE"},
	0xD2: {Mnemonic: "JP NC,nn", Operands: addr16},
	0xD3: {Mnemonic: "OUT (n),A", Operands: imm8},
	0xD4: {Mnemonic: "CALL NC,nn", Operands: addr16},
	0xD5: {Mnemonic: "PUSH DE"},
	0xD6: {Mnemonic: "SUB n", Operands: imm8},
	0xD7: {Mnemonic: "RST 10H"},
	0xD8: {Mnemonic: "RET C"},
	0xD9: {Mnemonic: "EXX"},
	0xDA: {Mnemonic: "JP C,nn", Operands: addr16},
	0xDB: {Mnemonic: "IN A,(n)", Operands: imm8},
	0xDC: {Mnemonic: "CALL C,nn", Operands: addr16},
	0xDD: {Prefix: true},
	0xDE: {Mnemonic: "SBC A,n", Operands: imm8},
	0xDF: {Mnemonic: "RST 18H"},

	0xE0: {Mnemonic: "RET PO"},
	0xE1: {Mnemonic: "POP HL"},
	0xE2: {Mnemonic: "JP PO,nn", Operands: addr16},
	0xE3: {Mnemonic: "EX (SP),HL"},
	0xE4: {Mnemonic: "CALL PO,nn", Operands: addr16},
	0xE5: {Mnemonic: "PUSH HL"},
	0xE6: {Mnemonic: "AND n", Operands: imm8},
	0xE7: {Mnemonic: "RST 20H"},
	0xE8: {Mnemonic: "RET PE"},
	0xE9: {Mnemonic: "JP (HL)"},
	0xEA: {Mnemonic: "JP PE,nn", Operands: addr16},
	0xEB: {Mnemonic: "EX DE,HL"},
	0xEC: {Mnemonic: "CALL PE,nn", Operands: addr16},
	0xED: {Prefix: true},
	0xEE: {Mnemonic: "XOR n", Operands: imm8},
	0xEF: {Mnemonic: "RST 28H"},

	0xF0: {Mnemonic: "RET P"},
	0xF1: {Mnemonic: "POP AF"},
	0xF2: {Mnemonic: "JP P,nn", Operands: addr16},
	0xF3: {Mnemonic: "DI"},
	0xF4: {Mnemonic: "CALL P,nn", Operands: addr16},
	0xF5: {Mnemonic: "PUSH AF"},
	0xF6: {Mnemonic: "OR n", Operands: imm8},
	0xF7: {Mnemonic: "RST 30H"},
	0xF8: {Mnemonic: "RET M"},
	0xF9: {Mnemonic: "LD SP,HL"},
	0xFA: {Mnemonic: "JP M,nn", Operands: addr16},
	0xFB: {Mnemonic: "EI"},
	0xFC: {Mnemonic: "CALL M,nn", Operands: addr16},
	0xFD: {Prefix: true},
	0xFE: {Mnemonic: "CP n", Operands: imm8},
	0xFF: {Mnemonic: "RST 38H"},
}
