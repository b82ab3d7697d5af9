package z80

// indexOpcodes maps the secondary byte of DD and FD prefixed opcodes to the
// template of the instruction. The index register name replaces ii.
// Secondary bytes without an entry decode as unsupported prefix.
var indexOpcodes = [256]Opcode{
	0x09: {Mnemonic: "ADD ii,BC"},
	0x19: {Mnemonic: "ADD ii,DE"},
	0x21: {Mnemonic: "LD ii,nn", Operands: addr16},
	0x22: {Mnemonic: "LD (nn),ii", Operands: addr16},
	0x23: {Mnemonic: "INC ii"},
	0x24: {Mnemonic: "INC iiH"},
	0x25: {Mnemonic: "DEC iiH"},
	0x26: {Mnemonic: "LD iiH,n", Operands: imm8},
	0x29: {Mnemonic: "ADD ii,ii"},
	0x2A: {Mnemonic: "LD ii,(nn)", Operands: addr16},
	0x2B: {Mnemonic: "DEC ii"},
	0x2C: {Mnemonic: "INC iiL"},
	0x2D: {Mnemonic: "DEC iiL"},
	0x2E: {Mnemonic: "LD iiL,n", Operands: imm8},
	0x34: {Mnemonic: "INC (ii+d)", Operands: disp8},
	0x35: {Mnemonic: "DEC (ii+d)", Operands: disp8},
	0x36: {Mnemonic: "LD (ii+d),n", Operands: dispImm8},
	0x39: {Mnemonic: "ADD ii,SP"},

	0x44: {Mnemonic: "LD B,iiH"},
	0x45: {Mnemonic: "LD B,iiL"},
	0x46: {Mnemonic: "LD B,(ii+d)", Operands: disp8},
	0x4C: {Mnemonic: "LD C,iiH"},
	0x4D: {Mnemonic: "LD C,iiL"},
	0x4E: {Mnemonic: "LD C,(ii+d)", Operands: disp8},
	0x54: {Mnemonic: "LD D,iiH"},
	0x55: {Mnemonic: "LD D,iiL"},
	0x56: {Mnemonic: "LD D,(ii+d)", Operands: disp8},
	0x5C: {Mnemonic: "LD E,iiH"},
	0x5D: {Mnemonic: "LD E,iiL"},
	0x5E: {Mnemonic: "LD E,(ii+d)", Operands: disp8},

	0x60: {Mnemonic: "LD iiH,B"},
	0x61: {Mnemonic: "LD iiH,C"},
	0x62: {Mnemonic: "LD iiH,D"},
	0x63: {Mnemonic: "LD iiH,E"},
	0x64: {Mnemonic: "LD iiH,iiH"},
	0x65: {Mnemonic: "LD iiH,iiL"},
	0x66: {Mnemonic: "LD H,(ii+d)", Operands: disp8},
	0x67: {Mnemonic: "LD iiH,A"},
	0x68: {Mnemonic: "LD iiL,B"},
	0x69: {Mnemonic: "LD iiL,C"},
	0x6A: {Mnemonic: "LD iiL,D"},
	0x6B: {Mnemonic: "LD iiL,E"},
	0x6C: {Mnemonic: "LD iiL,iiH"},
	0x6D: {Mnemonic: "LD iiL,iiL"},
	0x6E: {Mnemonic: "LD L,(ii+d)", Operands: disp8},
	0x6F: {Mnemonic: "LD iiL,A"},

	0x70: {Mnemonic: "LD (ii+d),B", Operands: disp8},
	0x71: {Mnemonic: "LD (ii+d),C", Operands: disp8},
	0x72: {Mnemonic: "LD (ii+d),D", Operands: disp8},
	0x73: {Mnemonic: "LD (ii+d),E", Operands: disp8},
	0x74: {Mnemonic: "LD (ii+d),H", Operands: disp8},
	0x75: {Mnemonic: "LD (ii+d),L", Operands: disp8},
	0x77: {Mnemonic: "LD (ii+d),A", Operands: disp8},
	0x7C: {Mnemonic: "LD A,iiH"},
	0x7D: {Mnemonic: "LD A,iiL"},
	0x7E: {Mnemonic: "LD A,(ii+d)", Operands: disp8},

	0x84: {Mnemonic: "ADD A,iiH"},
	0x85: {Mnemonic: "ADD A,iiL"},
	0x86: {Mnemonic: "ADD A,(ii+d)", Operands: disp8},
	0x8C: {Mnemonic: "ADC A,iiH"},
	0x8D: {Mnemonic: "ADC A,iiL"},
	0x8E: {Mnemonic: "ADC A,(ii+d)", Operands: disp8},
	0x94: {Mnemonic: "SUB iiH"},
	0x95: {Mnemonic: "SUB iiL"},
	0x96: {Mnemonic: "SUB (ii+d)", Operands: disp8},
	0x9C: {Mnemonic: "SBC A,iiH"},
	0x9D: {Mnemonic: "SBC A,iiL"},
	0x9E: {Mnemonic: "SBC A,(ii+d)", Operands: disp8},

	0xA4: {Mnemonic: "AND iiH"},
	0xA5: {Mnemonic: "AND iiL"},
	0xA6: {Mnemonic: "AND (ii+d)", Operands: disp8},
	0xAC: {Mnemonic: "XOR iiH"},
	0xAD: {Mnemonic: "XOR iiL"},
	0xAE: {Mnemonic: "XOR (ii+d)", Operands: disp8},
	0xB4: {Mnemonic: "OR iiH"},
	0xB5: {Mnemonic: "OR iiL"},
	0xB6: {Mnemonic: "OR (ii+d)", Operands: disp8},
	0xBC: {Mnemonic: "CP iiH"},
	0xBD: {Mnemonic: "CP iiL"},
	0xBE: {Mnemonic: "CP (ii+d)", Operands: disp8},

	0xCB: {Prefix: true},
	0xE1: {Mnemonic: "POP ii"},
	0xE3: {Mnemonic: "EX (SP),ii"},
	0xE5: {Mnemonic: "PUSH ii"},
	0xE9: {Mnemonic: "JP (ii)"},
	0xF9: {Mnemonic: "LD SP,ii"},
}

// indexRegister returns the register name selected by a DD or FD prefix.
func indexRegister(prefix byte) string {
	if prefix == PrefixIY {
		return "IY"
	}
	return "IX"
}
