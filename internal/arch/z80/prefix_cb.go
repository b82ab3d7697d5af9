package z80

// bitGroups maps the upper 5 bits of a CB prefixed opcode to the operation,
// including the separator to the operand.
var bitGroups = [32]string{
	"RLC ", "RRC ", "RL ", "RR ", "SLA ", "SRA ", "SLL ", "SRL ",
	"BIT 0,", "BIT 1,", "BIT 2,", "BIT 3,", "BIT 4,", "BIT 5,", "BIT 6,", "BIT 7,",
	"RES 0,", "RES 1,", "RES 2,", "RES 3,", "RES 4,", "RES 5,", "RES 6,", "RES 7,",
	"SET 0,", "SET 1,", "SET 2,", "SET 3,", "SET 4,", "SET 5,", "SET 6,", "SET 7,",
}

// bitGroup returns the operation part of a CB prefixed opcode.
func bitGroup(op byte) string {
	return bitGroups[(op&0xF8)>>3]
}

// bitOpMnemonic renders a CB prefixed opcode with its register operand.
func bitOpMnemonic(op byte) string {
	return bitGroup(op) + registers[op&0x07]
}
