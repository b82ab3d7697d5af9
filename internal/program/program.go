// Package program represents a disassembled Z80 program.
package program

import "hash/crc32"

// Instruction is a single decoded record of the program.
type Instruction struct {
	Offset      int    // position in the image where the opcode began
	Mnemonic    string // rendered instruction text
	OpcodeBytes []byte // all bytes that are part of the instruction

	Type   InstructionType
	Target int // image offset a relative branch points to, only set for RelativeBranch
}

// Program is the append only sequence of decoded instructions in program order.
type Program struct {
	Org          int // display bias for addresses, does not influence decoding
	Size         int // size of the decoded image
	Checksum     uint32
	Instructions []Instruction
}

// New creates a new program for the given image.
func New(image []byte, org int) *Program {
	return &Program{
		Org:      org,
		Size:     len(image),
		Checksum: crc32.ChecksumIEEE(image),
	}
}

// Append adds an instruction to the end of the program.
func (p *Program) Append(ins Instruction) {
	p.Instructions = append(p.Instructions, ins)
}

// Address returns the display address of an instruction.
func (p *Program) Address(ins Instruction) int {
	return p.Org + ins.Offset
}

// TargetAddress returns the display address of the branch target of an instruction.
func (p *Program) TargetAddress(ins Instruction) int {
	return p.Org + ins.Target
}

// Bytes returns the concatenated opcode bytes of all instructions.
func (p *Program) Bytes() []byte {
	data := make([]byte, 0, p.Size)
	for _, ins := range p.Instructions {
		data = append(data, ins.OpcodeBytes...)
	}
	return data
}

// Count returns the number of instructions that are of the given type.
func (p *Program) Count(typ InstructionType) int {
	var n int
	for _, ins := range p.Instructions {
		if ins.IsType(typ) {
			n++
		}
	}
	return n
}
