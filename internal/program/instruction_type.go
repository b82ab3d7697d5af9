package program

// InstructionType defines the type of a decoded instruction.
type InstructionType uint8

// instruction types.
const (
	UnknownType InstructionType = 0
	CodeType    InstructionType = 1 << iota
	DataType                    // raw byte dump of a truncated instruction
	Unknown                     // undocumented DD CB / FD CB form
	UnsupportedPrefix           // ED prefix or DD/FD secondary byte without a table entry
	RelativeBranch              // Target contains the branch destination
)

// IsType returns whether the instruction is of given type.
func (i *Instruction) IsType(typ InstructionType) bool {
	return i.Type&typ != 0
}

// SetType sets the type of the instruction.
func (i *Instruction) SetType(typ InstructionType) {
	i.Type |= typ
}

// ClearType unsets the type of the instruction.
func (i *Instruction) ClearType(typ InstructionType) {
	mask := ^(typ)
	i.Type &= mask
}

// HexCodeComment returns the opcode bytes as hex values separated by spaces.
func (i *Instruction) HexCodeComment() string {
	buf := make([]byte, 0, len(i.OpcodeBytes)*3)
	for j, b := range i.OpcodeBytes {
		if j > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	return string(buf)
}

const hexDigits = "0123456789ABCDEF"
