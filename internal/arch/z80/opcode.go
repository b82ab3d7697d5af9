package z80

// OperandKind defines how the trailing bytes of an opcode are read and rendered.
type OperandKind uint8

// operand kinds.
const (
	Immediate    OperandKind = iota + 1 // unsigned byte, rendered as hex byte
	Address                             // unsigned little endian word, rendered as hex word
	Relative                            // signed byte relative to the next instruction
	Displacement                        // signed byte added to an index register
)

// Placeholder returns the text in a mnemonic template that the rendered operand replaces.
func (k OperandKind) Placeholder() string {
	switch k {
	case Immediate:
		return "n"
	case Address:
		return "nn"
	case Relative:
		return "e"
	case Displacement:
		return "+d"
	default:
		return ""
	}
}

// Size returns the number of bytes the operand occupies.
func (k OperandKind) Size() int {
	if k == Address {
		return 2
	}
	return 1
}

// indexPlaceholder is replaced by IX or IY in templates of the index register table.
const indexPlaceholder = "ii"

// Prefix bytes that redirect decoding into a secondary opcode table.
const (
	PrefixBit      = 0xCB
	PrefixIX       = 0xDD
	PrefixExtended = 0xED
	PrefixIY       = 0xFD
)

// Opcode describes a table entry.
type Opcode struct {
	Mnemonic string        // template, lower case parts are placeholders
	Operands []OperandKind // trailing operands in encoding order
	Prefix   bool          // byte redirects into a secondary table
}

// OperandSize returns the number of trailing bytes the opcode consumes.
func (o Opcode) OperandSize() int {
	var size int
	for _, kind := range o.Operands {
		size += kind.Size()
	}
	return size
}

// Defined returns whether the table entry describes an instruction or a prefix.
func (o Opcode) Defined() bool {
	return o.Mnemonic != "" || o.Prefix
}

// shared operand lists of the tables.
var (
	imm8     = []OperandKind{Immediate}
	addr16   = []OperandKind{Address}
	rel8     = []OperandKind{Relative}
	disp8    = []OperandKind{Displacement}
	dispImm8 = []OperandKind{Displacement, Immediate}
)

// registers lists the 8 bit operands in the order of their 3 bit encoding.
var registers = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// UnknownMnemonic is the mnemonic of opcode combinations without a table entry.
const UnknownMnemonic = "Unknown"
