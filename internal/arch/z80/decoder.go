package z80

import (
	"fmt"
	"strings"

	"github.com/retroenv/z80disasm/internal/arch"
	"github.com/retroenv/z80disasm/internal/cursor"
	"github.com/retroenv/z80disasm/internal/operand"
	"github.com/retroenv/z80disasm/internal/program"
)

// Decoder decodes Z80 instructions. It holds no state, all state is kept by
// the cursor that is passed to Decode.
type Decoder struct{}

var _ arch.Architecture = (*Decoder)(nil)

// New returns a new Z80 decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode decodes the instruction at the cursor position and advances the
// cursor past all bytes of the instruction.
// If the image ends inside of the instruction, the returned instruction
// contains the bytes that could be read and the error wraps cursor.ErrOutOfRange.
func (d *Decoder) Decode(c *cursor.Cursor) (program.Instruction, error) {
	f := c.Begin()
	b, err := f.Byte()
	if err != nil {
		return partial(f), fmt.Errorf("reading opcode: %w", err)
	}

	op := primaryOpcodes[b]
	if !op.Prefix {
		return render(f, op, "")
	}

	switch b {
	case PrefixBit:
		return decodeBitOp(f)
	case PrefixIX, PrefixIY:
		return decodeIndexed(f, indexRegister(b))
	default: // PrefixExtended has no sub table
		return unknown(f, program.UnsupportedPrefix), nil
	}
}

// decodeBitOp decodes the secondary byte of a CB prefixed instruction.
func decodeBitOp(f *cursor.Fetch) (program.Instruction, error) {
	op, err := f.Byte()
	if err != nil {
		return partial(f), fmt.Errorf("reading CB opcode: %w", err)
	}

	return program.Instruction{
		Offset:      f.Start(),
		Mnemonic:    bitOpMnemonic(op),
		OpcodeBytes: f.Bytes(),
		Type:        program.CodeType,
	}, nil
}

// decodeIndexed decodes the secondary byte of a DD or FD prefixed instruction.
// Secondary bytes without a table entry are marked as unsupported prefix.
func decodeIndexed(f *cursor.Fetch, index string) (program.Instruction, error) {
	b, err := f.Byte()
	if err != nil {
		return partial(f), fmt.Errorf("reading %s opcode: %w", index, err)
	}

	op := indexOpcodes[b]
	switch {
	case op.Prefix:
		return decodeIndexedBitOp(f, index)
	case op.Mnemonic == "":
		return unknown(f, program.UnsupportedPrefix), nil
	default:
		return render(f, op, index)
	}
}

// decodeIndexedBitOp decodes DD CB d op and FD CB d op, the displacement
// precedes the opcode byte. Only the documented (ii+d) forms are supported.
func decodeIndexedBitOp(f *cursor.Fetch, index string) (program.Instruction, error) {
	disp, err := f.Byte()
	if err != nil {
		return partial(f), fmt.Errorf("reading %s displacement: %w", index, err)
	}
	op, err := f.Byte()
	if err != nil {
		return partial(f), fmt.Errorf("reading %s CB opcode: %w", index, err)
	}

	if op&0x07 != 0x06 {
		return unknown(f, program.Unknown), nil
	}

	return program.Instruction{
		Offset:      f.Start(),
		Mnemonic:    bitGroup(op) + "(" + index + operand.Signed(disp) + ")",
		OpcodeBytes: f.Bytes(),
		Type:        program.CodeType,
	}, nil
}

// render reads all operands of the opcode and fills them into the mnemonic template.
func render(f *cursor.Fetch, op Opcode, index string) (program.Instruction, error) {
	ins := program.Instruction{
		Offset: f.Start(),
		Type:   program.CodeType,
	}

	mnemonic := op.Mnemonic
	if index != "" {
		mnemonic = strings.ReplaceAll(mnemonic, indexPlaceholder, index)
	}

	for _, kind := range op.Operands {
		text, err := readOperand(f, kind, &ins)
		if err != nil {
			return partial(f), fmt.Errorf("reading operand of '%s': %w", op.Mnemonic, err)
		}
		mnemonic = strings.Replace(mnemonic, kind.Placeholder(), text, 1)
	}

	ins.Mnemonic = mnemonic
	ins.OpcodeBytes = f.Bytes()
	return ins, nil
}

func readOperand(f *cursor.Fetch, kind OperandKind, ins *program.Instruction) (string, error) {
	if kind == Address {
		w, err := f.Word()
		if err != nil {
			return "", err
		}
		return operand.HexWord(w), nil
	}

	b, err := f.Byte()
	if err != nil {
		return "", err
	}

	switch kind {
	case Relative:
		// the displacement is relative to the address following the operand
		ins.Target = f.Position() + operand.Relative(b)
		ins.SetType(program.RelativeBranch)
		return operand.HexByte(b), nil
	case Displacement:
		return operand.Signed(b), nil
	default:
		return operand.HexByte(b), nil
	}
}

func unknown(f *cursor.Fetch, typ program.InstructionType) program.Instruction {
	return program.Instruction{
		Offset:      f.Start(),
		Mnemonic:    UnknownMnemonic,
		OpcodeBytes: f.Bytes(),
		Type:        typ,
	}
}

// partial returns the bytes of an instruction that could not be read completely.
func partial(f *cursor.Fetch) program.Instruction {
	return program.Instruction{
		Offset:      f.Start(),
		OpcodeBytes: f.Bytes(),
		Type:        program.DataType,
	}
}
