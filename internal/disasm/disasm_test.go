package disasm

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/arch/z80"
	"github.com/retroenv/z80disasm/internal/assembler"
	"github.com/retroenv/z80disasm/internal/cursor"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
)

func newTestDisasm(t *testing.T, image []byte, org int) *Disasm {
	t.Helper()

	opts := options.NewDisassembler(assembler.Listing, "ascii")
	opts.Org = org
	return New(log.NewTestLogger(t), z80.New(), image, opts)
}

func TestDisasm_DecodeNext(t *testing.T) {
	dis := newTestDisasm(t, []byte{0x00, 0xC3, 0x34, 0x12}, 0)
	assert.False(t, dis.IsExhausted())
	assert.Equal(t, 0, len(dis.Instructions()))

	ins, err := dis.DecodeNext()
	assert.NoError(t, err)
	assert.Equal(t, 0, ins.Offset)
	assert.Equal(t, "NOP", ins.Mnemonic)
	assert.Equal(t, []byte{0x00}, ins.OpcodeBytes)
	assert.False(t, dis.IsExhausted())

	ins, err = dis.DecodeNext()
	assert.NoError(t, err)
	assert.Equal(t, 1, ins.Offset)
	assert.Equal(t, "JP 1234H", ins.Mnemonic)
	assert.Equal(t, []byte{0xC3, 0x34, 0x12}, ins.OpcodeBytes)
	assert.True(t, dis.IsExhausted())

	_, err = dis.DecodeNext()
	assert.True(t, errors.Is(err, ErrExhausted))
	assert.Equal(t, 2, len(dis.Instructions()))
}

func TestDisasm_Process(t *testing.T) {
	image := []byte{
		0x31, 0x00, 0xF0, // LD SP,0F000H
		0xED, // unsupported prefix
		0x44,
		0xDD, 0x00, // index opcode without entry
		0x10, 0xFE, // DJNZ 0FEH
		0xC9, // RET
	}
	dis := newTestDisasm(t, image, 0x100)

	app, err := dis.Process()
	assert.NoError(t, err)
	assert.True(t, dis.IsExhausted())
	assert.Equal(t, image, app.Bytes())

	expected := []struct {
		offset   int
		mnemonic string
		typ      program.InstructionType
	}{
		{0, "LD SP,0F000H", program.CodeType},
		{3, z80.UnknownMnemonic, program.UnsupportedPrefix},
		{4, "LD B,H", program.CodeType},
		{5, z80.UnknownMnemonic, program.UnsupportedPrefix},
		{7, "DJNZ 0FEH", program.CodeType | program.RelativeBranch},
		{9, "RET", program.CodeType},
	}

	assert.Equal(t, len(expected), len(app.Instructions))
	for i, exp := range expected {
		ins := app.Instructions[i]
		assert.Equal(t, exp.offset, ins.Offset)
		assert.Equal(t, exp.mnemonic, ins.Mnemonic)
		assert.Equal(t, exp.typ, ins.Type)
	}

	assert.Equal(t, 0x107, app.Address(app.Instructions[4]))
	assert.Equal(t, 0x107, app.TargetAddress(app.Instructions[4]))
}

func TestDisasm_ProcessTruncated(t *testing.T) {
	dis := newTestDisasm(t, []byte{0x00, 0xC3, 0x34}, 0)

	app, err := dis.Process()
	var truncatedErr *TruncatedError
	assert.True(t, errors.As(err, &truncatedErr))
	assert.True(t, errors.Is(err, cursor.ErrOutOfRange))
	assert.Equal(t, 1, truncatedErr.Offset)
	assert.Equal(t, []byte{0xC3, 0x34}, truncatedErr.Data)
	assert.True(t, dis.IsExhausted())

	assert.NotNil(t, app)
	assert.Equal(t, 2, len(app.Instructions))
	dump := app.Instructions[1]
	assert.Equal(t, "DB 0C3H,34H", dump.Mnemonic)
	assert.True(t, dump.IsType(program.DataType))
	assert.Equal(t, []byte{0x00, 0xC3, 0x34}, app.Bytes())

	_, err = dis.DecodeNext()
	assert.True(t, errors.Is(err, ErrExhausted))
}

func TestDisasm_Idempotent(t *testing.T) {
	image := make([]byte, 0, 512)
	for i := range 256 {
		image = append(image, byte(i), byte(255-i))
	}

	first, err1 := newTestDisasm(t, image, 0).Process()
	second, err2 := newTestDisasm(t, image, 0).Process()
	assert.Equal(t, err1 == nil, err2 == nil)
	assert.Equal(t, len(first.Instructions), len(second.Instructions))
	for i := range first.Instructions {
		assert.Equal(t, first.Instructions[i], second.Instructions[i])
	}
}

func TestDisasm_OrgDoesNotChangeDecoding(t *testing.T) {
	image := []byte{0x18, 0x02, 0x21, 0x00, 0x80}

	base, err := newTestDisasm(t, image, 0).Process()
	assert.NoError(t, err)
	moved, err := newTestDisasm(t, image, 0x8000).Process()
	assert.NoError(t, err)

	for i := range base.Instructions {
		assert.Equal(t, base.Instructions[i], moved.Instructions[i])
		assert.Equal(t, base.Address(base.Instructions[i])+0x8000, moved.Address(moved.Instructions[i]))
	}
}

func TestDisasm_InstructionsIsCopy(t *testing.T) {
	dis := newTestDisasm(t, []byte{0x00, 0x00}, 0)
	_, err := dis.Process()
	assert.NoError(t, err)

	instructions := dis.Instructions()
	instructions[0].Mnemonic = "changed"
	assert.Equal(t, "NOP", dis.Instructions()[0].Mnemonic)
}

func TestDisasm_Empty(t *testing.T) {
	dis := newTestDisasm(t, nil, 0)
	assert.True(t, dis.IsExhausted())

	app, err := dis.Process()
	assert.NoError(t, err)
	assert.Equal(t, 0, len(app.Instructions))
}
