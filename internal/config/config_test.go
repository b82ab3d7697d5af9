package config

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/z80disasm/internal/assembler"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateFileWriterConstructor(t *testing.T) {
	image := []byte{0x00}
	app := program.New(image, 0)
	app.Append(program.Instruction{Mnemonic: "NOP", OpcodeBytes: image, Type: program.CodeType})

	tests := []struct {
		format   string
		expected string
	}{
		{assembler.Listing, "NOP                     ;0000:  00"},
		{assembler.Asm, "  ORG 0000H"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			constructor, err := CreateFileWriterConstructor(tt.format)
			assert.NoError(t, err)

			buf := &bytes.Buffer{}
			opts := options.NewDisassembler(tt.format, "ascii")
			assert.NoError(t, constructor(app, opts, buf).Write())
			assert.Contains(t, buf.String(), tt.expected)
		})
	}

	_, err := CreateFileWriterConstructor("hex")
	assert.ErrorContains(t, err, "unsupported output format")
}
