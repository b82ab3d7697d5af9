package listing

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/z80disasm/internal/assembler"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
)

func TestFileWriter_Write(t *testing.T) {
	image := []byte{0x00, 0x3E, 0x41, 0xDD, 0x36, 0x02, 0xAA, 0xC3}
	app := program.New(image, 0x100)
	app.Append(program.Instruction{Offset: 0, Mnemonic: "NOP", OpcodeBytes: image[0:1], Type: program.CodeType})
	app.Append(program.Instruction{Offset: 1, Mnemonic: "LD A,41H", OpcodeBytes: image[1:3], Type: program.CodeType})
	app.Append(program.Instruction{Offset: 3, Mnemonic: "LD (IX+2),0AAH", OpcodeBytes: image[3:7], Type: program.CodeType})
	app.Append(program.Instruction{Offset: 7, Mnemonic: "DB 0C3H", OpcodeBytes: image[7:8], Type: program.DataType})

	tests := []struct {
		charset  string
		expected string
	}{
		{
			charset: "ascii",
			expected: "" +
				"NOP                     ;0100:  00           \n" +
				"LD A,41H                ;0101:  3E 41       >A\n" +
				"LD (IX+2),0AAH          ;0103:  DD 36 02 AA .6 .\n" +
				"DB 0C3H                 ;0107:  C3          .\n",
		},
		{
			charset: "latin1",
			expected: "" +
				"NOP                     ;0100:  00           \n" +
				"LD A,41H                ;0101:  3E 41       >A\n" +
				"LD (IX+2),0AAH          ;0103:  DD 36 02 AA Ý6 ª\n" +
				"DB 0C3H                 ;0107:  C3          Ã\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.charset, func(t *testing.T) {
			buf := &bytes.Buffer{}
			opts := options.NewDisassembler(assembler.Listing, tt.charset)
			assert.NoError(t, New(app, opts, buf).Write())
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestFileWriter_UnsupportedCharset(t *testing.T) {
	app := program.New(nil, 0)
	opts := options.NewDisassembler(assembler.Listing, "ebcdic")
	err := New(app, opts, &bytes.Buffer{}).Write()
	assert.ErrorContains(t, err, "unsupported charset")
}
