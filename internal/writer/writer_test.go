package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/z80disasm/internal/program"
)

func testProgram(org int) *program.Program {
	image := []byte{0x00, 0x18, 0xFC, 0xED, 0xDD, 0x00, 0xC3, 0x34}
	app := program.New(image, org)
	app.Append(program.Instruction{Offset: 0, Mnemonic: "NOP", OpcodeBytes: image[0:1], Type: program.CodeType})
	app.Append(program.Instruction{Offset: 1, Mnemonic: "JR 0FCH", OpcodeBytes: image[1:3],
		Type: program.CodeType | program.RelativeBranch, Target: -1})
	app.Append(program.Instruction{Offset: 3, Mnemonic: "Unknown", OpcodeBytes: image[3:4], Type: program.UnsupportedPrefix})
	app.Append(program.Instruction{Offset: 4, Mnemonic: "Unknown", OpcodeBytes: image[4:6], Type: program.Unknown})
	app.Append(program.Instruction{Offset: 6, Mnemonic: "DB 0C3H,34H", OpcodeBytes: image[6:8], Type: program.DataType})
	return app
}

func TestWriter_ProcessInstructions(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(testProgram(0x100), buf, Options{DataDirective: "DB", HexComments: true, OffsetComments: true})
	assert.NoError(t, w.ProcessInstructions())

	expected := "" +
		"  NOP                            ; 0100: 00\n" +
		"  JR 00FFH                       ; 0101: 18 FC\n" +
		"\n" +
		"  DB 0EDH                        ; 0103: unsupported prefix\n" +
		"  DB 0DDH,00H                    ; 0104: unknown opcode\n" +
		"  DB 0C3H,34H                    ; 0106: truncated instruction\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_ProcessInstructionsNoComments(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(testProgram(0), buf, Options{DataDirective: "DB"})
	assert.NoError(t, w.ProcessInstructions())

	expected := "" +
		"  NOP\n" +
		"  JR $-2\n" +
		"\n" +
		"  DB 0EDH                        ; unsupported prefix\n" +
		"  DB 0DDH,00H                    ; unknown opcode\n" +
		"  DB 0C3H,34H                    ; truncated instruction\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_BundleDataWrites(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i + 0xF0)
	}

	buf := &bytes.Buffer{}
	w := New(program.New(data, 0), buf, Options{DataDirective: "DB"})

	var counts []int
	err := w.BundleDataWrites(data, func(line string, byteCount int) error {
		counts = append(counts, byteCount)
		_, err := buf.WriteString(line + "\n")
		return err
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{16, 4}, counts)
	assert.Equal(t, "DB 0F0H,0F1H,0F2H,0F3H,0F4H,0F5H,0F6H,0F7H,0F8H,0F9H,0FAH,0FBH,0FCH,0FDH,0FEH,0FFH\n"+
		"DB 00H,01H,02H,03H\n", buf.String())
}

func TestWriter_WriteCommentHeader(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(program.New([]byte("123456789"), 0xC000), buf, Options{})
	assert.NoError(t, w.WriteCommentHeader())

	expected := "; CRC32 checksum: cbf43926\n" +
		"; Size: 9 bytes\n" +
		"; Origin: 0C000H\n\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriter_RelativeBranchTarget(t *testing.T) {
	tests := []struct {
		name     string
		org      int
		mnemonic string
		data     []byte
		offset   int
		target   int
		expected string
	}{
		{"backward", 0x100, "DJNZ 0FEH", []byte{0x10, 0xFE}, 2, 2, "DJNZ 0102H"},
		{"forward condition", 0x100, "JR NZ,05H", []byte{0x20, 0x05}, 0, 7, "JR NZ,0107H"},
		{"below address space", 0, "JR C,80H", []byte{0x38, 0x80}, 0, -126, "JR C,$-126"},
		{"above address space", 0xFFF0, "JR 7FH", []byte{0x18, 0x7F}, 0, 0x81, "JR $+129"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image := make([]byte, tt.offset+len(tt.data))
			copy(image[tt.offset:], tt.data)
			app := program.New(image, tt.org)
			ins := program.Instruction{Offset: tt.offset, Mnemonic: tt.mnemonic, OpcodeBytes: tt.data,
				Type: program.CodeType | program.RelativeBranch, Target: tt.target}

			w := New(app, &bytes.Buffer{}, Options{DataDirective: "DB"})
			assert.Equal(t, tt.expected, w.codeMnemonic(ins))
		})
	}
}
