// Package listing writes a disassembly listing with the address, opcode bytes
// and characters of every instruction in comment columns.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
	"github.com/retroenv/z80disasm/internal/writer"
)

const (
	mnemonicWidth = 20
	byteColumns   = 4
)

// FileWriter writes the listing file content.
type FileWriter struct {
	app        *program.Program
	options    options.Disassembler
	mainWriter io.Writer
}

// New creates a new listing writer.
// nolint: ireturn
func New(app *program.Program, options options.Disassembler, mainWriter io.Writer) writer.AssemblerWriter {
	return FileWriter{
		app:        app,
		options:    options,
		mainWriter: mainWriter,
	}
}

// Write writes one line per decoded instruction.
func (f FileWriter) Write() error {
	glyphs, err := writer.NewGlyphMapper(f.options.Charset)
	if err != nil {
		return fmt.Errorf("creating glyph mapper: %w", err)
	}

	for _, ins := range f.app.Instructions {
		line := f.formatLine(ins, glyphs)
		if _, err := fmt.Fprintln(f.mainWriter, line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

func (f FileWriter) formatLine(ins program.Instruction, glyphs writer.GlyphMapper) string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%-*s    ;%04x:  ", mnemonicWidth, ins.Mnemonic, f.app.Address(ins))

	for _, b := range ins.OpcodeBytes {
		fmt.Fprintf(buf, "%02X ", b)
	}
	if padding := byteColumns - len(ins.OpcodeBytes); padding > 0 {
		buf.WriteString(strings.Repeat("   ", padding))
	}

	buf.WriteString(glyphs.Glyphs(ins.OpcodeBytes))
	return buf.String()
}
