// Package asm writes Z80 assembly source that assembles back to the input image.
package asm

import (
	"fmt"
	"io"

	"github.com/retroenv/z80disasm/internal/operand"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
	"github.com/retroenv/z80disasm/internal/writer"
)

const dataDirective = "DB"

// FileWriter writes the assembly file content.
type FileWriter struct {
	app        *program.Program
	options    options.Disassembler
	mainWriter io.Writer
	writer     *writer.Writer
}

type customWrite func() error

type lineWrite string

// New creates a new file writer.
// nolint: ireturn
func New(app *program.Program, options options.Disassembler, mainWriter io.Writer) writer.AssemblerWriter {
	opts := writer.Options{
		DataDirective:  dataDirective,
		HexComments:    options.HexComments,
		OffsetComments: options.OffsetComments,
	}
	return FileWriter{
		app:        app,
		options:    options,
		mainWriter: mainWriter,
		writer:     writer.New(app, mainWriter, opts),
	}
}

// Write writes the assembly file content including header, origin, code and data.
func (f FileWriter) Write() error {
	writes := []any{
		customWrite(f.writer.WriteCommentHeader),
		lineWrite(fmt.Sprintf("  ORG %s\n", operand.HexWord(uint16(f.app.Org)))),
		customWrite(f.writer.ProcessInstructions),
		lineWrite("\n  END"),
	}

	for _, write := range writes {
		switch t := write.(type) {
		case lineWrite:
			if _, err := fmt.Fprintln(f.mainWriter, t); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}

		case customWrite:
			if err := t(); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unsupported writer type %T", t)
		}
	}

	return nil
}
