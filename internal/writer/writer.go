// Package writer implements common output file writing functionality.
package writer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/retroenv/z80disasm/internal/operand"
	"github.com/retroenv/z80disasm/internal/program"
)

const dataBytesPerLine = 16

type lineWriterFunc func(line string, byteCount int) error

// AssemblerWriter defines a shared interface used by the different output format packages.
// Their constructors need to return this shared interface, having them return the actual type instead of
// the interface results in compiler errors for the constructor variable that they are assigned to.
type AssemblerWriter interface {
	Write() error
}

// Writer implements common output file writing functionality.
type Writer struct {
	app     *program.Program
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	DataDirective  string // directive used for raw bytes, for example DB
	HexComments    bool
	OffsetComments bool
}

// New creates a new writer.
func New(app *program.Program, writer io.Writer, options Options) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  writer,
	}
}

// ProcessInstructions writes all decoded instructions as code lines. Records
// that can not be expressed as an instruction are written as data bytes.
func (w Writer) ProcessInstructions() error {
	var previousLineWasCode bool

	for i, ins := range w.app.Instructions {
		isCode := ins.IsType(program.CodeType)

		// print an empty line in case of data after code and vice versa
		if i > 0 && isCode != previousLineWasCode {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = isCode

		if isCode {
			if err := w.writeCodeLine(w.codeMnemonic(ins), w.instructionComment(ins)); err != nil {
				return fmt.Errorf("writing code line: %w", err)
			}
			continue
		}

		if err := w.writeDataInstruction(ins); err != nil {
			return err
		}
	}
	return nil
}

// BundleDataWrites bundles writes of data bytes to print dataBytesPerLine bytes per line.
func (w Writer) BundleDataWrites(data []byte, lineWriter lineWriterFunc) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		values := make([]string, 0, toWrite)
		for _, b := range data[i : i+toWrite] {
			values = append(values, operand.HexByte(b))
		}
		line := w.options.DataDirective + " " + strings.Join(values, ",")

		if lineWriter != nil {
			if err := lineWriter(line, toWrite); err != nil {
				return fmt.Errorf("writing data line using custom writer: %w", err)
			}
		} else {
			if _, err := fmt.Fprintf(w.writer, "  %s\n", line); err != nil {
				return fmt.Errorf("writing data line: %w", err)
			}
		}

		i += toWrite
		remaining -= toWrite
	}

	return nil
}

// WriteCommentHeader writes the CRC32 checksum, size and origin of the image as comments to the output.
func (w Writer) WriteCommentHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", w.app.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Size: %d bytes\n", w.app.Size); err != nil {
		return fmt.Errorf("writing size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Origin: %s\n\n", operand.HexWord(uint16(w.app.Org))); err != nil {
		return fmt.Errorf("writing origin: %w", err)
	}
	return nil
}

// writeDataInstruction writes the bytes of an unknown or truncated record as data.
func (w Writer) writeDataInstruction(ins program.Instruction) error {
	offset := ins.Offset
	lineWriter := func(line string, byteCount int) error {
		comment := w.dataComment(ins, offset)
		offset += byteCount
		if err := w.writeCodeLine(line, comment); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}
		return nil
	}

	if err := w.BundleDataWrites(ins.OpcodeBytes, lineWriter); err != nil {
		return fmt.Errorf("writing data of offset %04X: %w", ins.Offset, err)
	}
	return nil
}

func (w Writer) writeCodeLine(code, comment string) error {
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "  %s\n", code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintf(w.writer, "  %-30s ; %s\n", code, comment); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// codeMnemonic returns the mnemonic of a code instruction. The displacement
// operand of a relative branch is replaced by the branch target, as an
// assembler expects the destination address and computes the displacement.
func (w Writer) codeMnemonic(ins program.Instruction) string {
	if !ins.IsType(program.RelativeBranch) {
		return ins.Mnemonic
	}
	idx := strings.LastIndexAny(ins.Mnemonic, " ,")
	if idx < 0 {
		return ins.Mnemonic
	}
	return ins.Mnemonic[:idx+1] + w.branchTarget(ins)
}

// branchTarget returns the target address of a relative branch. Targets outside
// of the address space are written relative to the instruction address.
func (w Writer) branchTarget(ins program.Instruction) string {
	target := w.app.TargetAddress(ins)
	if target >= 0 && target <= math.MaxUint16 {
		return operand.HexWord(uint16(target))
	}

	distance := ins.Target - ins.Offset
	if distance < 0 {
		return fmt.Sprintf("$-%d", -distance)
	}
	return fmt.Sprintf("$+%d", distance)
}

// instructionComment returns the address and opcode bytes comment of an
// instruction, depending on the enabled options.
func (w Writer) instructionComment(ins program.Instruction) string {
	var parts []string
	if w.options.HexComments {
		parts = append(parts, ins.HexCodeComment())
	}

	return w.comment(w.app.Address(ins), parts)
}

func (w Writer) dataComment(ins program.Instruction, offset int) string {
	var parts []string
	switch {
	case ins.IsType(program.UnsupportedPrefix):
		parts = append(parts, "unsupported prefix")
	case ins.IsType(program.Unknown):
		parts = append(parts, "unknown opcode")
	case ins.IsType(program.DataType):
		parts = append(parts, "truncated instruction")
	}

	return w.comment(w.app.Org+offset, parts)
}

// comment joins the comment parts and prefixes them with the address if enabled.
func (w Writer) comment(address int, parts []string) string {
	s := strings.Join(parts, "  ")
	if !w.options.OffsetComments {
		return s
	}
	if s == "" {
		return fmt.Sprintf("%04X", address)
	}
	return fmt.Sprintf("%04X: %s", address, s)
}
