// Package disasm implements the driver of the Z80 disassembler.
package disasm

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/arch"
	"github.com/retroenv/z80disasm/internal/cursor"
	"github.com/retroenv/z80disasm/internal/operand"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
)

// ErrExhausted is returned when an instruction is requested after all bytes
// of the image have been decoded.
var ErrExhausted = errors.New("image is exhausted")

// TruncatedError is returned when the image ends inside of an instruction.
type TruncatedError struct {
	Offset int    // offset where the instruction began
	Data   []byte // bytes of the instruction that could be read
	Err    error
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("instruction at offset %04X truncated after %d bytes: %s", e.Offset, len(e.Data), e.Err)
}

func (e *TruncatedError) Unwrap() error {
	return e.Err
}

// Disasm implements a disassembler.
type Disasm struct {
	arch    arch.Architecture
	logger  *log.Logger
	options options.Disassembler

	cursor    *cursor.Cursor
	app       *program.Program
	truncated bool // decoding stopped at a truncated instruction
}

// New creates a new disassembler for the image that uses the passed architecture
// to implement the architecture specific decoding. No decoding is done yet.
func New(logger *log.Logger, ar arch.Architecture, image []byte, options options.Disassembler) *Disasm {
	return &Disasm{
		arch:    ar,
		logger:  logger,
		options: options,
		cursor:  cursor.New(image),
		app:     program.New(image, options.Org),
	}
}

// Process decodes all instructions until the image is exhausted.
// If the image ends inside of an instruction, the returned program contains
// all instructions decoded up to that point followed by a data dump of the
// partial instruction, and the returned error is a *TruncatedError.
func (dis *Disasm) Process() (*program.Program, error) {
	for !dis.IsExhausted() {
		if _, err := dis.DecodeNext(); err != nil {
			var truncatedErr *TruncatedError
			if errors.As(err, &truncatedErr) {
				dis.logSummary()
				return dis.app, err
			}
			return nil, err
		}
	}

	dis.logSummary()
	return dis.app, nil
}

// DecodeNext decodes exactly one instruction and appends it to the program.
func (dis *Disasm) DecodeNext() (program.Instruction, error) {
	if dis.IsExhausted() {
		return program.Instruction{}, ErrExhausted
	}

	ins, err := dis.arch.Decode(dis.cursor)
	if err != nil {
		if !errors.Is(err, cursor.ErrOutOfRange) {
			return program.Instruction{}, fmt.Errorf("decoding instruction at offset %04X: %w", dis.cursor.Position(), err)
		}

		dis.truncated = true
		dump := dataDump(ins)
		dis.app.Append(dump)
		dis.logger.Debug("Truncated instruction",
			log.Hex("offset", ins.Offset),
			log.String("data", dump.Mnemonic))

		return dump, &TruncatedError{
			Offset: ins.Offset,
			Data:   ins.OpcodeBytes,
			Err:    err,
		}
	}

	if ins.IsType(program.Unknown | program.UnsupportedPrefix) {
		dis.logger.Debug("Unknown opcode",
			log.Hex("offset", ins.Offset),
			log.String("bytes", ins.HexCodeComment()))
	}

	dis.app.Append(ins)
	return ins, nil
}

// IsExhausted returns whether decoding has finished.
func (dis *Disasm) IsExhausted() bool {
	return dis.truncated || dis.cursor.IsExhausted()
}

// Instructions returns a copy of all instructions decoded so far.
func (dis *Disasm) Instructions() []program.Instruction {
	return slices.Clone(dis.app.Instructions)
}

// Program returns the program that the decoded instructions are appended to.
func (dis *Disasm) Program() *program.Program {
	return dis.app
}

// Options returns the options of the disassembler.
func (dis *Disasm) Options() options.Disassembler {
	return dis.options
}

func (dis *Disasm) logSummary() {
	unknown := dis.app.Count(program.Unknown)
	unsupported := dis.app.Count(program.UnsupportedPrefix)

	dis.logger.Debug("Decoding finished",
		log.Int("instructions", len(dis.app.Instructions)),
		log.Int("bytes", dis.cursor.Position()))

	if unknown > 0 || unsupported > 0 {
		dis.logger.Warn("Image contains opcodes that could not be decoded",
			log.Int("unknown", unknown),
			log.Int("unsupported_prefix", unsupported))
	}
}

// dataDump converts the bytes of a partial instruction to a data record.
func dataDump(ins program.Instruction) program.Instruction {
	values := make([]string, 0, len(ins.OpcodeBytes))
	for _, b := range ins.OpcodeBytes {
		values = append(values, operand.HexByte(b))
	}

	return program.Instruction{
		Offset:      ins.Offset,
		Mnemonic:    "DB " + strings.Join(values, ","),
		OpcodeBytes: ins.OpcodeBytes,
		Type:        program.DataType,
	}
}
