// Package arch contains types used for architecture support.
// It acts as a bridge between the disassembler and the architecture specific code.
package arch

import (
	"github.com/retroenv/z80disasm/internal/cursor"
	"github.com/retroenv/z80disasm/internal/program"
)

// Architecture contains architecture specific decoding.
type Architecture interface {
	// Decode decodes the instruction at the cursor position and advances the
	// cursor past all bytes that belong to it. If the image ends inside of the
	// instruction, the returned instruction holds the bytes that could be read
	// and the error wraps cursor.ErrOutOfRange.
	Decode(c *cursor.Cursor) (program.Instruction, error)
}
