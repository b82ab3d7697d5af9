package verification

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/program"
)

func buildProgram(image []byte, sizes ...int) *program.Program {
	app := program.New(image, 0)
	var offset int
	for _, size := range sizes {
		app.Append(program.Instruction{
			Offset:      offset,
			OpcodeBytes: image[offset : offset+size],
			Type:        program.CodeType,
		})
		offset += size
	}
	return app
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	image := []byte{0x00, 0xC3, 0x00, 0x01, 0x3E, 0x01}

	t.Run("matching", func(t *testing.T) {
		app := buildProgram(image, 1, 3, 2)
		assert.NoError(t, VerifyOutput(logger, image, app))
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, VerifyOutput(logger, nil, program.New(nil, 0)))
	})

	t.Run("missing bytes", func(t *testing.T) {
		app := buildProgram(image, 1, 3)
		assert.ErrorContains(t, VerifyOutput(logger, image, app), "mismatched lengths")
	})

	t.Run("gap", func(t *testing.T) {
		app := buildProgram(image, 1, 3, 2)
		app.Instructions[2].Offset = 5
		assert.ErrorContains(t, VerifyOutput(logger, image, app), "expected 0004")
	})

	t.Run("changed byte", func(t *testing.T) {
		app := buildProgram(image, 1, 3, 2)
		changed := []byte{0x00, 0xC3, 0x00, 0x02, 0x3E, 0x01}
		assert.ErrorContains(t, VerifyOutput(logger, changed, app), "1 offset mismatches")
	})
}
