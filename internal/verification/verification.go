// Package verification verifies that the decoded instructions recreate the input.
package verification

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/program"
)

const maxReportedDiffs = 10

// VerifyOutput verifies that the opcode bytes of all decoded instructions
// cover the input image without gaps and recreate it exactly.
func VerifyOutput(logger *log.Logger, image []byte, app *program.Program) error {
	if err := checkContiguous(app); err != nil {
		return fmt.Errorf("checking instruction offsets: %w", err)
	}

	if err := checkBufferEqual(logger, image, app.Bytes()); err != nil {
		return fmt.Errorf("image mismatch: %w", err)
	}
	return nil
}

func checkContiguous(app *program.Program) error {
	var expected int
	for i, ins := range app.Instructions {
		if ins.Offset != expected {
			return fmt.Errorf("instruction %d starts at offset %04X, expected %04X", i, ins.Offset, expected)
		}
		if len(ins.OpcodeBytes) == 0 {
			return fmt.Errorf("instruction %d at offset %04X has no opcode bytes", i, ins.Offset)
		}
		expected += len(ins.OpcodeBytes)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < maxReportedDiffs {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
