// Package detector handles detection of the image origin.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/options"
)

// CP/M programs are loaded into the transient program area.
const cpmOrigin = 0x100

// Detector handles origin detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new origin detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the disassembler options with the origin set. An origin that
// was passed explicitly is kept, otherwise it is detected from the input
// filename extension.
func (d *Detector) Detect(filename string, disasmOpts options.Disassembler) options.Disassembler {
	if disasmOpts.OrgSet {
		return disasmOpts
	}

	disasmOpts.Org = d.detectFromFile(filename)
	d.logger.Debug("Auto-detected origin",
		log.Hex("org", disasmOpts.Org),
		log.String("file", filename))
	return disasmOpts
}

// detectFromFile determines the origin based on file extension.
func (d *Detector) detectFromFile(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".com":
		return cpmOrigin
	default:
		return 0
	}
}
