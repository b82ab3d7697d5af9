// Package config handles application configuration and setup
package config

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/assembler"
	"github.com/retroenv/z80disasm/internal/assembler/asm"
	"github.com/retroenv/z80disasm/internal/assembler/listing"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
	"github.com/retroenv/z80disasm/internal/writer"
)

// FileWriterConstructor creates the writer of an output format.
type FileWriterConstructor func(app *program.Program, options options.Disassembler, mainWriter io.Writer) writer.AssemblerWriter

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateFileWriterConstructor returns the writer constructor for the output format.
func CreateFileWriterConstructor(format string) (FileWriterConstructor, error) {
	switch format {
	case assembler.Listing:
		return listing.New, nil
	case assembler.Asm:
		return asm.New, nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
}
