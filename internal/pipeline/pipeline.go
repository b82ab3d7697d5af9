// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/arch/z80"
	"github.com/retroenv/z80disasm/internal/config"
	"github.com/retroenv/z80disasm/internal/detector"
	"github.com/retroenv/z80disasm/internal/disasm"
	"github.com/retroenv/z80disasm/internal/loader"
	"github.com/retroenv/z80disasm/internal/options"
	"github.com/retroenv/z80disasm/internal/program"
	"github.com/retroenv/z80disasm/internal/verification"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {
	disasmOpts = p.detector.Detect(opts.Input, disasmOpts)

	image, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	return p.ExecuteWithImage(ctx, image, opts, disasmOpts, writer)
}

// ExecuteWithImage runs the disassembly pipeline with a pre-loaded image.
// This is useful for testing and programmatic usage where the image is already in memory.
// An image that ends inside of an instruction is written completely and the
// returned error is a *disasm.TruncatedError.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, image []byte, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (*program.Program, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("starting disassembly: %w", err)
	}

	fileWriterConstructor, err := config.CreateFileWriterConstructor(disasmOpts.Format)
	if err != nil {
		return nil, fmt.Errorf("creating file writer constructor: %w", err)
	}

	p.printInfo(opts, disasmOpts, image)

	dis := disasm.New(p.logger, z80.New(), image, disasmOpts)
	app, decodeErr := dis.Process()
	var truncatedErr *disasm.TruncatedError
	if decodeErr != nil && !errors.As(decodeErr, &truncatedErr) {
		return nil, fmt.Errorf("disassembling: %w", decodeErr)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	fileWriter := fileWriterConstructor(app, disasmOpts, writer)
	if err := fileWriter.Write(); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(p.logger, image, app); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return app, decodeErr
}

// printInfo prints information about the image being processed.
func (p *Pipeline) printInfo(opts options.Program, disasmOpts options.Disassembler, image []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing Z80 image",
		log.String("file", opts.Input),
		log.Int("size", len(image)),
		log.Hex("org", disasmOpts.Org),
		log.String("format", disasmOpts.Format),
	)

	if disasmOpts.Org+len(image) > loader.AddressSpaceSize {
		p.logger.Warn("Image exceeds the 64KB address space, addresses will be wider than 16 bit")
	}
}
