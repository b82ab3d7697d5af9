// Package loader handles image file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/z80disasm/internal/options"
)

// AddressSpaceSize is the size of the Z80 address space. Larger images can be
// decoded but their addresses exceed 16 bits.
const AddressSpaceSize = 0x10000

// Loader handles loading image files from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete input file of the options as raw binary image.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	image, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", opts.Input, err)
	}
	return image, nil
}

// LoadFromReader reads a raw binary image from the reader.
// This is useful for testing and programmatic usage where the image is already in memory.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return image, nil
}
