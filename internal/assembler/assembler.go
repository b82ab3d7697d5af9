// Package assembler defines the available output formats.
package assembler

const (
	Asm     = "asm"
	Listing = "listing"
)

// Formats lists all supported output formats, the first one is the default.
var Formats = []string{Listing, Asm}
