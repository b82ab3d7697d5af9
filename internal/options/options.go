// Package options contains the program options.
package options

import "strings"

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"input" usage:"input binary file"`
	Output string `flag:"output" usage:"output file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.com)"`
}

// Flags contains behavior options.
type Flags struct {
	Org          string `flag:"org" usage:"origin address of the image (default: auto-detect)"`
	Format       string `flag:"format" usage:"output format: listing, asm" default:"listing"`
	AssembleTest bool   `flag:"verify" usage:"verify that the decoded bytes recreate the input"`
	Debug        bool   `flag:"debug" usage:"enable debug logging"`
	Quiet        bool   `flag:"quiet" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Charset       string `flag:"charset" usage:"character column mapping: ascii, latin1, cp437, cp1252" default:"ascii"`
	NoHexComments bool   `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool   `flag:"nooffsets" usage:"omit addresses in comments"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Org     int    // display bias added to all offsets
	OrgSet  bool   // origin was passed explicitly and must not be auto-detected
	Format  string // output format
	Charset string // character column mapping of the listing format

	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(format, charset string) Disassembler {
	return Disassembler{
		Format:  strings.ToLower(format),
		Charset: strings.ToLower(charset),

		HexComments:    true,
		OffsetComments: true,
	}
}
