// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/z80disasm/internal/assembler"
	"github.com/retroenv/z80disasm/internal/options"
	flag "github.com/spf13/pflag"
)

const maxOrg = 0xFFFF

var (
	validFormats  = assembler.Formats
	validCharsets = []string{"ascii", "latin1", "cp437", "cp1252"}

	errInvalidOrg = errors.New("invalid origin address")
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	flags.SetInterspersed(false)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readDisasmOptionFlags(flags, &opts.OutputFlags)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions, err := createDisasmOptions(opts)
	if err != nil {
		return opts, options.Disassembler{}, err
	}

	// inverse logic for hex comments and offsets
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: z80disasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	if opts.Format == "lst" {
		opts.Format = assembler.Listing
	}
	if !slices.Contains(validFormats, opts.Format) {
		return fmt.Errorf("unsupported output format: %s. Valid options: %s",
			opts.Format, strings.Join(validFormats, ", "))
	}

	opts.Charset = strings.ToLower(opts.Charset)
	if !slices.Contains(validCharsets, opts.Charset) {
		return fmt.Errorf("unsupported charset: %s. Valid options: %s",
			opts.Charset, strings.Join(validCharsets, ", "))
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) (options.Disassembler, error) {
	disasmOptions := options.NewDisassembler(opts.Format, opts.Charset)

	if opts.Org != "" {
		org, err := ParseOrg(opts.Org)
		if err != nil {
			return disasmOptions, err
		}
		disasmOptions.Org = org
		disasmOptions.OrgSet = true
	}

	return disasmOptions, nil
}

// ParseOrg parses an origin address. Supported notations are 0x100, $100,
// #100, 100H and decimal numbers.
func ParseOrg(s string) (int, error) {
	value := strings.TrimSpace(s)
	base := 10

	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "0x"):
		value, base = value[2:], 16
	case strings.HasPrefix(value, "$"), strings.HasPrefix(value, "#"):
		value, base = value[1:], 16
	case strings.HasSuffix(lower, "h"):
		value, base = value[:len(value)-1], 16
	}

	if value == "" {
		return 0, fmt.Errorf("%w '%s'", errInvalidOrg, s)
	}

	org, err := strconv.ParseUint(value, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %w", errInvalidOrg, s, err)
	}
	if org > maxOrg {
		return 0, fmt.Errorf("%w '%s': exceeds %04XH", errInvalidOrg, s, maxOrg)
	}
	return int(org), nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVarP(&opts.Input, "input", "i", "", "name of the input binary file")
	flags.StringVarP(&opts.Output, "output", "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically name the output files, for example *.com")
	flags.StringVar(&opts.Org, "org", "", "origin address of the image: 0x100, $100, 100H or decimal (default: detected from file extension)")
	flags.StringVarP(&opts.Format, "format", "f", assembler.Listing, "output format (listing/asm)")
	flags.StringVar(&opts.Charset, "charset", "ascii", "character column mapping of the listing (ascii/latin1/cp437/cp1252)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify that the decoded instruction bytes recreate the input")
}

func readDisasmOptionFlags(flags *flag.FlagSet, opts *options.OutputFlags) {
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments (asm format only)")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output offsets in comments (asm format only)")
}
