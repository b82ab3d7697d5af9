// Package z80 provides the Zilog Z80 instruction decoder of the disassembler.
//
// # Opcode Space
//
// Z80 instructions are 1 to 4 bytes long. The first byte selects one of the
// 256 entries of the primary table, 4 of which are prefix bytes:
//   - 0xCB: rotate, shift and bit operations, 1 secondary byte
//   - 0xDD: instructions using the IX index register
//   - 0xFD: instructions using the IY index register
//   - 0xED: extended instructions, not supported
//
// Every table entry is a template like "LD (ii+d),n" with lower case
// placeholders that are replaced by the rendered operands:
//   - n: unsigned byte, for example 0FFH
//   - nn: unsigned little endian word, for example 1234H
//   - e: relative jump offset, rendered like n
//   - +d: signed index displacement, for example +5 or -128
//   - ii: the index register name IX or IY
//
// # CB Prefix
//
// The secondary byte is split into the operation (bits 3-7) and the register
// operand (bits 0-2) in the order B, C, D, E, H, L, (HL), A.
//
// # DD and FD Prefix
//
// The index tables mirror the HL based instructions of the primary table,
// (HL) turns into (IX+d) and H or L turn into the index register halves IXH
// and IXL. DD CB d op encodes the bit operations on (IX+d).
//
// # Unknown Opcodes
//
// Prefixed combinations without a table entry decode to the mnemonic Unknown
// and consume only the bytes that were read for the attempt. 0xED and DD or FD
// secondary bytes without an entry carry the UnsupportedPrefix type, 0xED
// consumes only the prefix byte. Undocumented DD CB d op forms carry the
// Unknown type.
//
// # Usage Example
//
//	c := cursor.New(data)
//	dec := z80.New()
//	for !c.IsExhausted() {
//		ins, err := dec.Decode(c)
//		if err != nil {
//			return fmt.Errorf("decoding instruction: %w", err)
//		}
//		fmt.Println(ins.Mnemonic)
//	}
package z80
