// Package operand renders instruction operands in Z80 assembler notation.
package operand

import (
	"fmt"
	"strconv"
)

// HexByte formats a byte as an assembler hex literal like 10H or 0FFH.
// A leading 0 is added if the first digit is a letter, so that the literal
// can not be mistaken for an identifier.
func HexByte(v byte) string {
	return digitLed(fmt.Sprintf("%02XH", v))
}

// HexWord formats a word as an assembler hex literal like 1234H or 0C000H.
func HexWord(v uint16) string {
	return digitLed(fmt.Sprintf("%04XH", v))
}

// Signed formats a byte as signed decimal displacement, always including the sign.
func Signed(v byte) string {
	d := int8(v)
	if d < 0 {
		return strconv.Itoa(int(d))
	}
	return "+" + strconv.Itoa(int(d))
}

// Relative returns the two's complement value of a relative jump operand.
func Relative(v byte) int {
	return int(int8(v))
}

func digitLed(s string) string {
	if s[0] >= 'A' && s[0] <= 'F' {
		return "0" + s
	}
	return s
}
