// Package cursor implements a forward only reader over a binary image.
package cursor

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a read is attempted past the end of the image.
var ErrOutOfRange = errors.New("read past end of image")

// Cursor owns the immutable binary image and the current read position.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a cursor positioned at the start of the passed image.
// The image must not be modified after it has been passed to the cursor.
func New(data []byte) *Cursor {
	return &Cursor{
		data: data,
	}
}

// Position returns the offset of the next unconsumed byte.
func (c *Cursor) Position() int {
	return c.pos
}

// Len returns the size of the image.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// IsExhausted returns whether all bytes of the image have been consumed.
func (c *Cursor) IsExhausted() bool {
	return c.pos >= len(c.data)
}

// Begin starts a new decode step at the current position.
// Every step gets its own byte buffer so no bytes of a previous step can leak
// into the returned fetch.
func (c *Cursor) Begin() *Fetch {
	return &Fetch{
		cursor: c,
		start:  c.pos,
		data:   make([]byte, 0, maxInstructionSize),
	}
}

// maxInstructionSize is the longest Z80 encoding, DD CB d op.
const maxInstructionSize = 4

// Fetch collects all bytes that are consumed by a single decode step.
type Fetch struct {
	cursor *Cursor
	start  int
	data   []byte
}

// Byte returns the byte at the cursor position, records it as part of the
// current step and advances the cursor.
func (f *Fetch) Byte() (byte, error) {
	c := f.cursor
	if c.pos >= len(c.data) {
		return 0, fmt.Errorf("reading byte at offset %04X: %w", c.pos, ErrOutOfRange)
	}

	b := c.data[c.pos]
	f.data = append(f.data, b)
	c.pos++
	return b, nil
}

// Word reads two bytes in little endian order, the first byte is the low byte.
func (f *Fetch) Word() (uint16, error) {
	low, err := f.Byte()
	if err != nil {
		return 0, err
	}
	high, err := f.Byte()
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// Start returns the offset where the step began.
func (f *Fetch) Start() int {
	return f.start
}

// Position returns the offset of the next byte that the step would read.
func (f *Fetch) Position() int {
	return f.cursor.pos
}

// Bytes returns the bytes consumed by the step so far.
func (f *Fetch) Bytes() []byte {
	return f.data
}

// Len returns the number of bytes consumed by the step so far.
func (f *Fetch) Len() int {
	return len(f.data)
}
