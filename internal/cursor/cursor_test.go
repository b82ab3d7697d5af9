package cursor

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFetch_Byte(t *testing.T) {
	c := New([]byte{0x12, 0x34})
	f := c.Begin()

	b, err := f.Byte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), b)
	assert.Equal(t, 1, c.Position())
	assert.False(t, c.IsExhausted())

	b, err = f.Byte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x34), b)
	assert.True(t, c.IsExhausted())
	assert.Equal(t, []byte{0x12, 0x34}, f.Bytes())

	_, err = f.Byte()
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, 2, c.Position())
	assert.Equal(t, 2, f.Len())
}

func TestFetch_Word(t *testing.T) {
	c := New([]byte{0x34, 0x12, 0xFF})
	f := c.Begin()

	w, err := f.Word()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)
	assert.Equal(t, 2, c.Position())

	// only one byte left, the partial read is still recorded
	_, err = f.Word()
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, []byte{0x34, 0x12, 0xFF}, f.Bytes())
	assert.True(t, c.IsExhausted())
}

func TestCursor_Begin(t *testing.T) {
	c := New([]byte{0x00, 0x01, 0x02})

	first := c.Begin()
	_, err := first.Byte()
	assert.NoError(t, err)

	second := c.Begin()
	assert.Equal(t, 1, second.Start())
	assert.Equal(t, 0, second.Len())

	_, err = second.Byte()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00}, first.Bytes())
	assert.Equal(t, []byte{0x01}, second.Bytes())
	assert.Equal(t, 2, second.Position())
	assert.Equal(t, 1, c.Remaining())
}

func TestCursor_Empty(t *testing.T) {
	c := New(nil)
	assert.True(t, c.IsExhausted())
	assert.Equal(t, 0, c.Len())

	_, err := c.Begin().Byte()
	assert.True(t, errors.Is(err, ErrOutOfRange))
}
