package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_IsType(t *testing.T) {
	ins := &Instruction{}

	ins.SetType(CodeType)
	assert.True(t, ins.IsType(CodeType))
	assert.False(t, ins.IsType(Unknown))

	ins.SetType(Unknown)
	assert.True(t, ins.IsType(CodeType))
	assert.True(t, ins.IsType(Unknown))
	assert.True(t, ins.IsType(Unknown|UnsupportedPrefix))
	assert.False(t, ins.IsType(UnsupportedPrefix))
}

func TestInstruction_ClearType(t *testing.T) {
	ins := &Instruction{}
	ins.SetType(CodeType)
	ins.SetType(RelativeBranch)

	ins.ClearType(CodeType)
	assert.False(t, ins.IsType(CodeType))
	assert.True(t, ins.IsType(RelativeBranch))

	ins.ClearType(RelativeBranch)
	assert.Equal(t, UnknownType, ins.Type)
}

func TestInstruction_HexCodeComment(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "single byte",
			data:     []byte{0x00},
			expected: "00",
		},
		{
			name:     "jump",
			data:     []byte{0xC3, 0x34, 0x12},
			expected: "C3 34 12",
		},
		{
			name:     "indexed bit",
			data:     []byte{0xDD, 0xCB, 0x05, 0x46},
			expected: "DD CB 05 46",
		},
		{
			name:     "empty data",
			data:     []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := &Instruction{
				OpcodeBytes: tt.data,
			}
			assert.Equal(t, tt.expected, ins.HexCodeComment())
		})
	}
}
