package writer

import (
	"fmt"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

const (
	asciiPlaceholder = '.'
	controlGlyph     = ' '
)

// GlyphMapper converts bytes to the characters displayed in the character
// column of a listing.
type GlyphMapper struct {
	charmap *charmap.Charmap // nil for plain ascii
}

// NewGlyphMapper returns a glyph mapper for the named character set.
func NewGlyphMapper(charset string) (GlyphMapper, error) {
	switch charset {
	case "", "ascii":
		return GlyphMapper{}, nil
	case "latin1":
		return GlyphMapper{charmap: charmap.ISO8859_1}, nil
	case "cp437":
		return GlyphMapper{charmap: charmap.CodePage437}, nil
	case "cp1252":
		return GlyphMapper{charmap: charmap.Windows1252}, nil
	default:
		return GlyphMapper{}, fmt.Errorf("unsupported charset '%s'", charset)
	}
}

// Glyph returns the display character of a byte. Control characters below
// 0x20 are shown as a space.
func (m GlyphMapper) Glyph(b byte) rune {
	if b < 0x20 {
		return controlGlyph
	}

	if m.charmap == nil {
		if b >= unicode.MaxASCII {
			return asciiPlaceholder
		}
		return rune(b)
	}

	r := m.charmap.DecodeByte(b)
	if !unicode.IsPrint(r) {
		return asciiPlaceholder
	}
	return r
}

// Glyphs returns the display characters of all bytes.
func (m GlyphMapper) Glyphs(data []byte) string {
	runes := make([]rune, 0, len(data))
	for _, b := range data {
		runes = append(runes, m.Glyph(b))
	}
	return string(runes)
}
