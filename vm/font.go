package vm

// fontCharCount is the number of glyphs in the table, covering the
// printable ASCII range starting at ' ' (0x20).
const fontCharCount = 96

const fontCharSize = 8

// glyph packs eight row bytes into a single 64-bit bitmap. Bit k of row
// i is pixel column k of row i (column 0 in the LSB), matching the
// draw loop in display.go that shifts one bit out per pixel.
func glyph(rows ...byte) uint64 {
	var v uint64
	for i, r := range rows {
		v |= uint64(r) << (8 * uint(i))
	}
	return v
}

// font holds one 64-bit bitmap per character, indexed by c - 0x20.
// Digits, uppercase letters and a few punctuation marks are hand-drawn
// and lowercase letters reuse the uppercase glyphs; every other entry
// keeps the placeholder filled in by init (a blank cell at even table
// indices, a small box at odd ones) so the table stays total over the
// full printable range.
var font [fontCharCount]uint64

func init() {
	blank := glyph(0, 0, 0, 0, 0, 0, 0, 0)
	box := glyph(0x00, 0x3C, 0x42, 0x42, 0x42, 0x42, 0x3C, 0x00)
	for i := range font {
		if i%2 == 0 {
			font[i] = blank
		} else {
			font[i] = box
		}
	}

	set := func(c byte, rows ...byte) {
		font[c-' '] = glyph(rows...)
	}

	set(' ', 0, 0, 0, 0, 0, 0, 0, 0)
	set('.', 0, 0, 0, 0, 0, 0x18, 0x18, 0)
	set(',', 0, 0, 0, 0, 0, 0x18, 0x18, 0x30)
	set(':', 0, 0x18, 0x18, 0, 0x18, 0x18, 0, 0)
	set('-', 0, 0, 0, 0x7E, 0, 0, 0, 0)
	set('!', 0x18, 0x18, 0x18, 0x18, 0x18, 0, 0x18, 0)

	set('0', 0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0)
	set('1', 0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0)
	set('2', 0x3C, 0x66, 0x06, 0x1C, 0x30, 0x60, 0x7E, 0)
	set('3', 0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0)
	set('4', 0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0)
	set('5', 0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0)
	set('6', 0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0)
	set('7', 0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0)
	set('8', 0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0)
	set('9', 0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0)

	set('A', 0x18, 0x3C, 0x66, 0x66, 0x7E, 0x66, 0x66, 0)
	set('B', 0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0)
	set('C', 0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0)
	set('D', 0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0)
	set('E', 0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x7E, 0)
	set('F', 0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x60, 0)
	set('G', 0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3C, 0)
	set('H', 0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0)
	set('I', 0x3C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0)
	set('J', 0x1E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0)
	set('K', 0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0)
	set('L', 0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0)
	set('M', 0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0)
	set('N', 0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0)
	set('O', 0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0)
	set('P', 0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0)
	set('Q', 0x3C, 0x66, 0x66, 0x66, 0x6A, 0x6C, 0x36, 0)
	set('R', 0x7C, 0x66, 0x66, 0x7C, 0x78, 0x6C, 0x66, 0)
	set('S', 0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0)
	set('T', 0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0)
	set('U', 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0)
	set('V', 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0)
	set('W', 0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0)
	set('X', 0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0)
	set('Y', 0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0)
	set('Z', 0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0)

	// Lowercase letters reuse the uppercase glyph; the font has no
	// separate lowercase set.
	for c := byte('a'); c <= 'z'; c++ {
		font[c-' '] = font[c-'a'+'A'-' ']
	}
}

// Glyph returns the 8x8 bitmap for character c, saturating to the
// nearest table endpoint for codes outside the printable range.
func Glyph(c byte) uint64 {
	idx := int(c) - ' '
	if idx < 0 {
		idx = 0
	}
	if idx >= fontCharCount {
		idx = fontCharCount - 1
	}
	return font[idx]
}
