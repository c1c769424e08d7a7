package display

// glyphRows is one character's bitmap: video.GlyphH rows, each using the
// low video.GlyphW bits (bit 6 is the leftmost dot).
type glyphRows [8]uint8

// charset holds the 64 shapes the Apple II's normal-display character
// window shows, indexed by (rawChar - 0x20) for the printable range
// 0x20 ("space") through 0x5F ("_") that a real Apple II ROM actually
// lights up. This repository has no font.png asset to load (no other
// example repo in the pack ships binary resources either), so the shapes
// are embedded the way chippy embeds its own FontSet: as a plain Go byte
// table alongside the code that uses it.
var charset = [64]glyphRows{
	0x00: {0, 0, 0, 0, 0, 0, 0, 0}, // space
	0x01: {0x08, 0x08, 0x08, 0x08, 0x08, 0, 0x08, 0}, // !
	0x02: {0x14, 0x14, 0x14, 0, 0, 0, 0, 0},          // "
	0x03: {0x14, 0x14, 0x3E, 0x14, 0x3E, 0x14, 0x14, 0}, // #
	0x04: {0x08, 0x1E, 0x28, 0x1C, 0x0A, 0x3C, 0x08, 0}, // $
	0x05: {0x30, 0x31, 0x02, 0x04, 0x08, 0x13, 0x03, 0}, // %
	0x06: {0x0C, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0D, 0}, // &
	0x07: {0x08, 0x08, 0x10, 0, 0, 0, 0, 0},           // '
	0x08: {0x04, 0x08, 0x10, 0x10, 0x10, 0x08, 0x04, 0}, // (
	0x09: {0x10, 0x08, 0x04, 0x04, 0x04, 0x08, 0x10, 0}, // )
	0x0A: {0, 0x08, 0x2A, 0x1C, 0x2A, 0x08, 0, 0},       // *
	0x0B: {0, 0x08, 0x08, 0x3E, 0x08, 0x08, 0, 0},       // +
	0x0C: {0, 0, 0, 0, 0, 0x08, 0x08, 0x10},             // ,
	0x0D: {0, 0, 0, 0x3E, 0, 0, 0, 0},                   // -
	0x0E: {0, 0, 0, 0, 0, 0, 0x08, 0},                   // .
	0x0F: {0x02, 0x02, 0x04, 0x08, 0x10, 0x20, 0x20, 0}, // /

	0x10: {0x1C, 0x22, 0x26, 0x2A, 0x32, 0x22, 0x1C, 0}, // 0
	0x11: {0x08, 0x18, 0x08, 0x08, 0x08, 0x08, 0x1C, 0}, // 1
	0x12: {0x1C, 0x22, 0x02, 0x0C, 0x10, 0x20, 0x3E, 0}, // 2
	0x13: {0x3E, 0x02, 0x04, 0x0C, 0x02, 0x22, 0x1C, 0}, // 3
	0x14: {0x04, 0x0C, 0x14, 0x24, 0x3E, 0x04, 0x04, 0}, // 4
	0x15: {0x3E, 0x20, 0x3C, 0x02, 0x02, 0x22, 0x1C, 0}, // 5
	0x16: {0x0C, 0x10, 0x20, 0x3C, 0x22, 0x22, 0x1C, 0}, // 6
	0x17: {0x3E, 0x02, 0x04, 0x08, 0x10, 0x10, 0x10, 0}, // 7
	0x18: {0x1C, 0x22, 0x22, 0x1C, 0x22, 0x22, 0x1C, 0}, // 8
	0x19: {0x1C, 0x22, 0x22, 0x1E, 0x02, 0x04, 0x18, 0}, // 9
	0x1A: {0, 0x08, 0, 0, 0, 0x08, 0, 0},                // :
	0x1B: {0, 0x08, 0, 0, 0, 0x08, 0x08, 0x10},          // ;
	0x1C: {0x04, 0x08, 0x10, 0x20, 0x10, 0x08, 0x04, 0}, // <
	0x1D: {0, 0, 0x3E, 0, 0x3E, 0, 0, 0},                // =
	0x1E: {0x10, 0x08, 0x04, 0x02, 0x04, 0x08, 0x10, 0}, // >
	0x1F: {0x1C, 0x22, 0x02, 0x04, 0x08, 0, 0x08, 0},    // ?

	0x20: {0x1C, 0x22, 0x2E, 0x2A, 0x2E, 0x20, 0x1E, 0}, // @
	0x21: {0x08, 0x14, 0x22, 0x22, 0x3E, 0x22, 0x22, 0}, // A
	0x22: {0x3C, 0x22, 0x22, 0x3C, 0x22, 0x22, 0x3C, 0}, // B
	0x23: {0x1C, 0x22, 0x20, 0x20, 0x20, 0x22, 0x1C, 0}, // C
	0x24: {0x3C, 0x22, 0x22, 0x22, 0x22, 0x22, 0x3C, 0}, // D
	0x25: {0x3E, 0x20, 0x20, 0x3C, 0x20, 0x20, 0x3E, 0}, // E
	0x26: {0x3E, 0x20, 0x20, 0x3C, 0x20, 0x20, 0x20, 0}, // F
	0x27: {0x1C, 0x22, 0x20, 0x2E, 0x22, 0x22, 0x1E, 0}, // G
	0x28: {0x22, 0x22, 0x22, 0x3E, 0x22, 0x22, 0x22, 0}, // H
	0x29: {0x1C, 0x08, 0x08, 0x08, 0x08, 0x08, 0x1C, 0}, // I
	0x2A: {0x02, 0x02, 0x02, 0x02, 0x02, 0x22, 0x1C, 0}, // J
	0x2B: {0x22, 0x24, 0x28, 0x30, 0x28, 0x24, 0x22, 0}, // K
	0x2C: {0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x3E, 0}, // L
	0x2D: {0x22, 0x36, 0x2A, 0x2A, 0x22, 0x22, 0x22, 0}, // M
	0x2E: {0x22, 0x32, 0x2A, 0x26, 0x22, 0x22, 0x22, 0}, // N
	0x2F: {0x1C, 0x22, 0x22, 0x22, 0x22, 0x22, 0x1C, 0}, // O

	0x30: {0x3C, 0x22, 0x22, 0x3C, 0x20, 0x20, 0x20, 0}, // P
	0x31: {0x1C, 0x22, 0x22, 0x22, 0x2A, 0x24, 0x1A, 0}, // Q
	0x32: {0x3C, 0x22, 0x22, 0x3C, 0x28, 0x24, 0x22, 0}, // R
	0x33: {0x1E, 0x20, 0x20, 0x1C, 0x02, 0x02, 0x3C, 0}, // S
	0x34: {0x3E, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0}, // T
	0x35: {0x22, 0x22, 0x22, 0x22, 0x22, 0x22, 0x1C, 0}, // U
	0x36: {0x22, 0x22, 0x22, 0x22, 0x22, 0x14, 0x08, 0}, // V
	0x37: {0x22, 0x22, 0x22, 0x2A, 0x2A, 0x36, 0x22, 0}, // W
	0x38: {0x22, 0x22, 0x14, 0x08, 0x14, 0x22, 0x22, 0}, // X
	0x39: {0x22, 0x22, 0x14, 0x08, 0x08, 0x08, 0x08, 0}, // Y
	0x3A: {0x3E, 0x02, 0x04, 0x08, 0x10, 0x20, 0x3E, 0}, // Z
	0x3B: {0x1C, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1C, 0}, // [
	0x3C: {0x20, 0x20, 0x10, 0x08, 0x04, 0x02, 0x02, 0}, // (backslash)
	0x3D: {0x1C, 0x04, 0x04, 0x04, 0x04, 0x04, 0x1C, 0}, // ]
	0x3E: {0x08, 0x14, 0x22, 0, 0, 0, 0, 0},             // ^
	0x3F: {0, 0, 0, 0, 0, 0, 0, 0x3E},                   // _
}

func glyphBitmap(shapeIndex int) glyphRows {
	if shapeIndex < 0 || shapeIndex >= len(charset) {
		return glyphRows{}
	}
	return charset[shapeIndex]
}
