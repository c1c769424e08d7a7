// Package video implements the Video Scan-out: once per frame it reads
// Mapper RAM and the screen-mode flags and translates the selected
// framebuffer region (text, lo-res, or hi-res) into pixels submitted to a
// PixelSink. It never touches a window or a graphics context directly —
// that is the host display layer's job.
//
// Grounded on original_source/monitor.rs.
package video

const (
	TextWidth  = 40
	TextHeight = 24
	ScreenW    = 280
	ScreenH    = 192

	GlyphW = 7
	GlyphH = 8
)

// RGB is an 8-bit-per-channel color, independent of any particular
// graphics backend's color type.
type RGB struct {
	R, G, B uint8
}

// Bus is the narrow read-only view of the Bus Mapper the scan-out needs:
// RAM access and the four screen-mode flags.
type Bus interface {
	Read(addr uint16) uint8
	ScreenMode() (graphics, all, primary, lowRes bool)
}

// PixelSink is the host collaborator that receives scan-out output. Row
// rectangles cover the text and lo-res decoders; SetPixel covers the
// hi-res decoder's per-dot NTSC color logic.
type PixelSink interface {
	FillRect(x, y, w, h int, c RGB)
	SetPixel(x, y int, c RGB)
	// BlitGlyph draws the 7x8 glyph at font-sheet cell (col, row) (a
	// 16-column by 8-row sheet) to screen position (dstX, dstY).
	BlitGlyph(col, row, dstX, dstY int)
	Present()
}

// Scanout renders one frame of the given Bus's current screen mode to the
// sink, using cycles to drive the text-mode blink timer.
func Scanout(bus Bus, sink PixelSink, cycles uint64) {
	graphics, all, primary, lowRes := bus.ScreenMode()

	textBase := uint16(0x400)
	if !primary {
		textBase = 0x800
	}

	switch {
	case graphics && lowRes:
		base := uint16(0x400)
		if !primary {
			base = 0x800
		}
		for y := 0; y < TextHeight; y++ {
			drawLoResRow(bus, sink, base, y)
		}
	case graphics && !lowRes:
		base := uint16(0x2000)
		if !primary {
			base = 0x4000
		}
		for y := 0; y < ScreenH; y++ {
			drawHiResRow(bus, sink, base, y)
		}
	}

	if graphics && !all {
		for y := TextHeight - 4; y < TextHeight; y++ {
			drawTextRow(bus, sink, textBase, y, cycles)
		}
	} else if !graphics {
		for y := 0; y < TextHeight; y++ {
			drawTextRow(bus, sink, textBase, y, cycles)
		}
	}

	sink.Present()
}
